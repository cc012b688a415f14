// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the server configuration assembled from [StructuredConfig].
type ServerConfig struct {
	Server  Server
	DB      DB
	Version string
}

// GetServerConfig builds and validates the server view of the merged
// configuration. args excludes the program name.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps the fields relevant to the server runtime.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		Server:  cfg.Server,
		DB:      cfg.Storage.DB,
		Version: cfg.App.Version,
	}
}

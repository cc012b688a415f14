// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// ClientConfig is the client configuration assembled from [StructuredConfig].
type ClientConfig struct {
	// Adapter is used when HTTPAddress is set; otherwise the client talks to
	// DB directly.
	Adapter Adapter
	DB      DB
	Workers Workers
	Billing Billing

	// LogFile is where the client writes its logs. Empty means stdout.
	LogFile string

	// Args are the command and its arguments.
	Args []string
}

// UsesAdapter reports whether the client reaches its data through the REST server.
func (cfg *ClientConfig) UsesAdapter() bool {
	return cfg.Adapter.HTTPAddress != ""
}

// GetClientConfig builds and validates the client view of the merged
// configuration. args excludes the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields relevant to the client runtime.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: cfg.Adapter,
		DB:      cfg.Storage.DB,
		Workers: cfg.Workers,
		Billing: cfg.Billing,
		LogFile: cfg.App.LogFile,
		Args:    cfg.Args,
	}
}

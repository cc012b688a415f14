// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// validate checks the invariants shared by every binary. Binary-specific
// requirements are checked by the views.
func (cfg *StructuredConfig) validate() error {
	if db := cfg.Storage.DB; db.Driver != "" && !slices.Contains([]string{DriverSQLite, DriverPostgres}, db.Driver) {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.RefreshInterval < 0 {
		return fmt.Errorf("%w: negative refresh interval", ErrInvalidWorkerConfigs)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidServerConfigs)
	}

	if cfg.DB.Driver == "" || cfg.DB.DSN == "" {
		return fmt.Errorf("%w: driver and dsn are required", ErrInvalidStorageConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" && (cfg.DB.Driver == "" || cfg.DB.DSN == "") {
		return fmt.Errorf("%w: either an adapter address or a database is required", ErrInvalidAdapterConfigs)
	}

	if cfg.Adapter.HTTPAddress != "" && cfg.Adapter.RequestTimeout == 0 {
		return fmt.Errorf("%w: zero request timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.Workers.RefreshInterval == 0 {
		return fmt.Errorf("%w: zero refresh interval", ErrInvalidWorkerConfigs)
	}

	return nil
}

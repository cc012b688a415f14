// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// loadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is ignored.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading .env file %q: %w", path, err)
	}

	return nil
}

// parseEnv fills cfg from the environment through the env and envPrefix tags,
// so STORAGE_DB_DRIVER lands in cfg.Storage.DB.Driver. Unset variables leave
// their fields zero for the merge to skip.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// StructuredConfig is the top-level configuration container shared by the
// server and the client binaries. It is populated by merging defaults, an
// optional JSON file, a .env file, environment variables and command-line
// flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds settings that are not tied to one transport.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the REST server address and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the client uses to reach the REST server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background refresh settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Billing holds document submission settings.
	Billing Billing `envPrefix:"BILLING_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded before the environment is read.
	// A missing file is not an error.
	DotEnvPath string `env:"DOTENV"`

	// Args are the command-line arguments left after flag parsing.
	Args []string
}

// App holds application-level settings.
type App struct {
	// Version is reported by the server version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogFile is where the client writes its logs. Empty means stdout.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database.
type DB struct {
	// Driver is either "sqlite3" or "pgx".
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name: a file path for SQLite or a connection
	// URI for PostgreSQL.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the REST server.
type Server struct {
	// HTTPAddress is the TCP address the server listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds the client's REST connection settings.
type Adapter struct {
	// HTTPAddress is the base URL of the REST server
	// (e.g. "http://localhost:8080").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// APIKey is sent as the apikey header and as a bearer token.
	// Env: ADAPTER_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background worker settings.
type Workers struct {
	// RefreshInterval is how often the client refreshes every resource.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Billing holds document submission settings.
type Billing struct {
	// Compensate removes a document whose line items could not be written.
	// Env: BILLING_COMPENSATE
	Compensate bool `env:"COMPENSATE"`
}

// Defaults returns the configuration used when no source sets a value.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			LogFile: "garage-client.log",
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "garage.db",
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Adapter: Adapter{
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			RefreshInterval: time.Minute,
		},
		DotEnvPath: ".env",
	}
}

// GetStructuredConfig loads, merges, and validates the configuration. Sources
// are applied in the following order, later sources overriding non-zero
// fields of earlier ones:
//  1. Defaults
//  2. JSON file (path resolved from the environment or flags)
//  3. .env file and environment variables
//  4. Command-line flags (args, without the program name)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// EnvTest is the value of App.Env that switches the server to the test
// database.
const EnvTest = "test"

// StructuredConfig is the top-level configuration container for the messagely
// server and client. It is populated by merging values from environment
// variables, command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, password hashing and build settings.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings the command-line client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the settings of client-side background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds the positional command-line arguments left after flag
	// parsing. The client reads its subcommand from here.
	Args []string `json:"-"`
}

// App groups settings of the authentication flow.
type App struct {
	// Env is the runtime environment name. [EnvTest] selects DB.TestDSN.
	Env string `env:"ENV"`

	// TokenSignKey is the HMAC secret used to sign and verify tokens.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim written to and required from tokens.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptWorkFactor is the bcrypt cost used when hashing passwords.
	BcryptWorkFactor int `env:"BCRYPT_WORK_FACTOR"`

	// Version is reported by the /version endpoint.
	Version string `env:"VERSION"`
}

// Storage groups the configuration of the persistence backend.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the relational database connection settings.
type DB struct {
	// Driver is the database/sql driver name: "pgx" or "sqlite3".
	Driver string `env:"DRIVER"`

	// DSN is the connection string used outside of tests.
	DSN string `env:"DATABASE_URI"`

	// TestDSN is the connection string used when App.Env is [EnvTest].
	TestDSN string `env:"TEST_DATABASE_URI"`
}

// Server holds network settings of the HTTP server.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the settings of the HTTP client talking to the server.
type Adapter struct {
	// HTTPAddress is the base URL of the server, e.g. http://localhost:3000.
	HTTPAddress string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Token is the bearer token attached to authenticated client requests.
	Token string `env:"TOKEN"`
}

// Workers holds the configuration of client background workers.
type Workers struct {
	// PollInterval is the period of the inbox watcher.
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// DatabaseDSN returns the connection string for the configured environment:
// DB.TestDSN when App.Env is [EnvTest], DB.DSN otherwise.
func (cfg *StructuredConfig) DatabaseDSN() string {
	if cfg.App.Env == EnvTest {
		return cfg.Storage.DB.TestDSN
	}

	return cfg.Storage.DB.DSN
}

// GetStructuredConfig assembles and validates the server configuration from
// os.Args, the environment and the optional JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build((*StructuredConfig).validate)
}

// GetClientConfig assembles the command-line client configuration.
// It only validates the sections the client uses.
func GetClientConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build((*StructuredConfig).validateClient)
}

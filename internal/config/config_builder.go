// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// configBuilder collects partial configurations from several sources and
// merges them into one [StructuredConfig].
//
// Sources are merged in the order they were added and a field is only taken
// from a later source when every earlier source left it zero. Environment
// variables therefore win over flags, flags over the JSON file and the JSON
// file over the defaults.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configurations and runs validate on the result.
// Any error recorded by a with* step is returned first.
func (b *configBuilder) build(validate func(*StructuredConfig) error) (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if validate == nil {
		return config, nil
	}

	return config, validate(config)
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flagsCfg, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flagsCfg)
	return b
}

// withJSON parses the JSON file named by the last source that set
// JSONFilePath. It is a no-op when no source did.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}

// withDefaults appends the built-in defaults as the lowest-priority source.
// Secrets and the bcrypt work factor have no default.
func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	return b
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Env:           "development",
			TokenIssuer:   "messagely",
			TokenDuration: 24 * time.Hour,
			Version:       "N/A",
		},
		Storage: Storage{
			DB: DB{
				Driver:  DriverPostgres,
				DSN:     "postgresql:///messagely",
				TestDSN: "postgresql:///messagely_test",
			},
		},
		Server: Server{
			HTTPAddress:    "localhost:3000",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:3000",
			RequestTimeout: 10 * time.Second,
		},
		Workers: Workers{
			PollInterval: 5 * time.Second,
		},
	}
}

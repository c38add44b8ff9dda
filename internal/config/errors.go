// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by GetStructuredConfig and GetClientConfig.
// They are the configuration errors of the application: a process that gets
// one of them must not start.
var (
	// ErrInvalidAppConfigs is returned when the token secret, token settings
	// or bcrypt work factor are missing or out of range.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidStorageConfigs is returned when the driver is unsupported or
	// the connection string for the active environment is empty.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs is returned when the listen address is empty.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidAdapterConfigs is returned when the client has no server
	// address or request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")

	// ErrInvalidWorkerConfigs is returned when a worker interval is not positive.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)

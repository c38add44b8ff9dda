// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	// ErrUnknownCommand is returned for a subcommand the client does not know.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrUsage is returned when a subcommand gets the wrong arguments.
	ErrUsage = errors.New("wrong arguments")

	// ErrNoToken is returned by subcommands that need a token when none was
	// configured with -token or ADAPTER_TOKEN.
	ErrNoToken = errors.New("no token: log in first and pass it with -token or ADAPTER_TOKEN")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line client of the messagely API.
//
// An [App] turns a subcommand and its arguments into calls on
// [adapter.ServerAdapter] and prints the results as JSON. The watch
// subcommand runs an inbox watcher worker until the context is cancelled.
package client

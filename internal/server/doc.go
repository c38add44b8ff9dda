// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the messagely HTTP server.
//
// It owns the server lifecycle: startup, waiting for SIGTERM, SIGINT or
// SIGQUIT and graceful shutdown of in-flight requests.
package server

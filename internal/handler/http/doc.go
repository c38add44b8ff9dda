// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the messagely server.
//
// It wires the chi router, the request handlers and the middleware chain.
// Trace ids, access logging, authentication and the ownership rules of users
// and messages are resolved here before a request reaches the service layer.
// Every failure leaves the package through writeError as a JSON error body.
package http

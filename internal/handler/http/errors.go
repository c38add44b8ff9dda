// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// Bearer scheme but the token value itself is blank.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Request decoding errors.
var (
	ErrInvalidJSON      = errors.New("invalid JSON was passed")
	ErrInvalidMessageID = errors.New("message id must be a positive integer")
)

// errNoMessageInContext means a message route was mounted without an
// ownership middleware.
var errNoMessageInContext = errors.New("no message in request context")

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-messagely/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UsernameCtxKey is the key used to store the acting user in the context.
// The auth middleware writes it after the bearer token was verified.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UsernameCtxKey, "alice")
var UsernameCtxKey = contextKey("username")

// MessageCtxKey is the key under which the message ownership middlewares
// store the already resolved models.MessageDetail.
var MessageCtxKey = contextKey("message")

// GetUsernameFromContext retrieves the acting username from the context.
//
// Returns the username and an ok flag:
//   - ok == true:  value is found, is a string and is not empty
//   - ok == false: value is missing, empty or has an unexpected type
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok && username != ""
}

// GetMessageFromContext retrieves the message resolved by an ownership
// middleware.
func GetMessageFromContext(ctx context.Context) (models.MessageDetail, bool) {
	message, ok := ctx.Value(MessageCtxKey).(models.MessageDetail)
	return message, ok
}

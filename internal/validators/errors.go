// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername     = errors.New("username must be 1-64 letters, digits, '.', '_' or '-'")
	ErrEmptyPassword       = errors.New("password is required")
	ErrEmptyFirstName      = errors.New("first name is required")
	ErrEmptyLastName       = errors.New("last name is required")
	ErrEmptyPhone          = errors.New("phone is required")
	ErrInvalidFromUsername = errors.New("invalid sender username")
	ErrInvalidToUsername   = errors.New("invalid recipient username")
	ErrEmptyBody           = errors.New("message body is required")
	ErrInvalidMessageID    = errors.New("invalid message id")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrUnauthorized = errors.New("invalid user/password")
	ErrForbidden    = errors.New("action is not permitted for this user")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrNoActingUser          = errors.New("no acting user in context")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidCostFactor is a configuration error: the bcrypt work factor
	// is missing or outside [bcrypt.MinCost, bcrypt.MaxCost].
	ErrInvalidCostFactor = errors.New("invalid bcrypt cost factor")

	// ErrPasswordTooLong is returned for plaintexts bcrypt would truncate.
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
)

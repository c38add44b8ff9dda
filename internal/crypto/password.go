// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordLength is the longest plaintext bcrypt hashes without truncation.
const MaxPasswordLength = 72

// bcryptHasher is the private implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a [PasswordHasher] using bcrypt with the given
// work factor. Returns ErrInvalidCostFactor when cost is zero or outside
// [bcrypt.MinCost, bcrypt.MaxCost].
func NewBcryptHasher(cost int) (PasswordHasher, error) {
	if !validCost(cost) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCostFactor, cost)
	}

	return &bcryptHasher{cost: cost}, nil
}

// Hash implements [PasswordHasher].
func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	if !validCost(h.cost) {
		return "", fmt.Errorf("%w: %d", ErrInvalidCostFactor, h.cost)
	}

	if len(plaintext) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hashed), nil
}

// Verify implements [PasswordHasher]. bcrypt compares in constant time.
func (h *bcryptHasher) Verify(plaintext, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false
	}

	return err == nil
}

func validCost(cost int) bool {
	return cost >= bcrypt.MinCost && cost <= bcrypt.MaxCost
}

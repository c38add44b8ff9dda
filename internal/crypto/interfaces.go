// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the credential hasher used by the auth service.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks plaintexts against stored hashes.
//
// Hashing the same plaintext twice yields different strings. Only Verify can
// tell whether a plaintext matches a hash.
type PasswordHasher interface {
	// Hash returns the salted hash of plaintext.
	// Fails with ErrPasswordTooLong for inputs over MaxPasswordLength bytes and
	// with ErrInvalidCostFactor when the hasher has no usable cost.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hashed. A malformed hash is
	// reported as a mismatch.
	Verify(plaintext, hashed string) bool
}

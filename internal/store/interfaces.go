// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store is the persistence layer of messagely. It owns the SQL
// schema access for users and messages and hides the differences between
// the PostgreSQL and SQLite backends behind [UserRepository] and
// [MessageRepository].
package store

import (
	"context"

	"github.com/MKhiriev/go-messagely/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the data access of the "users" table and of the
// message lists derived from it.
type UserRepository interface {
	// CreateUser inserts user, whose Password must already be hashed, and
	// stamps join_at and last_login_at with the current time.
	// Returns ErrUsernameAlreadyExists when the username is taken.
	CreateUser(ctx context.Context, user models.User) (models.UserPublic, error)

	// GetPasswordHash returns the stored hash or ErrUserNotFound.
	GetPasswordHash(ctx context.Context, username string) (string, error)

	// UpdateLoginTimestamp sets last_login_at to the current time.
	// Returns ErrUserNotFound when no row was updated.
	UpdateLoginTimestamp(ctx context.Context, username string) error

	// All lists every user in storage order.
	All(ctx context.Context) ([]models.UserSummary, error)

	// Get returns the public profile of username or ErrUserNotFound.
	Get(ctx context.Context, username string) (models.UserPublic, error)

	// MessagesFrom lists messages sent by username with the recipient nested.
	MessagesFrom(ctx context.Context, username string) ([]models.SentMessage, error)

	// MessagesTo lists messages received by username with the sender nested.
	MessagesTo(ctx context.Context, username string) ([]models.ReceivedMessage, error)
}

// MessageRepository is the data access of the "messages" table.
// It performs no authorization.
type MessageRepository interface {
	// Create inserts message with sent_at set to the current time and an
	// unset read_at. Returns ErrUserNotFound when either party is unknown.
	Create(ctx context.Context, message models.Message) (models.Message, error)

	// Get returns the message with both participants or ErrMessageNotFound.
	Get(ctx context.Context, id int64) (models.MessageDetail, error)

	// MarkRead sets read_at to the current time unless it is already set.
	// Returns ErrMessageNotFound when the message does not exist.
	MarkRead(ctx context.Context, id int64) (models.ReadReceipt, error)
}

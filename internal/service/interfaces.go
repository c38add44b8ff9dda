// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of messagely: registration and
// login, token issuance, user lookups and direct messages.
//
// Services sit between the HTTP handlers and the store. They validate input,
// enforce authorization rules that depend on the acting user and translate
// storage failures into the sentinel errors declared in errors.go.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-messagely/models"
)

// AuthService covers the credential flow: registration, password checks,
// login bookkeeping and JWT issuance.
type AuthService interface {
	// Register validates req, hashes the password and persists the user.
	Register(ctx context.Context, req models.RegisterRequest) (models.UserPublic, error)

	// Authenticate reports whether password matches the stored hash of
	// username. A missing user is ErrUnauthorized; a wrong password is
	// false with a nil error.
	Authenticate(ctx context.Context, username, password string) (bool, error)

	// Login authenticates creds, refreshes last_login_at and issues a token.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// UpdateLoginTimestamp sets last_login_at of username to now.
	UpdateLoginTimestamp(ctx context.Context, username string) error

	CreateToken(ctx context.Context, username string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService exposes read-only views of users and their message lists.
type UserService interface {
	All(ctx context.Context) ([]models.UserSummary, error)
	Get(ctx context.Context, username string) (models.UserPublic, error)
	MessagesFrom(ctx context.Context, username string) ([]models.SentMessage, error)
	MessagesTo(ctx context.Context, username string) ([]models.ReceivedMessage, error)
}

// MessageService sends, looks up and acknowledges direct messages.
type MessageService interface {
	// Send persists msg. The sender must be the acting user of ctx.
	Send(ctx context.Context, msg models.Message) (models.Message, error)
	Get(ctx context.Context, id int64) (models.MessageDetail, error)
	MarkRead(ctx context.Context, id int64) (models.ReadReceipt, error)
}

// AppInfoService reports build metadata of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionResponse
}

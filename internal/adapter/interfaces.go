// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the typed client of the messagely HTTP API.
//
// The primary abstraction is [ServerAdapter], which decouples the command-line
// client and its workers from the underlying transport. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-messagely/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the messagely
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. Both the raw token and the "Bearer <token>"
	// form are accepted.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the returned token is stored
	// via SetToken and returned.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)

	// Login exchanges credentials for a token, stores it via SetToken and
	// returns it.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// Users lists every registered user.
	Users(ctx context.Context) ([]models.UserSummary, error)

	// User returns the profile of username. Only the acting user's own
	// profile is readable.
	User(ctx context.Context, username string) (models.UserPublic, error)

	// MessagesTo returns the inbox of username.
	MessagesTo(ctx context.Context, username string) ([]models.ReceivedMessage, error)

	// MessagesFrom returns the outbox of username.
	MessagesFrom(ctx context.Context, username string) ([]models.SentMessage, error)

	// SendMessage sends a message from the token's owner.
	SendMessage(ctx context.Context, req models.SendMessageRequest) (models.Message, error)

	// GetMessage returns a message the token's owner sent or received.
	GetMessage(ctx context.Context, id int64) (models.MessageDetail, error)

	// MarkRead marks a received message as read.
	MarkRead(ctx context.Context, id int64) (models.ReadReceipt, error)

	// Version returns the build information of the server.
	Version(ctx context.Context) (models.VersionResponse, error)
}

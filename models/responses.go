// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenResponse is returned by login and registration.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse wraps a single user profile.
type UserResponse struct {
	User UserPublic `json:"user"`
}

// UsersResponse wraps the list of all users.
type UsersResponse struct {
	Users []UserSummary `json:"users"`
}

// MessageResponse wraps a single message payload. The payload type depends on
// the endpoint: [Message] after sending, [MessageDetail] on lookup and
// [ReadReceipt] after marking as read.
type MessageResponse[T Message | MessageDetail | ReadReceipt] struct {
	Message T `json:"message"`
}

// MessagesResponse wraps a user's inbox or outbox.
type MessagesResponse[T SentMessage | ReceivedMessage] struct {
	Messages []T `json:"messages"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries a human-readable message and the HTTP status code.
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// VersionResponse describes the running server build.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

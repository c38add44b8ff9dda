// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Message represents a direct message row of the "messages" table.
//
// ReadAt is nil until the recipient marks the message as read. Once set it is
// never cleared.
type Message struct {
	ID           int64      `json:"id"`
	FromUsername string     `json:"from_username"`
	ToUsername   string     `json:"to_username"`
	Body         string     `json:"body"`
	SentAt       time.Time  `json:"sent_at"`
	ReadAt       *time.Time `json:"read_at"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}

// IsRead reports whether the recipient has already marked the message as read.
func (m Message) IsRead() bool {
	return m.ReadAt != nil
}

// MessageDetail is a single message together with both participants.
type MessageDetail struct {
	ID       int64       `json:"id"`
	Body     string      `json:"body"`
	SentAt   time.Time   `json:"sent_at"`
	ReadAt   *time.Time  `json:"read_at"`
	FromUser UserProfile `json:"from_user"`
	ToUser   UserProfile `json:"to_user"`
}

// IsParticipant reports whether username is the sender or the recipient.
func (m MessageDetail) IsParticipant(username string) bool {
	return m.FromUser.Username == username || m.ToUser.Username == username
}

// IsRecipient reports whether username is the recipient of the message.
func (m MessageDetail) IsRecipient(username string) bool {
	return m.ToUser.Username == username
}

// SentMessage is an entry of a user's outbox: the recipient is nested.
type SentMessage struct {
	ID     int64       `json:"id"`
	Body   string      `json:"body"`
	SentAt time.Time   `json:"sent_at"`
	ReadAt *time.Time  `json:"read_at"`
	ToUser UserProfile `json:"to_user"`
}

// ReceivedMessage is an entry of a user's inbox: the sender is nested.
type ReceivedMessage struct {
	ID       int64       `json:"id"`
	Body     string      `json:"body"`
	SentAt   time.Time   `json:"sent_at"`
	ReadAt   *time.Time  `json:"read_at"`
	FromUser UserProfile `json:"from_user"`
}

// ReadReceipt is returned after a message was marked as read.
type ReadReceipt struct {
	ID     int64      `json:"id"`
	ReadAt *time.Time `json:"read_at"`
}

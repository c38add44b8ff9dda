// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account row of the "users" table.
// Password always holds a bcrypt hash once the user is persisted and is
// never serialized to JSON.
type User struct {
	// Username is the unique identifier and primary key of the user.
	Username string `json:"username"`

	// Password is the bcrypt hash of the user's password.
	Password string `json:"-"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`

	// JoinAt is set once when the account is created.
	JoinAt time.Time `json:"join_at"`

	// LastLoginAt is refreshed on every successful login.
	LastLoginAt time.Time `json:"last_login_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns the projection of u that is safe to hand out to callers.
func (u User) Public() UserPublic {
	return UserPublic{
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Phone:       u.Phone,
		JoinAt:      u.JoinAt,
		LastLoginAt: u.LastLoginAt,
	}
}

// UserPublic is the full user profile without the password hash.
// It is returned by registration and by the user detail endpoint.
type UserPublic struct {
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Phone       string    `json:"phone"`
	JoinAt      time.Time `json:"join_at"`
	LastLoginAt time.Time `json:"last_login_at"`
}

// UserSummary is the short form used when listing every user.
type UserSummary struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UserProfile is the counterpart of a message: the sender or recipient
// nested inside message views.
type UserProfile struct {
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-messagely/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	FieldUsername     = "username"
	FieldPassword     = "password"
	FieldFirstName    = "first_name"
	FieldLastName     = "last_name"
	FieldPhone        = "phone"
	FieldID           = "id"
	FieldFromUsername = "from_username"
	FieldToUsername   = "to_username"
	FieldBody         = "body"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// MessagelyValidator implements the Validator interface for the request and
// domain models of the messaging service: RegisterRequest, Credentials,
// SendMessageRequest and Message.
type MessagelyValidator struct {
}

// NewMessagelyValidator constructs a new MessagelyValidator
// and returns it as the Validator interface.
func NewMessagelyValidator() Validator {
	return &MessagelyValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// every field of the model is validated.
func (v *MessagelyValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(*value, fields...)

	case models.Credentials:
		return v.validateCredentials(value, fields...)
	case *models.Credentials:
		return v.validateCredentials(*value, fields...)

	case models.SendMessageRequest:
		return v.validateMessage(models.Message{ToUsername: value.ToUsername, Body: value.Body}, defaultFields(fields, FieldToUsername, FieldBody)...)
	case *models.SendMessageRequest:
		return v.validateMessage(models.Message{ToUsername: value.ToUsername, Body: value.Body}, defaultFields(fields, FieldToUsername, FieldBody)...)

	case models.Message:
		return v.validateMessage(value, fields...)
	case *models.Message:
		return v.validateMessage(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *MessagelyValidator) validateRegisterRequest(request models.RegisterRequest, fields ...string) error {
	fields = defaultFields(fields, FieldUsername, FieldPassword, FieldFirstName, FieldLastName, FieldPhone)

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if !usernamePattern.MatchString(request.Username) {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if request.Password == "" {
				return ErrEmptyPassword
			}
		case FieldFirstName:
			if isBlank(request.FirstName) {
				return ErrEmptyFirstName
			}
		case FieldLastName:
			if isBlank(request.LastName) {
				return ErrEmptyLastName
			}
		case FieldPhone:
			if isBlank(request.Phone) {
				return ErrEmptyPhone
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCredentials only checks presence: a malformed username simply does
// not match any account.
func (v *MessagelyValidator) validateCredentials(credentials models.Credentials, fields ...string) error {
	fields = defaultFields(fields, FieldUsername, FieldPassword)

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if credentials.Username == "" {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if credentials.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *MessagelyValidator) validateMessage(message models.Message, fields ...string) error {
	fields = defaultFields(fields, FieldFromUsername, FieldToUsername, FieldBody)

	for _, f := range fields {
		switch f {
		case FieldID:
			if message.ID <= 0 {
				return ErrInvalidMessageID
			}
		case FieldFromUsername:
			if !usernamePattern.MatchString(message.FromUsername) {
				return ErrInvalidFromUsername
			}
		case FieldToUsername:
			if !usernamePattern.MatchString(message.ToUsername) {
				return ErrInvalidToUsername
			}
		case FieldBody:
			if isBlank(message.Body) {
				return ErrEmptyBody
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func defaultFields(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

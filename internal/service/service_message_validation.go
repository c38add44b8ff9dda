// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-messagely/internal/validators"
	"github.com/MKhiriev/go-messagely/models"
)

// MessageServiceWrapper defines middleware composition for MessageService.
// Implementations wrap an existing MessageService to add behavior such as
// logging or validating.
type MessageServiceWrapper interface {
	Wrap(MessageService) MessageService // returns a decorated MessageService applying additional behavior
}

// MessageValidationService rejects malformed input before it reaches the
// wrapped MessageService.
type MessageValidationService struct {
	inner     MessageService
	validator validators.Validator
}

func NewMessageValidationService() MessageServiceWrapper {
	return &MessageValidationService{
		validator: validators.NewMessagelyValidator(),
	}
}

func (v *MessageValidationService) Send(ctx context.Context, msg models.Message) (models.Message, error) {
	if err := v.validator.Validate(ctx, msg); err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Send(ctx, msg)
}

func (v *MessageValidationService) Get(ctx context.Context, id int64) (models.MessageDetail, error) {
	if err := v.validator.Validate(ctx, models.Message{ID: id}, validators.FieldID); err != nil {
		return models.MessageDetail{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Get(ctx, id)
}

func (v *MessageValidationService) MarkRead(ctx context.Context, id int64) (models.ReadReceipt, error) {
	if err := v.validator.Validate(ctx, models.Message{ID: id}, validators.FieldID); err != nil {
		return models.ReadReceipt{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.MarkRead(ctx, id)
}

func (v *MessageValidationService) Wrap(wrapped MessageService) MessageService {
	v.inner = wrapped
	return v
}

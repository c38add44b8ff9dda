// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/store"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/MKhiriev/go-messagely/models"
)

// messageService is the concrete implementation of MessageService.
// Input validation lives in messageValidationService, which wraps it.
type messageService struct {
	messageRepository store.MessageRepository

	logger *logger.Logger
}

func NewMessageService(messageRepository store.MessageRepository, logger *logger.Logger) MessageService {
	return &messageService{
		messageRepository: messageRepository,
		logger:            logger,
	}
}

// Send persists msg on behalf of the acting user stored in ctx.
//
// Returns:
//   - ErrNoActingUser if ctx carries no username.
//   - ErrForbidden if msg.FromUsername is not the acting user.
//   - A wrapped store.ErrUserNotFound if the recipient does not exist.
func (s *messageService) Send(ctx context.Context, msg models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	actingUser, ok := utils.GetUsernameFromContext(ctx)
	if !ok {
		log.Error().Str("func", "messageService.Send").Msg("no acting user in context")
		return models.Message{}, ErrNoActingUser
	}

	if msg.FromUsername != actingUser {
		log.Warn().
			Str("func", "messageService.Send").
			Str("acting_user", actingUser).
			Str("from_username", msg.FromUsername).
			Msg("attempt to send a message on behalf of another user")
		return models.Message{}, ErrForbidden
	}

	created, err := s.messageRepository.Create(ctx, msg)
	if err != nil {
		log.Err(err).Str("func", "messageService.Send").Str("to_username", msg.ToUsername).Msg("message creation failed")
		return models.Message{}, fmt.Errorf("message creation failed: %w", err)
	}

	log.Info().Str("func", "messageService.Send").Int64("message_id", created.ID).Msg("message sent")
	return created, nil
}

func (s *messageService) Get(ctx context.Context, id int64) (models.MessageDetail, error) {
	message, err := s.messageRepository.Get(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "messageService.Get").Int64("message_id", id).Msg("message lookup failed")
		return models.MessageDetail{}, fmt.Errorf("message lookup failed: %w", err)
	}

	return message, nil
}

// MarkRead stamps read_at of message id. Calling it again keeps the first
// timestamp. Recipient checks are done by the caller.
func (s *messageService) MarkRead(ctx context.Context, id int64) (models.ReadReceipt, error) {
	receipt, err := s.messageRepository.MarkRead(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "messageService.MarkRead").Int64("message_id", id).Msg("marking message as read failed")
		return models.ReadReceipt{}, fmt.Errorf("marking message as read failed: %w", err)
	}

	return receipt, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/store"
	"github.com/MKhiriev/go-messagely/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (s *userService) All(ctx context.Context) ([]models.UserSummary, error) {
	users, err := s.userRepository.All(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.All").Msg("listing users failed")
		return nil, fmt.Errorf("listing users failed: %w", err)
	}

	return users, nil
}

// Get returns the public profile of username. A missing user surfaces as a
// wrapped store.ErrUserNotFound.
func (s *userService) Get(ctx context.Context, username string) (models.UserPublic, error) {
	user, err := s.userRepository.Get(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.Get").Str("username", username).Msg("user lookup failed")
		return models.UserPublic{}, fmt.Errorf("user lookup failed: %w", err)
	}

	return user, nil
}

func (s *userService) MessagesFrom(ctx context.Context, username string) ([]models.SentMessage, error) {
	messages, err := s.userRepository.MessagesFrom(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.MessagesFrom").Str("username", username).Msg("listing sent messages failed")
		return nil, fmt.Errorf("listing sent messages failed: %w", err)
	}

	return messages, nil
}

func (s *userService) MessagesTo(ctx context.Context, username string) ([]models.ReceivedMessage, error) {
	messages, err := s.userRepository.MessagesTo(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "userService.MessagesTo").Str("username", username).Msg("listing received messages failed")
		return nil, fmt.Errorf("listing received messages failed: %w", err)
	}

	return messages, nil
}

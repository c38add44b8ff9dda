// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-messagely/internal/config"
	"github.com/MKhiriev/go-messagely/internal/crypto"
	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/store"
	"github.com/MKhiriev/go-messagely/models"
)

// Services groups every service consumed by the HTTP handler.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	MessageService MessageService
	AppInfoService AppInfoService
}

// NewServices wires the services on top of storages.
//
// It fails when the bcrypt work factor in cfg is unusable or buildInfo has no
// version.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewBcryptHasher(cfg.App.BcryptWorkFactor)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}

	appInfoService, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	messageService := NewMessageValidationService().Wrap(
		NewMessageService(storages.MessageRepository, logger),
	)

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		MessageService: messageService,
		AppInfoService: appInfoService,
	}, nil
}

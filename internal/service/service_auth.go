// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-messagely/internal/config"
	"github.com/MKhiriev/go-messagely/internal/crypto"
	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/internal/store"
	"github.com/MKhiriev/go-messagely/internal/utils"
	"github.com/MKhiriev/go-messagely/internal/validators"
	"github.com/MKhiriev/go-messagely/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher hashes passwords at registration and verifies them at login.
	hasher crypto.PasswordHasher

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and PasswordHasher and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewMessagelyValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// Returns the persisted public profile or:
//   - ErrInvalidDataProvided if a field of req is missing or malformed, or the
//     password is longer than bcrypt accepts.
//   - A wrapped store.ErrUsernameAlreadyExists if the username is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.UserPublic, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Err(err).Str("func", "authService.Register").Str("username", req.Username).Msg("invalid user data provided")
		return models.UserPublic{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Str("username", req.Username).Msg("password hashing failed")
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return models.UserPublic{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		return models.UserPublic{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := req.User()
	user.Password = hash

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Str("username", req.Username).Msg("user creation ended with error")
		return models.UserPublic{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Authenticate checks password against the stored hash of username.
//
// Returns ErrUnauthorized if the user does not exist. A mismatching password
// is reported as false with a nil error.
func (a *authService) Authenticate(ctx context.Context, username, password string) (bool, error) {
	log := logger.FromContext(ctx)

	hash, err := a.userRepository.GetPasswordHash(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("func", "authService.Authenticate").Str("username", username).Msg("user not found")
			return false, ErrUnauthorized
		}

		log.Err(err).Str("func", "authService.Authenticate").Str("username", username).Msg("password hash lookup failed")
		return false, fmt.Errorf("password hash lookup failed: %w", err)
	}

	return a.hasher.Verify(password, hash), nil
}

// Login authenticates an existing user and issues a token for them.
//
// Returns the token or:
//   - ErrUnauthorized if a credential is missing, the user does not exist or
//     the password does not match.
//   - ErrTokenCreationFailed if signing fails.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Debug().Err(err).Str("func", "authService.Login").Msg("credentials are incomplete")
		return models.Token{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	ok, err := a.Authenticate(ctx, creds.Username, creds.Password)
	if err != nil {
		return models.Token{}, err
	}
	if !ok {
		log.Debug().Str("func", "authService.Login").Str("username", creds.Username).Msg("wrong password")
		return models.Token{}, ErrUnauthorized
	}

	if err = a.UpdateLoginTimestamp(ctx, creds.Username); err != nil {
		return models.Token{}, err
	}

	return a.CreateToken(ctx, creds.Username)
}

// UpdateLoginTimestamp refreshes last_login_at of username.
// Returns ErrUnauthorized when no user row was updated.
func (a *authService) UpdateLoginTimestamp(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	if err := a.userRepository.UpdateLoginTimestamp(ctx, username); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Str("func", "authService.UpdateLoginTimestamp").Str("username", username).Msg("user not found")
			return ErrUnauthorized
		}

		log.Err(err).Str("func", "authService.UpdateLoginTimestamp").Str("username", username).Msg("login timestamp update failed")
		return fmt.Errorf("login timestamp update failed: %w", err)
	}

	return nil
}

// CreateToken issues a signed JWT for username.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, username string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.CreateToken").Msg("token signing failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong algorithm, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

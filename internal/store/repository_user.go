// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It handles account creation, lookup and the per-user message lists.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateUser persists a new user and returns its public projection.
//
// Both timestamps come from the repository clock, so the insert needs no
// RETURNING clause and behaves the same on every backend.
//
// Error handling:
//   - unique or primary key violation → [ErrUsernameAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.UserPublic, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	query, args, err := buildCreateUserQuery(r.builder, user, now)
	if err != nil {
		log.Err(err).Str("func", "userRepository.CreateUser").Msg("failed to build query")
		return models.UserPublic{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		classification := r.classify(err)
		log.Err(err).
			Str("func", "userRepository.CreateUser").
			Str("username", user.Username).
			Stringer("classification", classification).
			Msg("failed to insert user")

		if classification == UniqueViolation {
			return models.UserPublic{}, ErrUsernameAlreadyExists
		}
		return models.UserPublic{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	user.JoinAt = now
	user.LastLoginAt = now

	log.Debug().Str("func", "userRepository.CreateUser").Str("username", user.Username).Msg("user created")
	return user.Public(), nil
}

// GetPasswordHash returns the stored password hash of username.
func (r *userRepository) GetPasswordHash(ctx context.Context, username string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPasswordHashQuery(r.builder, username)
	if err != nil {
		log.Err(err).Str("func", "userRepository.GetPasswordHash").Msg("failed to build query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var hash string
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().Str("func", "userRepository.GetPasswordHash").Str("username", username).Msg("user not found")
			return "", ErrUserNotFound
		}

		log.Err(err).Str("func", "userRepository.GetPasswordHash").Str("username", username).Msg("failed to query password hash")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return hash, nil
}

// UpdateLoginTimestamp sets last_login_at of username to the repository clock.
// The affected-row count tells a missing user apart from a successful update.
func (r *userRepository) UpdateLoginTimestamp(ctx context.Context, username string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateLoginTimestampQuery(r.builder, username, r.now())
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdateLoginTimestamp").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdateLoginTimestamp").Str("username", username).Msg("failed to update login timestamp")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "userRepository.UpdateLoginTimestamp").Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected == 0 {
		log.Warn().Str("func", "userRepository.UpdateLoginTimestamp").Str("username", username).Msg("no user was updated")
		return ErrUserNotFound
	}

	return nil
}

// All returns the summary of every user. An empty table yields an empty slice.
func (r *userRepository) All(ctx context.Context) ([]models.UserSummary, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllUsersQuery(r.builder)
	if err != nil {
		log.Err(err).Str("func", "userRepository.All").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "userRepository.All").Msg("failed to execute query for getting all users")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.UserSummary, 0, 16)
	for rows.Next() {
		var user models.UserSummary
		if err = rows.Scan(&user.Username, &user.FirstName, &user.LastName); err != nil {
			log.Err(err).Str("func", "userRepository.All").Msg("failed to scan user row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "userRepository.All").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

// Get returns the public profile of username.
func (r *userRepository) Get(ctx context.Context, username string) (models.UserPublic, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetUserQuery(r.builder, username)
	if err != nil {
		log.Err(err).Str("func", "userRepository.Get").Msg("failed to build query")
		return models.UserPublic{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var user models.UserPublic
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Phone,
		&user.JoinAt,
		&user.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserPublic{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "userRepository.Get").Str("username", username).Msg("failed to query user")
		return models.UserPublic{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// MessagesFrom returns the outbox of username, oldest first.
func (r *userRepository) MessagesFrom(ctx context.Context, username string) ([]models.SentMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMessagesFromQuery(r.builder, username)
	if err != nil {
		log.Err(err).Str("func", "userRepository.MessagesFrom").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	messages := make([]models.SentMessage, 0, 16)
	err = r.queryMessageList(ctx, query, args, func(row messageListRow) {
		messages = append(messages, models.SentMessage{
			ID:     row.id,
			Body:   row.body,
			SentAt: row.sentAt,
			ReadAt: nullTimePtr(row.readAt),
			ToUser: row.counterpart,
		})
	})
	if err != nil {
		log.Err(err).Str("func", "userRepository.MessagesFrom").Str("username", username).Msg("failed to get sent messages")
		return nil, err
	}

	return messages, nil
}

// MessagesTo returns the inbox of username, oldest first.
func (r *userRepository) MessagesTo(ctx context.Context, username string) ([]models.ReceivedMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildMessagesToQuery(r.builder, username)
	if err != nil {
		log.Err(err).Str("func", "userRepository.MessagesTo").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	messages := make([]models.ReceivedMessage, 0, 16)
	err = r.queryMessageList(ctx, query, args, func(row messageListRow) {
		messages = append(messages, models.ReceivedMessage{
			ID:       row.id,
			Body:     row.body,
			SentAt:   row.sentAt,
			ReadAt:   nullTimePtr(row.readAt),
			FromUser: row.counterpart,
		})
	})
	if err != nil {
		log.Err(err).Str("func", "userRepository.MessagesTo").Str("username", username).Msg("failed to get received messages")
		return nil, err
	}

	return messages, nil
}

// messageListRow is one row of the inbox and outbox queries. counterpart is
// the recipient for the outbox and the sender for the inbox.
type messageListRow struct {
	id          int64
	body        string
	sentAt      time.Time
	readAt      sql.NullTime
	counterpart models.UserProfile
}

func (r *userRepository) queryMessageList(ctx context.Context, query string, args []any, collect func(messageListRow)) error {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var row messageListRow
		err = rows.Scan(
			&row.id,
			&row.body,
			&row.sentAt,
			&row.readAt,
			&row.counterpart.Username,
			&row.counterpart.FirstName,
			&row.counterpart.LastName,
			&row.counterpart.Phone,
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		collect(row)
	}

	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

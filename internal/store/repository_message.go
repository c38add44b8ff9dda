// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/models"
)

// messageRepository is the SQL implementation of [MessageRepository].
type messageRepository struct {
	*DB
	logger *logger.Logger
}

// NewMessageRepository constructs a [MessageRepository] backed by the
// provided database connection and logger.
func NewMessageRepository(db *DB, logger *logger.Logger) MessageRepository {
	logger.Debug().Msg("creating message repository")
	return &messageRepository{
		DB:     db,
		logger: logger,
	}
}

// Create persists message and returns it with the generated id and sent_at.
//
// Error handling:
//   - foreign key violation → [ErrUserNotFound] (a party does not exist).
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *messageRepository) Create(ctx context.Context, message models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	now := r.now()
	query, args, err := buildCreateMessageQuery(r.builder, message, now)
	if err != nil {
		log.Err(err).Str("func", "messageRepository.Create").Msg("failed to build query")
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		classification := r.classify(err)
		log.Err(err).
			Str("func", "messageRepository.Create").
			Str("from_username", message.FromUsername).
			Str("to_username", message.ToUsername).
			Stringer("classification", classification).
			Msg("failed to insert message")

		if classification == ForeignKeyViolation {
			return models.Message{}, ErrUserNotFound
		}
		return models.Message{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	message.ID = id
	message.SentAt = now
	message.ReadAt = nil

	log.Debug().Str("func", "messageRepository.Create").Int64("message_id", id).Msg("message created")
	return message, nil
}

// Get returns the message with id together with its sender and recipient.
func (r *messageRepository) Get(ctx context.Context, id int64) (models.MessageDetail, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetMessageQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "messageRepository.Get").Msg("failed to build query")
		return models.MessageDetail{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		message models.MessageDetail
		readAt  sql.NullTime
	)
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(
		&message.ID,
		&message.Body,
		&message.SentAt,
		&readAt,
		&message.FromUser.Username,
		&message.FromUser.FirstName,
		&message.FromUser.LastName,
		&message.FromUser.Phone,
		&message.ToUser.Username,
		&message.ToUser.FirstName,
		&message.ToUser.LastName,
		&message.ToUser.Phone,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.MessageDetail{}, ErrMessageNotFound
		}

		log.Err(err).Str("func", "messageRepository.Get").Int64("message_id", id).Msg("failed to query message")
		return models.MessageDetail{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	message.ReadAt = nullTimePtr(readAt)

	return message, nil
}

// MarkRead stamps read_at of an unread message and returns the stored value.
//
// The update and the read-back run in one transaction. Marking an already
// read message changes nothing and returns the original read_at.
func (r *messageRepository) MarkRead(ctx context.Context, id int64) (models.ReadReceipt, error) {
	log := logger.FromContext(ctx)

	updateQuery, updateArgs, err := buildMarkReadQuery(r.builder, id, r.now())
	if err != nil {
		log.Err(err).Str("func", "messageRepository.MarkRead").Msg("failed to build update query")
		return models.ReadReceipt{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	selectQuery, selectArgs, err := buildGetReadReceiptQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "messageRepository.MarkRead").Msg("failed to build select query")
		return models.ReadReceipt{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "messageRepository.MarkRead").Msg("failed to begin transaction")
		return models.ReadReceipt{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, updateQuery, updateArgs...)
	if err != nil {
		log.Err(err).Str("func", "messageRepository.MarkRead").Int64("message_id", id).Msg("failed to mark message as read")
		return models.ReadReceipt{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var (
		receipt models.ReadReceipt
		readAt  sql.NullTime
	)
	if err = tx.QueryRowContext(ctx, selectQuery, selectArgs...).Scan(&receipt.ID, &readAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().Str("func", "messageRepository.MarkRead").Int64("message_id", id).Msg("message not found")
			return models.ReadReceipt{}, ErrMessageNotFound
		}

		log.Err(err).Str("func", "messageRepository.MarkRead").Int64("message_id", id).Msg("failed to read back read_at")
		return models.ReadReceipt{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	receipt.ReadAt = nullTimePtr(readAt)

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "messageRepository.MarkRead").Msg("failed to commit transaction")
		return models.ReadReceipt{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	if affected, affectedErr := result.RowsAffected(); affectedErr == nil && affected == 0 {
		log.Debug().Str("func", "messageRepository.MarkRead").Int64("message_id", id).Msg("message was already read")
	}

	return receipt, nil
}

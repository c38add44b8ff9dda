// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/models"
)

func newTestMessageRepo(t *testing.T) (MessageRepository, sqlmock.Sqlmock) {
	db, mock := newMockDB(t)
	return NewMessageRepository(db, logger.Nop()), mock
}

var messageDetailColumns = []string{
	"id", "body", "sent_at", "read_at",
	"f_username", "f_first_name", "f_last_name", "f_phone",
	"t_username", "t_first_name", "t_last_name", "t_phone",
}

func TestCreateMessage_Success(t *testing.T) {
	repo, mock := newTestMessageRepo(t)

	mock.ExpectQuery(`INSERT INTO messages \(from_username,to_username,body,sent_at\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING id`).
		WithArgs("alice", "bob", "hello", fixedNow).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	msg, err := repo.Create(context.Background(), models.Message{FromUsername: "alice", ToUsername: "bob", Body: "hello"})
	require.NoError(t, err)

	assert.Equal(t, models.Message{
		ID:           42,
		FromUsername: "alice",
		ToUsername:   "bob",
		Body:         "hello",
		SentAt:       fixedNow,
	}, msg)
	assert.False(t, msg.IsRead())
}

func TestCreateMessage_UnknownRecipient(t *testing.T) {
	repo, mock := newTestMessageRepo(t)

	mock.ExpectQuery("INSERT INTO messages").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.Create(context.Background(), models.Message{FromUsername: "alice", ToUsername: "ghost", Body: "?"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateMessage_DBError(t *testing.T) {
	repo, mock := newTestMessageRepo(t)

	mock.ExpectQuery("INSERT INTO messages").
		WillReturnError(errors.New("boom"))

	_, err := repo.Create(context.Background(), models.Message{FromUsername: "alice", ToUsername: "bob", Body: "?"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetMessage(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newTestMessageRepo(t)
		mock.ExpectQuery(`JOIN users AS f ON m.from_username = f.username JOIN users AS t ON m.to_username = t.username WHERE m.id = \$1`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(messageDetailColumns).
				AddRow(int64(7), "hello", fixedNow, nil,
					"alice", "Alice", "Liddell", "+1",
					"bob", "Bob", "Builder", "+2"))

		msg, err := repo.Get(context.Background(), 7)
		require.NoError(t, err)

		assert.Equal(t, int64(7), msg.ID)
		assert.Nil(t, msg.ReadAt)
		assert.Equal(t, "alice", msg.FromUser.Username)
		assert.Equal(t, "bob", msg.ToUser.Username)
		assert.True(t, msg.IsParticipant("alice"))
		assert.True(t, msg.IsRecipient("bob"))
		assert.False(t, msg.IsParticipant("carol"))
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestMessageRepo(t)
		mock.ExpectQuery("FROM messages").
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Get(context.Background(), 404)
		assert.ErrorIs(t, err, ErrMessageNotFound)
	})
}

func TestMarkRead(t *testing.T) {
	t.Run("first read sets read_at", func(t *testing.T) {
		repo, mock := newTestMessageRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE messages SET read_at = \$1 WHERE id = \$2 AND read_at IS NULL`).
			WithArgs(fixedNow, int64(7)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(`SELECT id, read_at FROM messages WHERE id = \$1`).
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "read_at"}).AddRow(int64(7), fixedNow))
		mock.ExpectCommit()

		receipt, err := repo.MarkRead(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, int64(7), receipt.ID)
		require.NotNil(t, receipt.ReadAt)
		assert.Equal(t, fixedNow, *receipt.ReadAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already read keeps original", func(t *testing.T) {
		repo, mock := newTestMessageRepo(t)
		earlier := fixedNow.Add(-1)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE messages").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT id, read_at FROM messages").
			WillReturnRows(sqlmock.NewRows([]string{"id", "read_at"}).AddRow(int64(7), earlier))
		mock.ExpectCommit()

		receipt, err := repo.MarkRead(context.Background(), 7)
		require.NoError(t, err)
		assert.Equal(t, earlier, *receipt.ReadAt)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newTestMessageRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE messages").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT id, read_at FROM messages").
			WillReturnRows(sqlmock.NewRows([]string{"id", "read_at"}))
		mock.ExpectRollback()

		_, err := repo.MarkRead(context.Background(), 404)
		assert.ErrorIs(t, err, ErrMessageNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin error", func(t *testing.T) {
		repo, mock := newTestMessageRepo(t)
		mock.ExpectBegin().WillReturnError(errors.New("boom"))

		_, err := repo.MarkRead(context.Background(), 7)
		assert.ErrorIs(t, err, ErrBeginningTransaction)
	})

	t.Run("commit error", func(t *testing.T) {
		repo, mock := newTestMessageRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE messages").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery("SELECT id, read_at FROM messages").
			WillReturnRows(sqlmock.NewRows([]string{"id", "read_at"}).AddRow(int64(7), fixedNow))
		mock.ExpectCommit().WillReturnError(errors.New("boom"))

		_, err := repo.MarkRead(context.Background(), 7)
		assert.ErrorIs(t, err, ErrCommitingTransaction)
	})
}

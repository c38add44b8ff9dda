// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-messagely/models"
)

// Column lists shared by the query builders. Message views alias the
// messages table as "m" and the joined users as "u", or "f" and "t" for the
// sender and recipient.
var (
	userSummaryColumns = []string{"username", "first_name", "last_name"}
	userPublicColumns  = []string{"username", "first_name", "last_name", "phone", "join_at", "last_login_at"}
	messageListColumns = []string{"m.id", "m.body", "m.sent_at", "m.read_at", "u.username", "u.first_name", "u.last_name", "u.phone"}
)

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User, now time.Time) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("username", "password", "first_name", "last_name", "phone", "join_at", "last_login_at").
		Values(user.Username, user.Password, user.FirstName, user.LastName, user.Phone, now, now).
		ToSql()
}

func buildGetPasswordHashQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select("password").
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildUpdateLoginTimestampQuery(b sq.StatementBuilderType, username string, now time.Time) (string, []any, error) {
	return b.Update(models.User{}.TableName()).
		Set("last_login_at", now).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildSelectAllUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userSummaryColumns...).
		From(models.User{}.TableName()).
		ToSql()
}

func buildGetUserQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userPublicColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

// buildMessagesFromQuery selects the messages sent by username joined with
// their recipients.
func buildMessagesFromQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(messageListColumns...).
		From(fmt.Sprintf("%s AS m", models.Message{}.TableName())).
		Join(fmt.Sprintf("%s AS u ON m.to_username = u.username", models.User{}.TableName())).
		Where(sq.Eq{"m.from_username": username}).
		OrderBy("m.id").
		ToSql()
}

// buildMessagesToQuery selects the messages received by username joined with
// their senders.
func buildMessagesToQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(messageListColumns...).
		From(fmt.Sprintf("%s AS m", models.Message{}.TableName())).
		Join(fmt.Sprintf("%s AS u ON m.from_username = u.username", models.User{}.TableName())).
		Where(sq.Eq{"m.to_username": username}).
		OrderBy("m.id").
		ToSql()
}

// buildCreateMessageQuery inserts a message and returns its generated id.
func buildCreateMessageQuery(b sq.StatementBuilderType, message models.Message, now time.Time) (string, []any, error) {
	return b.Insert(message.TableName()).
		Columns("from_username", "to_username", "body", "sent_at").
		Values(message.FromUsername, message.ToUsername, message.Body, now).
		Suffix("RETURNING id").
		ToSql()
}

func buildGetMessageQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	users := models.User{}.TableName()

	return b.Select(
		"m.id", "m.body", "m.sent_at", "m.read_at",
		"f.username", "f.first_name", "f.last_name", "f.phone",
		"t.username", "t.first_name", "t.last_name", "t.phone",
	).
		From(fmt.Sprintf("%s AS m", models.Message{}.TableName())).
		Join(fmt.Sprintf("%s AS f ON m.from_username = f.username", users)).
		Join(fmt.Sprintf("%s AS t ON m.to_username = t.username", users)).
		Where(sq.Eq{"m.id": id}).
		ToSql()
}

// buildMarkReadQuery only touches unread messages, so read_at is set once.
func buildMarkReadQuery(b sq.StatementBuilderType, id int64, now time.Time) (string, []any, error) {
	return b.Update(models.Message{}.TableName()).
		Set("read_at", now).
		Where(sq.Eq{"id": id, "read_at": nil}).
		ToSql()
}

func buildGetReadReceiptQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select("id", "read_at").
		From(models.Message{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

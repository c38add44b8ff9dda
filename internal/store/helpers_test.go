// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/migrations"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

// newMockDB returns a Postgres-flavoured DB backed by sqlmock and a clock
// frozen at fixedNow.
func newMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := newDB(conn, migrations.DialectPostgres, sq.Dollar, NewPostgresErrorClassifier(), logger.Nop())
	db.SetClock(func() time.Time { return fixedNow })
	return db, mock
}

// newSQLiteDB returns a migrated in-memory SQLite DB with a clock that ticks
// one second per call, starting at fixedNow.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), ":memory:", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())

	tick := fixedNow
	db.SetClock(func() time.Time {
		tick = tick.Add(time.Second)
		return tick
	})
	return db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-messagely/internal/logger"
	"github.com/MKhiriev/go-messagely/migrations"
)

// DB is a database/sql connection pool together with everything the
// repositories need to talk to one backend: the migration dialect, a squirrel
// builder with the backend's placeholder format, the driver error classifier
// and the clock used for every persisted timestamp.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	now                func() time.Time
}

func newDB(conn *sql.DB, dialect string, placeholder sq.PlaceholderFormat, classificator ErrorClassificator, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
		now:                utcNow,
	}
}

// Migrate applies the embedded schema migrations for the backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the database/sql driver name of the backend.
func (db *DB) Dialect() string {
	return db.dialect
}

// SetClock replaces the source of join_at, last_login_at, sent_at and
// read_at values. A nil clock restores the default UTC wall clock.
func (db *DB) SetClock(now func() time.Time) {
	if now == nil {
		now = utcNow
	}
	db.now = now
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}

func utcNow() time.Time {
	return time.Now().UTC()
}

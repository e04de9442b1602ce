// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-plant-keeper/internal/config"
	"github.com/MKhiriev/go-plant-keeper/internal/logger"
	"github.com/MKhiriev/go-plant-keeper/migrations"
	sq "github.com/Masterminds/squirrel"
)

// Dialect names the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// ErrorClassificator decides how a failed database operation should be
// treated.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsForeignKeyViolation(err error) bool
}

// DB wraps a *sql.DB with the dialect-specific query builder and error
// classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Connect opens the database selected by the DSN scheme:
// "postgres://" and "postgresql://" use pgx, "sqlite://" and "file:" use
// go-sqlite3.
func Connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(cfg.DSN, "sqlite://"), strings.HasPrefix(cfg.DSN, "file:"):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, cfg.DSN)
	}
}

// Dialect returns the SQL backend of db.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded migrations of db's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// Ping implements [Pinger].
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// dueValue converts a due moment into the column representation of the
// dialect: timestamptz in PostgreSQL, ISO-8601 text in SQLite.
func (db *DB) dueValue(due time.Time) any {
	if db.dialect == DialectPostgres {
		return due.UTC()
	}
	return due.UTC().Format(time.RFC3339)
}

// logError logs err with its retry classification.
func (db *DB) logError(ctx context.Context, err error, funcName, msg string) {
	retryable := false
	if db.errorClassificator != nil {
		retryable = db.errorClassificator.Classify(err) == Retryable
	}
	logger.FromContext(ctx).Err(err).
		Str("func", funcName).
		Bool("retryable", retryable).
		Msg(msg)
}

func (db *DB) isForeignKeyViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsForeignKeyViolation(err)
}

// rollback is deferred by transactional methods; it is a no-op after commit.
func rollback(tx *sql.Tx) {
	_ = tx.Rollback()
}

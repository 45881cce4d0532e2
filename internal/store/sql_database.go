// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/migrations"
)

const (
	dialectPostgres = "postgres"
	dialectSQLite   = "sqlite"
)

// ErrorClassification tells whether a failed operation may succeed when
// retried.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// DB wraps a *sql.DB together with the dialect it talks to.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the schema matching the dialect of db.
func (db *DB) Migrate() error {
	switch db.dialect {
	case dialectPostgres:
		return migrations.MigratePostgres(db.DB)
	case dialectSQLite:
		return migrations.MigrateSQLite(db.DB)
	default:
		return fmt.Errorf("unknown database dialect %q", db.dialect)
	}
}

// classify maps retryable driver errors to [ErrTemporarilyUnavailable] and
// wraps everything else with fallback.
func (db *DB) classify(err, fallback error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrTemporarilyUnavailable, err)
	}
	return fmt.Errorf("%w: %w", fallback, err)
}

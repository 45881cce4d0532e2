package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
)

// newTestDB оборачивает sqlmock в *DB с postgres-классификатором.
func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		dialect:            dialectPostgres,
		errorClassificator: postgresErrorClassifier{},
		logger:             logger.Nop(),
	}, mock
}

func newTestSQLiteDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t)
	db.dialect = dialectSQLite
	db.errorClassificator = sqliteErrorClassifier{}
	return db, mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func expectationsMet(t *testing.T, mock sqlmock.Sqlmock) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet sqlmock expectations: %v", err)
	}
}

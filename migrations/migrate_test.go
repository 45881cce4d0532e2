package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigratePostgres_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	_ = mock // не используем напрямую, goose сам будет ходить в DB

	err = MigratePostgres(db)
	if err == nil {
		t.Fatal("expected error from MigratePostgres, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrateSQLite_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = MigrateSQLite(db)
	if err == nil || !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	for _, migrate := range []func(*sql.DB) error{MigratePostgres, MigrateSQLite} {
		err := migrate(db)
		if err == nil {
			t.Fatal("expected error when db is nil, got nil")
		}
		if !strings.Contains(err.Error(), "nil database") {
			t.Errorf("expected 'nil database' error, got: %v", err)
		}
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	for dir, fsys := range map[string]fs.FS{"postgres": postgresMigrations, "sqlite": sqliteMigrations} {
		files, err := fs.Glob(fsys, dir+"/*.sql")
		if err != nil {
			t.Fatalf("glob %s: %v", dir, err)
		}
		if len(files) == 0 {
			t.Errorf("no migrations embedded for %s", dir)
		}
		for _, f := range files {
			data, _ := fs.ReadFile(fsys, f)
			if !strings.Contains(string(data), "-- +goose Up") {
				t.Errorf("%s has no goose Up annotation", f)
			}
		}
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// goose сам будет ходить в DB, первый же запрос падает
	mock.ExpectExec(".*").WillReturnError(errors.New("connection refused"))

	err = Migrate(db, "postgres")
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "postgres")
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestGooseDialect(t *testing.T) {
	tests := map[string]string{
		"postgres": "pgx",
		"":         "pgx",
		"sqlite3":  "sqlite3",
		"sqlite":   "sqlite3",
	}
	for in, want := range tests {
		if got := gooseDialect(in); got != want {
			t.Errorf("gooseDialect(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("expected 3 migrations, got %d: %v", len(files), files)
	}

	for _, tbl := range []string{"profiles", "trips", "trip_entries"} {
		found := false
		for _, f := range files {
			b, _ := fs.ReadFile(embedMigrations, f)
			if strings.Contains(string(b), "CREATE TABLE IF NOT EXISTS "+tbl+" ") {
				found = true
			}
		}
		if !found {
			t.Errorf("no migration creates table %s", tbl)
		}
	}

	b, _ := fs.ReadFile(embedMigrations, "00003_create_trip_entries.sql")
	if !strings.Contains(string(b), "ON DELETE CASCADE") {
		t.Error("trip_entries must cascade on trip delete")
	}
}

// Package migrations embeds the schema of the SQL record backends. The same
// files run on Postgres and SQLite: ids are TEXT, lists are JSON text and
// timestamps are written by the application.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies all pending migrations. dialect is "postgres" or "sqlite3".
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(gooseDialect(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func gooseDialect(dialect string) string {
	if dialect == "sqlite3" || dialect == "sqlite" {
		return "sqlite3"
	}
	return "pgx"
}

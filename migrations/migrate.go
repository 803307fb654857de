// Package migrations embeds the goose SQL migrations that create the
// relational schema: users plus the four owned resource tables (budgets,
// transactions, income, goals). Resource tables reference users.id through a
// nullable foreign key, so deleting a user leaves orphaned rows rather than
// cascading. Email uniqueness is enforced here with a unique index — the
// authoritative guard behind the application-level pre-check.
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

// Migrate applies all embedded migrations to db in order.
func Migrate(db *sql.DB) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

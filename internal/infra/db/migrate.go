package db

import (
	"context"
	"database/sql"
	"fmt"
)

var schema = map[Dialect][]string{
	Postgres: {
		`
CREATE TABLE IF NOT EXISTS text_summary (
    id         BIGSERIAL PRIMARY KEY,
    url        TEXT NOT NULL,
    summary    TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
		`CREATE INDEX IF NOT EXISTS idx_text_summary_url ON text_summary(url)`,
	},
	SQLite: {
		`
CREATE TABLE IF NOT EXISTS text_summary (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    url        TEXT NOT NULL,
    summary    TEXT NOT NULL DEFAULT '',
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
		`CREATE INDEX IF NOT EXISTS idx_text_summary_url ON text_summary(url)`,
	},
}

// MigrateUp creates the text_summary table and its index if they are missing.
// Every statement is idempotent.
func MigrateUp(ctx context.Context, db *sql.DB, dialect Dialect) error {
	stmts, ok := schema[dialect]
	if !ok {
		return fmt.Errorf("migrate: unknown dialect %q", dialect)
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

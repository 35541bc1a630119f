package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/destroyallsecrets/security-guard-autoreporter/core/utils"
)

//go:embed migrations/postgres/*.sql
var postgresMigrations embed.FS

var sqliteMigrations = []string{
	`CREATE TABLE IF NOT EXISTS report_log (
		id TEXT PRIMARY KEY,
		officer_id TEXT NOT NULL DEFAULT '',
		summary TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		generated_report TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_report_log_created ON report_log(created_at);`,
}

// ApplyMigrations brings the audit schema up to date. The sqlite path
// applies the idempotent statement list directly; postgres goes through
// goose so the schema version is tracked server-side.
func ApplyMigrations(ctx context.Context, db *sql.DB, postgres bool, logger *utils.Logger) error {
	if postgres {
		goose.SetBaseFS(postgresMigrations)
		if err := goose.SetDialect("postgres"); err != nil {
			return fmt.Errorf("goose dialect: %w", err)
		}
		if err := goose.UpContext(ctx, db, "migrations/postgres"); err != nil {
			return fmt.Errorf("goose up: %w", err)
		}
		logger.Printf("postgres migrations applied")
		return nil
	}
	for i, stmt := range sqliteMigrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqlite migration #%d failed: %w", i+1, err)
		}
	}
	logger.Printf("sqlite migrations applied")
	return nil
}

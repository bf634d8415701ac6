package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/bnema/wring/internal/logging"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// prepareGoose points goose at the embedded migration files and mutes
// its own logging.
func prepareGoose() error {
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())
	return goose.SetDialect("sqlite3")
}

// RunMigrations brings the schema up to the latest embedded migration.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	if err := prepareGoose(); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	// Fails on a brand new database, which counts as version 0.
	before, _ := goose.GetDBVersion(db)

	if err := goose.Up(db, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	after, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	log := logging.FromContext(ctx)
	if after > before {
		log.Info().Int64("from", before).Int64("to", after).Msg("schema migrated")
	} else {
		log.Debug().Int64("version", after).Msg("schema up to date")
	}
	return nil
}

// GetMigrationStatus reports the schema version the database is at.
func GetMigrationStatus(db *sql.DB) (int64, error) {
	if err := prepareGoose(); err != nil {
		return 0, err
	}
	return goose.GetDBVersion(db)
}

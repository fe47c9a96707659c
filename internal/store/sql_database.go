package store

import (
	"database/sql"

	"github.com/ileskov/personahub/internal/logger"
	"github.com/ileskov/personahub/migrations"
)

// DB wraps the driver-agnostic *sql.DB together with the dialect it was
// opened for, so repositories and migrations do not care whether the backend
// is PostgreSQL or the embedded single-user SQLite file.
type DB struct {
	*sql.DB

	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all embedded schema migrations for the DB's dialect,
// including the seed of the global privacy-rule defaults.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// classify delegates to the dialect's error classificator; with none
// configured everything is non-retryable.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/ileskov/personahub/internal/config"
	"github.com/ileskov/personahub/internal/logger"
)

// Storages bundles every repository the service layer depends on, all backed
// by the same database connection.
type Storages struct {
	UserRepository     UserRepository
	EntryRepository    EntryRepository
	SettingsRepository SettingsRepository
	RuleRepository     RuleRepository

	db *DB
}

// NewStorages opens the database named by cfg.DSN, applies migrations, and
// wires up all repositories. A "postgres://" (or "postgresql://") DSN selects
// the PostgreSQL backend; anything else is treated as a path to the embedded
// SQLite file used by single-user deployments.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	if isPostgresDSN(cfg.DSN) {
		db, err = NewConnectPostgres(ctx, cfg, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		EntryRepository:    NewEntryRepository(db, log),
		SettingsRepository: NewSettingsRepository(db, log),
		RuleRepository:     NewRuleRepository(db, log),
		db:                 db,
	}, nil
}

// Close releases the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

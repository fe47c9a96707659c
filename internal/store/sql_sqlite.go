package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ileskov/personahub/internal/config"
	"github.com/ileskov/personahub/internal/logger"
	"github.com/ileskov/personahub/migrations"

	_ "github.com/mattn/go-sqlite3"
)

// NewConnectSQLite opens the embedded SQLite backend used by single-user
// deployments that carry no external database. The DSN is a plain file path
// (optionally with sqlite:// stripped by the caller).
//
// SQLite serializes writers, so the pool is capped at one open connection;
// the filter read path is unaffected because settings and rules are fetched
// per request and never cached.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", cfg.DSN+"?_foreign_keys=on")
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error opening sqlite database")
		return nil, fmt.Errorf("error opening sqlite database: %w", err)
	}

	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("opened sqlite database successfully")

	return &DB{
		DB:      conn,
		dialect: migrations.DialectSQLite,
		logger:  log,
	}, nil
}

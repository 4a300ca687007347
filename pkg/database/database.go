// Package database owns the pgx connection pool used by the postgres store driver.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/metazeka/backend/pkg/logger"
)

// Database wraps a pgxpool.Pool. It is safe for concurrent use and is the
// only shared handle between request goroutines.
type Database struct {
	pool *pgxpool.Pool
}

// NewPool parses dsn, applies password (when non-empty) as the role
// credential, connects, and verifies the connection with Ping.
func NewPool(ctx context.Context, dsn, password string, log logger.Logger) (*Database, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("database: parse dsn: %w", err)
	}
	if password != "" {
		cfg.ConnConfig.Password = password
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("database: create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	log.Info("database pool ready",
		"host", cfg.ConnConfig.Host,
		"database", cfg.ConnConfig.Database,
		"max_conns", cfg.MaxConns,
	)
	return &Database{pool: pool}, nil
}

// Pool returns the underlying pool for query execution.
func (d *Database) Pool() *pgxpool.Pool {
	return d.pool
}

// Ping checks database connectivity.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.pool.Ping(ctx); err != nil {
		return fmt.Errorf("database: ping: %w", err)
	}
	return nil
}

// Close releases every pooled connection.
func (d *Database) Close() {
	d.pool.Close()
}

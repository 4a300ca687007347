package migrator

import (
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// RunMigrations applies every pending goose migration in files to the
// database at dsn. password, when non-empty, overrides the DSN's password.
func RunMigrations(dsn, password string, files fs.FS) error {
	connCfg, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("failed to parse database url: %w", err)
	}
	if password != "" {
		connCfg.Password = password
	}

	db := stdlib.OpenDB(*connCfg)
	defer db.Close() //nolint:errcheck

	return up(db, files)
}

func up(db *sql.DB, files fs.FS) error {
	goose.SetBaseFS(files)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to up migrations: %w", err)
	}
	return nil
}

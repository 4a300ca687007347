package main

import (
	"embed"
	"log/slog"
	"os"

	"github.com/metazeka/backend/pkg/config"
	"github.com/metazeka/backend/pkg/migrator"
)

//go:embed *.sql
var MigrationsFS embed.FS

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := config.ValidateStore(cfg); err != nil {
		slog.Error("store not configured", "error", err)
		os.Exit(1)
	}
	if cfg.StoreDriver != config.StoreDriverPostgres {
		slog.Error("migrations require STORE_DRIVER=postgres", "driver", cfg.StoreDriver)
		os.Exit(1)
	}
	if err := migrator.RunMigrations(cfg.StoreURL, cfg.StoreKey, MigrationsFS); err != nil {
		slog.Error("migrations failed", "error", err)
		os.Exit(1)
	}
	slog.Info("migrations applied")
}

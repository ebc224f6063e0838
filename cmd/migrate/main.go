// Command migrate applies the embedded schema migrations to the configured
// database and exits.
package main

import (
	"log/slog"
	"os"

	"kindling/config"
	"kindling/internal/infra/persistence/migrate"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	if cfg.Postgres == nil {
		slog.Error("Postgres connection settings are missing")
		os.Exit(1)
	}

	if err := migrate.Up(cfg.Postgres); err != nil {
		slog.Error("Failed to apply migrations", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("Migrations applied")
}

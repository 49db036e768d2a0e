// Package repositories selects the transaction store configured by STORAGE_DRIVER.
package repositories

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/fruit_shop_app/internal/core/ports/repositories"
	"github.com/SscSPs/fruit_shop_app/internal/platform/config"
	"github.com/SscSPs/fruit_shop_app/internal/repositories/database/memory"
	"github.com/SscSPs/fruit_shop_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/fruit_shop_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/fruit_shop_app/pkg/database"
)

// NewRepositoryProvider opens, migrates and wraps the configured store.
// Callers must invoke the returned provider's Close when it is non-nil.
func NewRepositoryProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, error) {
	switch cfg.StorageDriver {
	case config.StorageMemory:
		logger.Info("Using in-memory transaction store")
		return memory.NewRepositoryProvider(), nil

	case config.StorageSQLite:
		logger.Info("Using SQLite transaction store", slog.String("path", cfg.SQLitePath))
		return sqlite.NewRepositoryProvider(ctx, cfg.SQLitePath)

	case config.StoragePostgres:
		logger.Info("Running database migrations...")
		if err := database.RunPostgresMigrations(cfg.DatabaseURL); err != nil {
			return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to migrate postgres database: %w", err)
		}
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(dbPool), nil

	default:
		return portsrepo.RepositoryProvider{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

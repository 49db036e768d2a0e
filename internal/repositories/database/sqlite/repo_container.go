package sqlite

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/fruit_shop_app/internal/core/ports/repositories"
	"github.com/SscSPs/fruit_shop_app/pkg/database"
)

// NewRepositoryProvider opens and migrates the SQLite file at dbPath.
func NewRepositoryProvider(ctx context.Context, dbPath string) (portsrepo.RepositoryProvider, error) {
	db, err := database.OpenSQLite(ctx, dbPath)
	if err != nil {
		return portsrepo.RepositoryProvider{}, err
	}
	if err := database.RunSQLiteMigrations(dbPath); err != nil {
		db.Close()
		return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to migrate sqlite database: %w", err)
	}

	return portsrepo.RepositoryProvider{
		TransactionRepo: NewTransactionRepository(db),
		Close: func() {
			if err := db.Close(); err != nil {
				slog.Error("Error closing sqlite database", slog.String("error", err.Error()))
			}
		},
	}, nil
}

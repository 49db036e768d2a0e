package repositories_test

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/SscSPs/fruit_shop_app/internal/platform/config"
	"github.com/SscSPs/fruit_shop_app/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestNewRepositoryProvider_Memory(t *testing.T) {
	p, err := repositories.NewRepositoryProvider(context.Background(), &config.Config{StorageDriver: config.StorageMemory}, discard)
	require.NoError(t, err)
	assert.NotNil(t, p.TransactionRepo)
	assert.Nil(t, p.Close)
}

func TestNewRepositoryProvider_SQLite(t *testing.T) {
	cfg := &config.Config{StorageDriver: config.StorageSQLite, SQLitePath: filepath.Join(t.TempDir(), "shop.db")}
	p, err := repositories.NewRepositoryProvider(context.Background(), cfg, discard)
	require.NoError(t, err)
	require.NotNil(t, p.Close)
	defer p.Close()

	list, err := p.TransactionRepo.ListTransactions(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestNewRepositoryProvider_Unknown(t *testing.T) {
	_, err := repositories.NewRepositoryProvider(context.Background(), &config.Config{StorageDriver: "csv"}, discard)
	assert.Error(t, err)
}

package pgsql

import (
	portsrepo "github.com/SscSPs/fruit_shop_app/internal/core/ports/repositories"
	"github.com/SscSPs/fruit_shop_app/pkg/database"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		Close:           func() { database.ClosePgxPool(dbPool) },
	}
}

package repositories

import (
	"context"

	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	// Returns apperrors.ErrNotFound if no transaction has that id.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns copies of all transactions in insertion order.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction appends a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransaction replaces every mutable field of the transaction with the same id.
	// Returns apperrors.ErrNotFound if no transaction has that id.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// DeleteTransaction removes a transaction.
	// Returns apperrors.ErrNotFound if no transaction has that id.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// DeleteAllTransactions empties the store and returns the number removed.
	DeleteAllTransactions(ctx context.Context) (int64, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

package services

import (
	"context"

	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
)

// ListTransactionsOptions narrows and orders a transaction listing at read time.
type ListTransactionsOptions struct {
	Range      domain.DateRange
	SortByDate bool
	Descending bool
}

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction by its unique identifier.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns the transactions matching opts. The store order is never changed.
	ListTransactions(ctx context.Context, opts ListTransactionsOptions) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// AddTransaction validates the input and appends a new transaction with a fresh id.
	AddTransaction(ctx context.Context, input domain.TransactionInput) (*domain.Transaction, error)

	// UpdateTransaction validates the input and replaces every field except id and creation time.
	UpdateTransaction(ctx context.Context, transactionID string, input domain.TransactionInput) (*domain.Transaction, error)

	// DeleteTransaction removes one transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error

	// DeleteAllTransactions empties the store and returns how many were removed.
	DeleteAllTransactions(ctx context.Context) (int64, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
// This is a facade for clients that need access to all operations
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}

// EventPublisher delivers transaction change events to an external channel.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.TransactionEvent) error
	Close() error
}

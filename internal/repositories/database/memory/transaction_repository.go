// Package memory is a process-local transaction store guarded by a read/write mutex.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/fruit_shop_app/internal/apperrors"
	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fruit_shop_app/internal/core/ports/repositories"
)

// TransactionRepository keeps transactions in insertion order.
// Every method holds the lock for its whole body, so readers observe either the
// full state before a mutation or the full state after it.
type TransactionRepository struct {
	mu    sync.RWMutex
	txns  []domain.Transaction
	index map[string]int
}

// NewTransactionRepository creates an empty store.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{index: make(map[string]int)}
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

// SaveTransaction appends txn. Ids must be unique.
func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.index[txn.TransactionID]; exists {
		return fmt.Errorf("%w: duplicate transaction id %s", apperrors.ErrStorage, txn.TransactionID)
	}
	r.index[txn.TransactionID] = len(r.txns)
	r.txns = append(r.txns, txn.Clone())
	return nil
}

// UpdateTransaction replaces the stored transaction in place, keeping its position.
func (r *TransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[txn.TransactionID]
	if !ok {
		return apperrors.ErrNotFound
	}
	r.txns[i] = txn.Clone()
	return nil
}

// DeleteTransaction removes a transaction, preserving the order of the rest.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[transactionID]
	if !ok {
		return apperrors.ErrNotFound
	}
	r.txns = append(r.txns[:i], r.txns[i+1:]...)
	delete(r.index, transactionID)
	for j := i; j < len(r.txns); j++ {
		r.index[r.txns[j].TransactionID] = j
	}
	return nil
}

// DeleteAllTransactions empties the store.
func (r *TransactionRepository) DeleteAllTransactions(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := int64(len(r.txns))
	r.txns = nil
	r.index = make(map[string]int)
	return n, nil
}

// FindTransactionByID returns a copy of the stored transaction.
func (r *TransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[transactionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	t := r.txns[i].Clone()
	return &t, nil
}

// ListTransactions returns a snapshot copy in insertion order.
func (r *TransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return domain.CloneTransactions(r.txns), nil
}

// Ping always succeeds.
func (r *TransactionRepository) Ping(ctx context.Context) error {
	return nil
}

// NewRepositoryProvider wires an in-memory store into a provider.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{TransactionRepo: NewTransactionRepository()}
}

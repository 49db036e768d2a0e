package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fruit_shop_app/internal/apperrors"
	"github.com/SscSPs/fruit_shop_app/internal/core/analytics"
	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fruit_shop_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fruit_shop_app/internal/core/ports/services"
	"github.com/google/uuid"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	publisher       portssvc.EventPublisher
	onMutation      []func()
	now             func() time.Time
	newID           func() string
}

// TransactionServiceOption is a functional option for configuring the transaction service
type TransactionServiceOption func(*transactionService)

// WithEventPublisher sends a change event after every acknowledged mutation.
func WithEventPublisher(publisher portssvc.EventPublisher) TransactionServiceOption {
	return func(s *transactionService) {
		s.publisher = publisher
	}
}

// WithMutationHook registers fn to run after every acknowledged mutation, before the call returns.
func WithMutationHook(fn func()) TransactionServiceOption {
	return func(s *transactionService) {
		s.onMutation = append(s.onMutation, fn)
	}
}

// WithClock overrides the source of audit timestamps.
func WithClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// WithIDGenerator overrides how new transaction ids are assigned.
func WithIDGenerator(newID func() string) TransactionServiceOption {
	return func(s *transactionService) {
		s.newID = newID
	}
}

// NewTransactionService creates a new transaction service with the provided options
func NewTransactionService(repo portsrepo.TransactionRepositoryFacade, options ...TransactionServiceOption) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		transactionRepo: repo,
		now:             func() time.Time { return time.Now().UTC() },
		newID:           uuid.NewString,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// AddTransaction validates input and persists a new transaction.
func (s *transactionService) AddTransaction(ctx context.Context, input domain.TransactionInput) (*domain.Transaction, error) {
	fields, err := input.Validate()
	if err != nil {
		s.LogDebug(ctx, "Rejected invalid transaction", slog.String("error", err.Error()))
		return nil, err
	}

	txn := domain.NewTransaction(s.newID(), fields, s.now())
	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to add transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction added",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("type", string(txn.Type)),
		slog.Float64("amount", txn.Amount))
	s.afterMutation(ctx, domain.TransactionEvent{
		Action:        domain.ActionCreated,
		TransactionID: txn.TransactionID,
		Transaction:   &txn,
	})
	return &txn, nil
}

// UpdateTransaction validates input, then replaces every field of the stored transaction
// except its id and creation time.
func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, input domain.TransactionInput) (*domain.Transaction, error) {
	fields, err := input.Validate()
	if err != nil {
		s.LogDebug(ctx, "Rejected invalid transaction update",
			slog.String("transaction_id", transactionID),
			slog.String("error", err.Error()))
		return nil, err
	}

	existing, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to load transaction for update", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	updated := *existing
	updated.TransactionFields = fields
	updated.LastUpdatedAt = s.now()

	// The repository reports ErrNotFound if a concurrent delete won the race.
	if err := s.transactionRepo.UpdateTransaction(ctx, updated); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	s.afterMutation(ctx, domain.TransactionEvent{
		Action:        domain.ActionUpdated,
		TransactionID: transactionID,
		Transaction:   &updated,
	})
	return &updated, nil
}

// DeleteTransaction removes one transaction.
func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	s.afterMutation(ctx, domain.TransactionEvent{
		Action:        domain.ActionDeleted,
		TransactionID: transactionID,
	})
	return nil
}

// DeleteAllTransactions empties the store.
func (s *transactionService) DeleteAllTransactions(ctx context.Context) (int64, error) {
	n, err := s.transactionRepo.DeleteAllTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to delete all transactions")
		return 0, fmt.Errorf("failed to delete all transactions: %w", err)
	}

	s.LogInfo(ctx, "All transactions deleted", slog.Int64("deleted", n))
	s.afterMutation(ctx, domain.TransactionEvent{
		Action:       domain.ActionDeletedAll,
		DeletedCount: n,
	})
	return n, nil
}

// GetTransactionByID retrieves one transaction.
func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to get transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

// ListTransactions filters and optionally sorts a snapshot of the store.
func (s *transactionService) ListTransactions(ctx context.Context, opts portssvc.ListTransactionsOptions) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	txns = analytics.FilterByDateRange(txns, opts.Range)
	if opts.SortByDate {
		txns = analytics.SortByDate(txns, opts.Descending)
	}

	s.LogDebug(ctx, "Listed transactions",
		slog.Int("count", len(txns)),
		slog.String("range", opts.Range.Key()))
	return txns, nil
}

// afterMutation runs the registered hooks and publishes the change event.
// Publishing failures are logged and never undo the mutation.
func (s *transactionService) afterMutation(ctx context.Context, event domain.TransactionEvent) {
	for _, fn := range s.onMutation {
		fn()
	}

	if s.publisher == nil {
		return
	}
	event.OccurredAt = s.now()
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.LogWarn(ctx, "Failed to publish transaction event",
			slog.String("action", string(event.Action)),
			slog.String("transaction_id", event.TransactionID),
			slog.String("error", err.Error()))
	}
}

package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/fruit_shop_app/internal/apperrors"
	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fruit_shop_app/internal/core/ports/repositories"
	"github.com/SscSPs/fruit_shop_app/internal/models"
	"github.com/SscSPs/fruit_shop_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `seq, transaction_id, type, amount, description, fruit_name, quantity,
	price_per_unit, payment_method, date, created_at, last_updated_at`

// SaveTransaction inserts a new transaction row.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, type, amount, description, fruit_name, quantity,
			price_per_unit, payment_method, date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.TransactionID,
		m.Type,
		m.Amount,
		m.Description,
		m.FruitName,
		m.Quantity,
		m.PricePerUnit,
		m.PaymentMethod,
		m.Date,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to save transaction %s: %v", apperrors.ErrStorage, m.TransactionID, err)
	}
	return nil
}

// UpdateTransaction overwrites the mutable columns of an existing row.
func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET type = $1, amount = $2, description = $3, fruit_name = $4, quantity = $5,
			price_per_unit = $6, payment_method = $7, date = $8, last_updated_at = $9
		WHERE transaction_id = $10;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.Type,
		m.Amount,
		m.Description,
		m.FruitName,
		m.Quantity,
		m.PricePerUnit,
		m.PaymentMethod,
		m.Date,
		m.LastUpdatedAt,
		m.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to update transaction %s: %v", apperrors.ErrStorage, m.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction row.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete transaction %s: %v", apperrors.ErrStorage, transactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAllTransactions removes every transaction row.
func (r *PgxTransactionRepository) DeleteAllTransactions(ctx context.Context) (int64, error) {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM transactions;`)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to delete all transactions: %v", apperrors.ErrStorage, err)
	}
	return cmdTag.RowsAffected(), nil
}

// FindTransactionByID retrieves a transaction by its id.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	var m models.Transaction
	err := r.Pool.QueryRow(ctx, query, transactionID).Scan(transactionScanTargets(&m)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find transaction %s: %v", apperrors.ErrStorage, transactionID, err)
	}

	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactions retrieves all transactions in insertion order.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY seq;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query transactions: %v", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	modelTxns, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var m models.Transaction
		err := row.Scan(transactionScanTargets(&m)...)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to scan transactions: %v", apperrors.ErrStorage, err)
	}

	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

func transactionScanTargets(m *models.Transaction) []any {
	return []any{
		&m.Seq,
		&m.TransactionID,
		&m.Type,
		&m.Amount,
		&m.Description,
		&m.FruitName,
		&m.Quantity,
		&m.PricePerUnit,
		&m.PaymentMethod,
		&m.Date,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	}
}

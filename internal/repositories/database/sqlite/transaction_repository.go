// Package sqlite stores transactions in a SQLite file through modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/fruit_shop_app/internal/apperrors"
	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fruit_shop_app/internal/core/ports/repositories"
	"github.com/SscSPs/fruit_shop_app/internal/models"
	"github.com/SscSPs/fruit_shop_app/internal/utils/mapping"
)

const timestampLayout = time.RFC3339Nano

const selectColumns = `seq, transaction_id, type, amount, description, fruit_name, quantity,
	price_per_unit, payment_method, date, created_at, last_updated_at`

type SQLiteTransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a repository over an opened, migrated database.
func NewTransactionRepository(db *sql.DB) *SQLiteTransactionRepository {
	return &SQLiteTransactionRepository{db: db}
}

var _ portsrepo.TransactionRepositoryFacade = (*SQLiteTransactionRepository)(nil)

// SaveTransaction inserts a new row; seq is assigned by SQLite and fixes list order.
func (r *SQLiteTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (transaction_id, type, amount, description, fruit_name, quantity,
			price_per_unit, payment_method, date, created_at, last_updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err := r.db.ExecContext(ctx, query,
		m.TransactionID,
		string(m.Type),
		m.Amount,
		m.Description,
		m.FruitName,
		nullFloat(m.Quantity),
		nullFloat(m.PricePerUnit),
		string(m.PaymentMethod),
		m.Date.Format(domain.DateLayout),
		m.CreatedAt.Format(timestampLayout),
		m.LastUpdatedAt.Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("%w: failed to save transaction %s: %v", apperrors.ErrStorage, m.TransactionID, err)
	}
	return nil
}

// UpdateTransaction overwrites every mutable column in a single statement.
func (r *SQLiteTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET type = ?, amount = ?, description = ?, fruit_name = ?, quantity = ?,
			price_per_unit = ?, payment_method = ?, date = ?, last_updated_at = ?
		WHERE transaction_id = ?;
	`
	res, err := r.db.ExecContext(ctx, query,
		string(m.Type),
		m.Amount,
		m.Description,
		m.FruitName,
		nullFloat(m.Quantity),
		nullFloat(m.PricePerUnit),
		string(m.PaymentMethod),
		m.Date.Format(domain.DateLayout),
		m.LastUpdatedAt.Format(timestampLayout),
		m.TransactionID,
	)
	if err != nil {
		return fmt.Errorf("%w: failed to update transaction %s: %v", apperrors.ErrStorage, m.TransactionID, err)
	}
	return requireAffected(res)
}

// DeleteTransaction removes the row with the given id.
func (r *SQLiteTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE transaction_id = ?;`, transactionID)
	if err != nil {
		return fmt.Errorf("%w: failed to delete transaction %s: %v", apperrors.ErrStorage, transactionID, err)
	}
	return requireAffected(res)
}

// DeleteAllTransactions removes every row.
func (r *SQLiteTransactionRepository) DeleteAllTransactions(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions;`)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to delete all transactions: %v", apperrors.ErrStorage, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count deleted transactions: %v", apperrors.ErrStorage, err)
	}
	return n, nil
}

// FindTransactionByID retrieves one row by transaction id.
func (r *SQLiteTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM transactions WHERE transaction_id = ?;`, transactionID)
	m, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("%w: failed to find transaction %s: %v", apperrors.ErrStorage, transactionID, err)
	}
	d := mapping.ToDomainTransaction(m)
	return &d, nil
}

// ListTransactions returns all rows ordered by insertion.
func (r *SQLiteTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM transactions ORDER BY seq;`)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to query transactions: %v", apperrors.ErrStorage, err)
	}
	defer rows.Close()

	modelTxns := []models.Transaction{}
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to scan transaction: %v", apperrors.ErrStorage, err)
		}
		modelTxns = append(modelTxns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: failed to iterate transactions: %v", apperrors.ErrStorage, err)
	}
	return mapping.ToDomainTransactionSlice(modelTxns), nil
}

// Ping checks the database handle.
func (r *SQLiteTransactionRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(s rowScanner) (models.Transaction, error) {
	var (
		m                         models.Transaction
		typ, paymentMethod        string
		quantity, pricePerUnit    sql.NullFloat64
		date, createdAt, updateAt string
	)
	err := s.Scan(
		&m.Seq,
		&m.TransactionID,
		&typ,
		&m.Amount,
		&m.Description,
		&m.FruitName,
		&quantity,
		&pricePerUnit,
		&paymentMethod,
		&date,
		&createdAt,
		&updateAt,
	)
	if err != nil {
		return m, err
	}

	m.Type = models.TransactionType(typ)
	m.PaymentMethod = models.PaymentMethod(paymentMethod)
	if quantity.Valid {
		m.Quantity = &quantity.Float64
	}
	if pricePerUnit.Valid {
		m.PricePerUnit = &pricePerUnit.Float64
	}
	if m.Date, err = time.Parse(domain.DateLayout, date); err != nil {
		return m, fmt.Errorf("invalid stored date %q: %w", date, err)
	}
	if m.CreatedAt, err = time.Parse(timestampLayout, createdAt); err != nil {
		return m, fmt.Errorf("invalid stored created_at %q: %w", createdAt, err)
	}
	if m.LastUpdatedAt, err = time.Parse(timestampLayout, updateAt); err != nil {
		return m, fmt.Errorf("invalid stored last_updated_at %q: %w", updateAt, err)
	}
	return m, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: failed to read affected rows: %v", apperrors.ErrStorage, err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

package memory_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/fruit_shop_app/internal/apperrors"
	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	"github.com/SscSPs/fruit_shop_app/internal/repositories/database/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTxn(id string, amount float64) domain.Transaction {
	q := 2.0
	return domain.NewTransaction(id, domain.TransactionFields{
		Type:          domain.Income,
		Amount:        amount,
		Quantity:      &q,
		PaymentMethod: domain.Cash,
		Date:          time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}, time.Now())
}

func TestTransactionRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()

	require.NoError(t, repo.SaveTransaction(ctx, newTxn("a", 1)))
	require.NoError(t, repo.SaveTransaction(ctx, newTxn("b", 2)))
	require.NoError(t, repo.SaveTransaction(ctx, newTxn("c", 3)))

	got, err := repo.FindTransactionByID(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.Amount)

	updated := newTxn("b", 20)
	require.NoError(t, repo.UpdateTransaction(ctx, updated))

	require.NoError(t, repo.DeleteTransaction(ctx, "a"))

	list, err := repo.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].TransactionID)
	assert.Equal(t, 20.0, list[0].Amount)
	assert.Equal(t, "c", list[1].TransactionID)

	// index still valid after the shift
	got, err = repo.FindTransactionByID(ctx, "c")
	require.NoError(t, err)
	assert.Equal(t, 3.0, got.Amount)
}

func TestTransactionRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()

	_, err := repo.FindTransactionByID(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.UpdateTransaction(ctx, newTxn("missing", 1)), apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteTransaction(ctx, "missing"), apperrors.ErrNotFound)
}

func TestTransactionRepository_DuplicateID(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()

	require.NoError(t, repo.SaveTransaction(ctx, newTxn("a", 1)))
	assert.ErrorIs(t, repo.SaveTransaction(ctx, newTxn("a", 2)), apperrors.ErrStorage)
}

func TestTransactionRepository_SnapshotsDoNotAlias(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()
	require.NoError(t, repo.SaveTransaction(ctx, newTxn("a", 1)))

	list, err := repo.ListTransactions(ctx)
	require.NoError(t, err)
	list[0].Amount = 999
	*list[0].Quantity = 999

	got, err := repo.FindTransactionByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Amount)
	assert.Equal(t, 2.0, *got.Quantity)
}

func TestTransactionRepository_DeleteAll(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()
	for i := range 5 {
		require.NoError(t, repo.SaveTransaction(ctx, newTxn(fmt.Sprint(i), 1)))
	}

	n, err := repo.DeleteAllTransactions(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 5, n)

	list, err := repo.ListTransactions(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	require.NoError(t, repo.SaveTransaction(ctx, newTxn("0", 1)))
}

func TestTransactionRepository_ConcurrentDeleteAndUpdate(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewTransactionRepository()

	for i := range 50 {
		id := fmt.Sprint(i)
		require.NoError(t, repo.SaveTransaction(ctx, newTxn(id, 1)))

		var wg sync.WaitGroup
		var delErr, updErr error
		wg.Add(2)
		go func() { defer wg.Done(); delErr = repo.DeleteTransaction(ctx, id) }()
		go func() { defer wg.Done(); updErr = repo.UpdateTransaction(ctx, newTxn(id, 5)) }()
		wg.Wait()

		require.NoError(t, delErr)
		_, err := repo.FindTransactionByID(ctx, id)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		if updErr != nil {
			assert.ErrorIs(t, updErr, apperrors.ErrNotFound)
		}
	}
}

package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/fruit_shop_app/internal/apperrors"
	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	portsrepo "github.com/SscSPs/fruit_shop_app/internal/core/ports/repositories"
	"github.com/SscSPs/fruit_shop_app/internal/repositories/database/sqlite"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SQLiteTransactionRepositoryTestSuite struct {
	suite.Suite
	ctx      context.Context
	provider portsrepo.RepositoryProvider
	repo     portsrepo.TransactionRepositoryFacade
}

func (s *SQLiteTransactionRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	path := filepath.Join(s.T().TempDir(), "nested", "shop.db")

	provider, err := sqlite.NewRepositoryProvider(s.ctx, path)
	s.Require().NoError(err)
	s.provider = provider
	s.repo = provider.TransactionRepo
}

func (s *SQLiteTransactionRepositoryTestSuite) TearDownTest() {
	if s.provider.Close != nil {
		s.provider.Close()
	}
}

func (s *SQLiteTransactionRepositoryTestSuite) txn(id string, amount float64, day int) domain.Transaction {
	now := time.Date(2024, 1, day, 10, 30, 0, 123, time.UTC)
	return domain.NewTransaction(id, domain.TransactionFields{
		Type:          domain.Expense,
		Amount:        amount,
		Description:   "Bought " + id,
		PaymentMethod: domain.Digital,
		Date:          time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC),
	}, now)
}

func (s *SQLiteTransactionRepositoryTestSuite) TestSaveAndFind() {
	q, p := 3.0, 12.5
	t := s.txn("a", 37.5, 2)
	t.FruitName = "Apple"
	t.Quantity = &q
	t.PricePerUnit = &p
	s.Require().NoError(s.repo.SaveTransaction(s.ctx, t))

	got, err := s.repo.FindTransactionByID(s.ctx, "a")
	s.Require().NoError(err)
	s.Equal(t.TransactionFields, got.TransactionFields)
	s.True(t.CreatedAt.Equal(got.CreatedAt))
}

func (s *SQLiteTransactionRepositoryTestSuite) TestNullableFieldsRoundTrip() {
	s.Require().NoError(s.repo.SaveTransaction(s.ctx, s.txn("a", 1, 1)))

	got, err := s.repo.FindTransactionByID(s.ctx, "a")
	s.Require().NoError(err)
	s.Nil(got.Quantity)
	s.Nil(got.PricePerUnit)
}

func (s *SQLiteTransactionRepositoryTestSuite) TestListKeepsInsertionOrder() {
	s.Require().NoError(s.repo.SaveTransaction(s.ctx, s.txn("late", 1, 9)))
	s.Require().NoError(s.repo.SaveTransaction(s.ctx, s.txn("early", 2, 1)))
	s.Require().NoError(s.repo.SaveTransaction(s.ctx, s.txn("mid", 3, 5)))

	updated := s.txn("late", 10, 9)
	s.Require().NoError(s.repo.UpdateTransaction(s.ctx, updated))

	list, err := s.repo.ListTransactions(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(list, 3)
	s.Equal("late", list[0].TransactionID)
	s.Equal(10.0, list[0].Amount)
	s.Equal("early", list[1].TransactionID)
	s.Equal("mid", list[2].TransactionID)
}

func (s *SQLiteTransactionRepositoryTestSuite) TestMissingIDs() {
	_, err := s.repo.FindTransactionByID(s.ctx, "nope")
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.ErrorIs(s.repo.UpdateTransaction(s.ctx, s.txn("nope", 1, 1)), apperrors.ErrNotFound)
	s.ErrorIs(s.repo.DeleteTransaction(s.ctx, "nope"), apperrors.ErrNotFound)
}

func (s *SQLiteTransactionRepositoryTestSuite) TestDeleteAndDeleteAll() {
	s.Require().NoError(s.repo.SaveTransaction(s.ctx, s.txn("a", 1, 1)))
	s.Require().NoError(s.repo.SaveTransaction(s.ctx, s.txn("b", 1, 1)))
	s.Require().NoError(s.repo.SaveTransaction(s.ctx, s.txn("c", 1, 1)))

	s.Require().NoError(s.repo.DeleteTransaction(s.ctx, "b"))
	s.ErrorIs(s.repo.DeleteTransaction(s.ctx, "b"), apperrors.ErrNotFound)

	n, err := s.repo.DeleteAllTransactions(s.ctx)
	s.Require().NoError(err)
	s.EqualValues(2, n)

	list, err := s.repo.ListTransactions(s.ctx)
	s.Require().NoError(err)
	s.Empty(list)
}

func (s *SQLiteTransactionRepositoryTestSuite) TestCheckConstraintRejectsNonPositiveAmount() {
	err := s.repo.SaveTransaction(s.ctx, s.txn("bad", 0, 1))
	s.ErrorIs(err, apperrors.ErrStorage)
}

func TestSQLiteTransactionRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteTransactionRepositoryTestSuite))
}

func TestNewRepositoryProvider_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shop.db")

	first, err := sqlite.NewRepositoryProvider(ctx, path)
	require.NoError(t, err)
	require.NoError(t, first.TransactionRepo.SaveTransaction(ctx, domain.NewTransaction("a", domain.TransactionFields{
		Type: domain.Income, Amount: 5, PaymentMethod: domain.Cash, Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}, time.Now())))
	first.Close()

	second, err := sqlite.NewRepositoryProvider(ctx, path)
	require.NoError(t, err)
	defer second.Close()

	list, err := second.TransactionRepo.ListTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

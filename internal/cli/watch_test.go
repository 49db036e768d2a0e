package cli

import (
	"testing"
	"time"

	"github.com/SscSPs/fruit_shop_app/internal/adapters/amqp"
	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatEvent(t *testing.T) {
	ts := time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC)
	txn := domain.NewTransaction("t-1", domain.TransactionFields{
		Type: domain.Income, Amount: 12.5, PaymentMethod: domain.Cash,
		Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}, ts)

	assert.Equal(t,
		"2024-01-01 08:30:00  transaction.created  t-1  2024-01-01 INCOME Rs. 12.50 (CASH)",
		formatEvent(&amqp.TransactionEventMessage{Action: domain.ActionCreated, TransactionID: "t-1", Transaction: &txn, Timestamp: ts}))
	assert.Equal(t,
		"2024-01-01 08:30:00  transaction.deleted  t-1",
		formatEvent(&amqp.TransactionEventMessage{Action: domain.ActionDeleted, TransactionID: "t-1", Timestamp: ts}))
	assert.Equal(t,
		"2024-01-01 08:30:00  transaction.deleted_all  4 transactions",
		formatEvent(&amqp.TransactionEventMessage{Action: domain.ActionDeletedAll, DeletedCount: 4, Timestamp: ts}))
}

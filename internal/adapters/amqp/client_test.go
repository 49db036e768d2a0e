package amqp

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExponentialBackoff(t *testing.T) {
	tests := []struct {
		attempt  int
		expected time.Duration
	}{
		{0, 1 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
		{4, 16 * time.Second},
		{5, 30 * time.Second},
		{10, 30 * time.Second},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("attempt_%d", tt.attempt), func(t *testing.T) {
			assert.Equal(t, tt.expected, exponentialBackoff(tt.attempt))
		})
	}
}

func TestIsConnectionError(t *testing.T) {
	assert.False(t, isConnectionError(nil))
	assert.True(t, isConnectionError(errors.New("dial tcp: connection refused")))
	assert.True(t, isConnectionError(errors.New("unexpected EOF")))
	assert.True(t, isConnectionError(errors.New("write: broken pipe")))
	assert.False(t, isConnectionError(errors.New("Exception (403) Reason: \"ACCESS_REFUSED\"")))
}

func TestBreaker(t *testing.T) {
	var b breaker
	assert.False(t, b.isOpen(), "closed initially")

	for range maxFailures {
		b.recordFailure()
	}
	assert.True(t, b.isOpen())

	b.lastFailure.Store(time.Now().Add(-openTimeout - time.Second).UnixNano())
	assert.False(t, b.isOpen(), "half-open after timeout")
	assert.Equal(t, StateHalfOpen, atomic.LoadInt32(&b.state))

	b.recordFailure()
	assert.True(t, b.isOpen(), "a half-open failure reopens")

	b.recordSuccess()
	assert.False(t, b.isOpen())
	assert.Zero(t, atomic.LoadInt64(&b.failureCount))
}

func TestPublish_FailsFastWhenCircuitOpen(t *testing.T) {
	c := &Client{exchangeName: "fruit_shop", routingKey: "transactions"}
	atomic.StoreInt32(&c.breaker.state, StateOpen)
	c.breaker.lastFailure.Store(time.Now().UnixNano())

	err := c.Publish(context.Background(), domain.TransactionEvent{Action: domain.ActionDeleted, TransactionID: "x"})
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestPublish_RespectsCancelledContext(t *testing.T) {
	c := &Client{exchangeName: "fruit_shop", routingKey: "transactions"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.Publish(ctx, domain.TransactionEvent{Action: domain.ActionDeleted})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTransactionEventMessage_JSON(t *testing.T) {
	at := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	msg := NewTransactionEventMessage(domain.TransactionEvent{
		Action:       domain.ActionDeletedAll,
		DeletedCount: 4,
		OccurredAt:   at,
	}, "shop-1")

	body, err := msg.ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"transaction.deleted_all","deleted_count":4,"shop_id":"shop-1","timestamp":"2024-01-01T09:00:00Z"}`, string(body))

	back, err := TransactionEventMessageFromJSON(body)
	require.NoError(t, err)
	assert.Equal(t, msg, back)
}

func TestNoopPublisher(t *testing.T) {
	var p NoopPublisher
	assert.NoError(t, p.Publish(context.Background(), domain.TransactionEvent{}))
	assert.NoError(t, p.Close())
}

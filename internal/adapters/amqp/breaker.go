package amqp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"
)

// Circuit breaker states.
const (
	StateClosed int32 = iota
	StateOpen
	StateHalfOpen
)

const (
	maxFailures = 5
	openTimeout = 30 * time.Second
	maxBackoff  = 30 * time.Second
)

// ErrCircuitOpen is returned by Publish while the broker is considered unavailable.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// breaker stops publish attempts after repeated failures, so an unreachable broker
// does not add a timeout to every mutation.
type breaker struct {
	state        int32
	failureCount int64
	lastFailure  atomic.Int64 // unix nanos
}

func (b *breaker) isOpen() bool {
	if atomic.LoadInt32(&b.state) != StateOpen {
		return false
	}
	if time.Since(time.Unix(0, b.lastFailure.Load())) > openTimeout {
		atomic.CompareAndSwapInt32(&b.state, StateOpen, StateHalfOpen)
		return false
	}
	return true
}

func (b *breaker) recordSuccess() {
	atomic.StoreInt64(&b.failureCount, 0)
	atomic.StoreInt32(&b.state, StateClosed)
}

func (b *breaker) recordFailure() {
	b.lastFailure.Store(time.Now().UnixNano())
	n := atomic.AddInt64(&b.failureCount, 1)
	if n >= maxFailures || atomic.LoadInt32(&b.state) == StateHalfOpen {
		atomic.StoreInt32(&b.state, StateOpen)
	}
}

// exponentialBackoff returns 1s, 2s, 4s, ... capped at maxBackoff.
func exponentialBackoff(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if attempt >= 5 {
		return maxBackoff
	}
	d := time.Second << attempt
	if d > maxBackoff {
		return maxBackoff
	}
	return d
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, s := range []string{"connection", "eof", "broken pipe", "closed network"} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

// NewClientWithRetry calls NewClient until it succeeds, ctx is done or attempts run out.
// Only connection-level failures are retried.
func NewClientWithRetry(ctx context.Context, attempts int, url, exchangeName, routingKey, shopID string) (*Client, error) {
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		client, err := NewClient(url, exchangeName, routingKey, shopID)
		if err == nil {
			return client, nil
		}
		lastErr = err
		if !isConnectionError(err) {
			break
		}

		wait := exponentialBackoff(attempt)
		slog.WarnContext(ctx, "AMQP connection failed, retrying",
			"attempt", attempt+1,
			"wait", wait.String(),
			"error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
	return nil, fmt.Errorf("connect to AMQP broker: %w", lastErr)
}

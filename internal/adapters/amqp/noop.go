package amqp

import (
	"context"

	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	portssvc "github.com/SscSPs/fruit_shop_app/internal/core/ports/services"
)

// NoopPublisher discards events. Used when AMQP_URL is not configured.
type NoopPublisher struct{}

var _ portssvc.EventPublisher = NoopPublisher{}

func (NoopPublisher) Publish(context.Context, domain.TransactionEvent) error { return nil }

func (NoopPublisher) Close() error { return nil }

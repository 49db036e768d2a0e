package amqp

import (
	"encoding/json"
	"time"

	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
)

// TransactionEventMessage is the JSON body published for every transaction change.
type TransactionEventMessage struct {
	Action        domain.TransactionAction `json:"action"`
	TransactionID string                   `json:"transaction_id,omitempty"`
	Transaction   *domain.Transaction      `json:"transaction,omitempty"`
	DeletedCount  int64                    `json:"deleted_count,omitempty"`
	ShopID        string                   `json:"shop_id,omitempty"`
	Timestamp     time.Time                `json:"timestamp"`
}

// NewTransactionEventMessage wraps a domain event for the wire.
func NewTransactionEventMessage(event domain.TransactionEvent, shopID string) *TransactionEventMessage {
	ts := event.OccurredAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return &TransactionEventMessage{
		Action:        event.Action,
		TransactionID: event.TransactionID,
		Transaction:   event.Transaction,
		DeletedCount:  event.DeletedCount,
		ShopID:        shopID,
		Timestamp:     ts,
	}
}

// ToJSON converts the message to JSON bytes
func (m *TransactionEventMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionEventMessageFromJSON creates a message from JSON bytes
func TransactionEventMessageFromJSON(data []byte) (*TransactionEventMessage, error) {
	var msg TransactionEventMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}

package domain

import "time"

// TransactionAction names the mutation that produced a TransactionEvent.
type TransactionAction string

const (
	ActionCreated    TransactionAction = "transaction.created"
	ActionUpdated    TransactionAction = "transaction.updated"
	ActionDeleted    TransactionAction = "transaction.deleted"
	ActionDeletedAll TransactionAction = "transaction.deleted_all"
)

// TransactionEvent is emitted after a mutation has been acknowledged by the store.
type TransactionEvent struct {
	Action        TransactionAction `json:"action"`
	TransactionID string            `json:"transactionId,omitempty"`
	Transaction   *Transaction      `json:"transaction,omitempty"`
	DeletedCount  int64             `json:"deletedCount,omitempty"`
	OccurredAt    time.Time         `json:"occurredAt"`
}

package models

import "time"

// TransactionType is INCOME or EXPENSE.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// PaymentMethod is CASH or DIGITAL.
type PaymentMethod string

const (
	Cash    PaymentMethod = "CASH"
	Digital PaymentMethod = "DIGITAL"
)

// AuditFields are the timestamp columns shared by persisted rows.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}

// Transaction is the persisted row of the transactions table.
type Transaction struct {
	Seq           int64           `db:"seq"`            // insertion order, assigned by the database
	TransactionID string          `db:"transaction_id"` // UUID, unique
	Type          TransactionType `db:"type"`
	Amount        float64         `db:"amount"` // > 0
	Description   string          `db:"description"`
	FruitName     string          `db:"fruit_name"`
	Quantity      *float64        `db:"quantity"`       // Nullable
	PricePerUnit  *float64        `db:"price_per_unit"` // Nullable
	PaymentMethod PaymentMethod   `db:"payment_method"`
	Date          time.Time       `db:"date"`
	AuditFields
}

package domain

import (
	"time"
)

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// PaymentMethod records how a transaction was settled. It is orthogonal to TransactionType.
type PaymentMethod string

const (
	Cash    PaymentMethod = "CASH"
	Digital PaymentMethod = "DIGITAL"
)

// DateLayout is the calendar-day format used on every external surface.
const DateLayout = "2006-01-02"

// AuditFields holds the bookkeeping timestamps of a stored transaction.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// TransactionFields are the caller-controlled fields of a transaction, already parsed and validated.
type TransactionFields struct {
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	Description   string          `json:"description"`
	FruitName     string          `json:"fruitName"`
	Quantity      *float64        `json:"quantity,omitempty"`     // informational only
	PricePerUnit  *float64        `json:"pricePerUnit,omitempty"` // informational only
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Date          time.Time       `json:"date"` // calendar day at 00:00 UTC
}

// Transaction is a single income or expense record owned by the transaction store.
type Transaction struct {
	TransactionID string `json:"transactionID"` // Primary Key (UUID), immutable
	TransactionFields
	AuditFields
}

// NewTransaction builds a stored transaction from validated fields.
func NewTransaction(id string, fields TransactionFields, now time.Time) Transaction {
	return Transaction{
		TransactionID:     id,
		TransactionFields: fields.Clone(),
		AuditFields: AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
}

// Fields returns a copy of the caller-controlled fields.
func (t Transaction) Fields() TransactionFields {
	return t.TransactionFields.Clone()
}

// Clone returns a deep copy, so snapshots handed out by a store never alias its state.
func (t Transaction) Clone() Transaction {
	t.TransactionFields = t.TransactionFields.Clone()
	return t
}

// Clone returns a deep copy of the fields.
func (f TransactionFields) Clone() TransactionFields {
	f.Quantity = cloneFloat(f.Quantity)
	f.PricePerUnit = cloneFloat(f.PricePerUnit)
	return f
}

// IsIncome reports whether the transaction adds money.
func (t Transaction) IsIncome() bool {
	return t.Type == Income
}

// DisplayDescription returns the description, falling back to the fruit name.
func (t Transaction) DisplayDescription() string {
	if t.Description != "" {
		return t.Description
	}
	return t.FruitName
}

// NormalizeDate truncates a timestamp to its calendar day at 00:00 UTC.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CloneTransactions deep-copies a slice of transactions.
func CloneTransactions(txns []Transaction) []Transaction {
	out := make([]Transaction, len(txns))
	for i, t := range txns {
		out[i] = t.Clone()
	}
	return out
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

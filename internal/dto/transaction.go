package dto

import (
	"time"

	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
)

// TransactionRequest is the body of create and update calls on the v1 API.
type TransactionRequest struct {
	Type          string       `json:"type" example:"INCOME"`
	Amount        NumberString `json:"amount" swaggertype:"number" example:"120.50"`
	Description   string       `json:"description" example:"Morning sales"`
	FruitName     string       `json:"fruitName" example:"Mango"`
	Quantity      NumberString `json:"quantity" swaggertype:"number" example:"12"`
	PricePerUnit  NumberString `json:"pricePerUnit" swaggertype:"number" example:"10"`
	PaymentMethod string       `json:"paymentMethod" example:"CASH"`
	Date          string       `json:"date" example:"2024-01-31"`
}

// ToInput converts the request into the service input.
func (r TransactionRequest) ToInput() domain.TransactionInput {
	return domain.TransactionInput{
		Type:          r.Type,
		Amount:        string(r.Amount),
		Description:   r.Description,
		FruitName:     r.FruitName,
		Quantity:      string(r.Quantity),
		PricePerUnit:  string(r.PricePerUnit),
		PaymentMethod: r.PaymentMethod,
		Date:          r.Date,
	}
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	Type          domain.TransactionType `json:"type"`
	Amount        float64                `json:"amount"`
	Description   string                 `json:"description"`
	FruitName     string                 `json:"fruitName"`
	Quantity      *float64               `json:"quantity"`
	PricePerUnit  *float64               `json:"pricePerUnit"`
	PaymentMethod domain.PaymentMethod   `json:"paymentMethod"`
	Date          string                 `json:"date"`
	CreatedAt     time.Time              `json:"createdAt"`
	LastUpdatedAt time.Time              `json:"lastUpdatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	c := t.Clone()
	return TransactionResponse{
		TransactionID: c.TransactionID,
		Type:          c.Type,
		Amount:        c.Amount,
		Description:   c.Description,
		FruitName:     c.FruitName,
		Quantity:      c.Quantity,
		PricePerUnit:  c.PricePerUnit,
		PaymentMethod: c.PaymentMethod,
		Date:          c.Date.Format(domain.DateLayout),
		CreatedAt:     c.CreatedAt,
		LastUpdatedAt: c.LastUpdatedAt,
	}
}

// ToListTransactionResponse converts a slice of transactions, never returning nil.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i := range txns {
		res[i] = ToTransactionResponse(&txns[i])
	}
	return res
}

// ListTransactionsResponse wraps a transaction listing.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// NewListTransactionsResponse builds the listing envelope.
func NewListTransactionsResponse(txns []domain.Transaction) ListTransactionsResponse {
	return ListTransactionsResponse{
		Transactions: ToListTransactionResponse(txns),
		Count:        len(txns),
	}
}

// MutationResponse is returned by create, update and delete calls.
type MutationResponse struct {
	Success     bool                 `json:"success"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
	Message     string               `json:"message,omitempty"`
	Errors      []string             `json:"errors,omitempty"`
	FieldErrors []FieldErrorResponse `json:"fieldErrors,omitempty"`
}

// DeleteAllResponse reports how many transactions were removed.
type DeleteAllResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

// FieldErrorResponse names a rejected input field.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

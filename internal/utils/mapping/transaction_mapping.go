package mapping

import (
	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	"github.com/SscSPs/fruit_shop_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		Type:          models.TransactionType(d.Type),
		Amount:        d.Amount,
		Description:   d.Description,
		FruitName:     d.FruitName,
		Quantity:      copyFloat(d.Quantity),
		PricePerUnit:  copyFloat(d.PricePerUnit),
		PaymentMethod: models.PaymentMethod(d.PaymentMethod),
		Date:          domain.NormalizeDate(d.Date),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		TransactionFields: domain.TransactionFields{
			Type:          domain.TransactionType(m.Type),
			Amount:        m.Amount,
			Description:   m.Description,
			FruitName:     m.FruitName,
			Quantity:      copyFloat(m.Quantity),
			PricePerUnit:  copyFloat(m.PricePerUnit),
			PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
			Date:          domain.NormalizeDate(m.Date),
		},
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to a slice of domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

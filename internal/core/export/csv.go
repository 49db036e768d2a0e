// Package export turns transaction snapshots and analytics into CSV text and a report layout.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	"github.com/SscSPs/fruit_shop_app/internal/utils"
)

// CSVHeader is the first row of every CSV export.
var CSVHeader = []string{"Date", "Type", "Amount", "Description", "Fruit Name", "Quantity", "Price/Unit", "Payment Type"}

// ToCSV renders one row per transaction, in the given order, after the header row.
// Fields are quoted per RFC 4180 when they contain commas, quotes or newlines.
func ToCSV(txns []domain.Transaction) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(CSVHeader); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, t := range txns {
		if err := w.Write(csvRow(t)); err != nil {
			return nil, fmt.Errorf("failed to write csv row for transaction %s: %w", t.TransactionID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func csvRow(t domain.Transaction) []string {
	return []string{
		t.Date.Format(domain.DateLayout),
		string(t.Type),
		utils.FormatAmount(t.Amount),
		t.Description,
		t.FruitName,
		utils.FormatOptionalNumber(t.Quantity),
		utils.FormatOptionalNumber(t.PricePerUnit),
		string(t.PaymentMethod),
	}
}

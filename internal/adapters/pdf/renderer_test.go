package pdf_test

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/fruit_shop_app/internal/adapters/pdf"
	"github.com/SscSPs/fruit_shop_app/internal/core/analytics"
	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	"github.com/SscSPs/fruit_shop_app/internal/core/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	var txns []domain.Transaction
	for i := range 40 {
		txns = append(txns, domain.NewTransaction(fmt.Sprint(i), domain.TransactionFields{
			Type:          domain.Income,
			Amount:        12.5,
			Description:   "Jus d'orange pressé",
			PaymentMethod: domain.Digital,
			Date:          time.Date(2024, 1, 1+i%28, 0, 0, 0, 0, time.UTC),
		}, time.Now()))
	}
	doc := export.BuildReport(txns, analytics.Aggregate(txns, domain.DateRange{}), time.Now(), export.ReportOptions{})
	require.Greater(t, doc.PageCount(), 1)

	out, err := pdf.NewRenderer().Render(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.GreaterOrEqual(t, bytes.Count(out, []byte("/Type /Page")), doc.PageCount())
}

func TestRenderer_NilDocument(t *testing.T) {
	_, err := pdf.NewRenderer().Render(nil)
	assert.Error(t, err)
}

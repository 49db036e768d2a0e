package services

import (
	"context"

	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	"github.com/SscSPs/fruit_shop_app/internal/core/export"
)

// AnalyticsSvc computes aggregate figures over the current store snapshot
type AnalyticsSvc interface {
	// GetAnalytics aggregates all transactions inside r.
	GetAnalytics(ctx context.Context, r domain.DateRange) (*domain.AnalyticsResult, error)

	// Invalidate drops any memoised results. Called after every acknowledged mutation.
	Invalidate()
}

// ExportSvc produces downloadable representations of the transaction list
type ExportSvc interface {
	// ExportCSV renders the transactions inside r as CSV.
	ExportCSV(ctx context.Context, r domain.DateRange) ([]byte, error)

	// BuildPDFReport lays out the report document for the transactions inside r.
	BuildPDFReport(ctx context.Context, r domain.DateRange) (*export.Document, error)

	// ExportPDF renders the report document for r to PDF bytes.
	ExportPDF(ctx context.Context, r domain.DateRange) ([]byte, error)
}

// ReportRenderer turns a laid-out report document into a binary file format.
type ReportRenderer interface {
	Render(doc *export.Document) ([]byte, error)
}

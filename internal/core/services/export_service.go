package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fruit_shop_app/internal/core/analytics"
	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	"github.com/SscSPs/fruit_shop_app/internal/core/export"
	portsrepo "github.com/SscSPs/fruit_shop_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fruit_shop_app/internal/core/ports/services"
)

// exportService implements the ExportSvc interface
type exportService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	renderer        portssvc.ReportRenderer
	reportTitle     string
	now             func() time.Time
}

// ExportServiceOption is a functional option for configuring the export service
type ExportServiceOption func(*exportService)

// WithReportTitle sets the title printed at the top of the PDF report.
func WithReportTitle(title string) ExportServiceOption {
	return func(s *exportService) {
		s.reportTitle = title
	}
}

// WithExportClock overrides the "Generated on" date source.
func WithExportClock(now func() time.Time) ExportServiceOption {
	return func(s *exportService) {
		s.now = now
	}
}

// NewExportService creates a new export service. renderer may be nil when only CSV and
// layout exports are needed.
func NewExportService(repo portsrepo.TransactionReader, renderer portssvc.ReportRenderer, options ...ExportServiceOption) portssvc.ExportSvc {
	svc := &exportService{
		transactionRepo: repo,
		renderer:        renderer,
		reportTitle:     export.DefaultReportTitle,
		now:             time.Now,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.ExportSvc = (*exportService)(nil)

// ExportCSV renders the transactions inside r, in store order.
func (s *exportService) ExportCSV(ctx context.Context, r domain.DateRange) ([]byte, error) {
	txns, err := s.snapshot(ctx, r)
	if err != nil {
		return nil, err
	}

	out, err := export.ToCSV(txns)
	if err != nil {
		s.LogError(ctx, err, "Failed to render CSV export")
		return nil, fmt.Errorf("failed to export csv: %w", err)
	}

	s.LogInfo(ctx, "CSV export generated", slog.Int("rows", len(txns)), slog.String("range", r.Key()))
	return out, nil
}

// BuildPDFReport lays out the report for the transactions inside r.
func (s *exportService) BuildPDFReport(ctx context.Context, r domain.DateRange) (*export.Document, error) {
	txns, err := s.snapshot(ctx, r)
	if err != nil {
		return nil, err
	}

	// Summary and entries come from the same snapshot, so they always agree.
	res := analytics.Aggregate(txns, domain.DateRange{})
	return export.BuildReport(txns, res, s.now(), export.ReportOptions{Title: s.reportTitle}), nil
}

// ExportPDF renders the report for r to PDF bytes.
func (s *exportService) ExportPDF(ctx context.Context, r domain.DateRange) ([]byte, error) {
	if s.renderer == nil {
		return nil, fmt.Errorf("failed to export pdf: no report renderer configured")
	}

	doc, err := s.BuildPDFReport(ctx, r)
	if err != nil {
		return nil, err
	}

	out, err := s.renderer.Render(doc)
	if err != nil {
		s.LogError(ctx, err, "Failed to render PDF export")
		return nil, fmt.Errorf("failed to export pdf: %w", err)
	}

	s.LogInfo(ctx, "PDF export generated",
		slog.Int("pages", doc.PageCount()),
		slog.Int("bytes", len(out)),
		slog.String("range", r.Key()))
	return out, nil
}

func (s *exportService) snapshot(ctx context.Context, r domain.DateRange) ([]domain.Transaction, error) {
	txns, err := s.transactionRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for export")
		return nil, fmt.Errorf("failed to load transactions for export: %w", err)
	}
	return analytics.FilterByDateRange(txns, r), nil
}

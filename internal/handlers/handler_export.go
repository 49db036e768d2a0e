package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	portssvc "github.com/SscSPs/fruit_shop_app/internal/core/ports/services"
	"github.com/SscSPs/fruit_shop_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	csvContentType = "text/csv; charset=utf-8"
	pdfContentType = "application/pdf"
)

// exportHandler serves downloadable exports.
type exportHandler struct {
	exportService portssvc.ExportSvc
	now           func() time.Time
}

func newExportHandler(es portssvc.ExportSvc) *exportHandler {
	return &exportHandler{exportService: es, now: time.Now}
}

func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportSvc) {
	h := newExportHandler(exportService)

	exports := rg.Group("/exports")
	{
		exports.GET("/csv", h.exportCSV("startDate", "endDate", datedFileName("fruit-shop-transactions-", domain.DateLayout, "csv")))
		exports.GET("/pdf", h.exportPDF("startDate", "endDate", datedFileName("fruit-shop-report-", domain.DateLayout, "pdf")))
		exports.GET("/pdf/layout", h.reportLayout)
	}
}

// exportCSV godoc
// @Summary Export transactions as CSV
// @Tags exports
// @Produce  text/csv
// @Param   startDate query string false "Earliest date (YYYY-MM-DD)"
// @Param   endDate query string false "Latest date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} dto.MutationResponse "Invalid date range"
// @Failure 500 {object} map[string]string "Failed to export CSV"
// @Router /exports/csv [get]
func (h *exportHandler) exportCSV(startKey, endKey string, fileName func(time.Time) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		r, ok := bindDateRange(c, startKey, endKey)
		if !ok {
			return
		}

		out, err := h.exportService.ExportCSV(c.Request.Context(), r)
		if err != nil {
			logger.Error("Failed to export CSV", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export CSV"})
			return
		}

		h.attach(c, fileName)
		c.Data(http.StatusOK, csvContentType, out)
	}
}

// exportPDF godoc
// @Summary Export a PDF report
// @Description Financial summary, payment breakdown and one block per transaction
// @Tags exports
// @Produce  application/pdf
// @Param   startDate query string false "Earliest date (YYYY-MM-DD)"
// @Param   endDate query string false "Latest date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} dto.MutationResponse "Invalid date range"
// @Failure 500 {object} map[string]string "Failed to export PDF"
// @Router /exports/pdf [get]
func (h *exportHandler) exportPDF(startKey, endKey string, fileName func(time.Time) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		r, ok := bindDateRange(c, startKey, endKey)
		if !ok {
			return
		}

		out, err := h.exportService.ExportPDF(c.Request.Context(), r)
		if err != nil {
			logger.Error("Failed to export PDF", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to export PDF"})
			return
		}

		h.attach(c, fileName)
		c.Data(http.StatusOK, pdfContentType, out)
	}
}

// reportLayout godoc
// @Summary Report layout
// @Description The positioned report elements the PDF export is drawn from
// @Tags exports
// @Produce  json
// @Param   startDate query string false "Earliest date (YYYY-MM-DD)"
// @Param   endDate query string false "Latest date (YYYY-MM-DD)"
// @Success 200 {object} export.Document
// @Failure 400 {object} dto.MutationResponse "Invalid date range"
// @Failure 500 {object} map[string]string "Failed to build report"
// @Router /exports/pdf/layout [get]
func (h *exportHandler) reportLayout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	r, ok := bindDateRange(c, "startDate", "endDate")
	if !ok {
		return
	}

	doc, err := h.exportService.BuildPDFReport(c.Request.Context(), r)
	if err != nil {
		logger.Error("Failed to build report layout", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build report"})
		return
	}

	c.JSON(http.StatusOK, doc)
}

func (h *exportHandler) attach(c *gin.Context, fileName func(time.Time) string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName(h.now())))
}

// datedFileName returns a download name builder such as "report-2024-01-31.pdf".
func datedFileName(prefix, layout, ext string) func(time.Time) string {
	return func(t time.Time) string {
		return prefix + t.Format(layout) + "." + ext
	}
}

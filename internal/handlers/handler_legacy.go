package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/SscSPs/fruit_shop_app/internal/apperrors"
	"github.com/SscSPs/fruit_shop_app/internal/core/analytics"
	portssvc "github.com/SscSPs/fruit_shop_app/internal/core/ports/services"
	"github.com/SscSPs/fruit_shop_app/internal/dto"
	"github.com/SscSPs/fruit_shop_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// legacyDateLayout is the compact date used in the original download names.
const legacyDateLayout = "20060102"

// legacyHandler serves the routes of the original server-rendered app with its
// snake_case fields and lowercase enums.
type legacyHandler struct {
	transactionService portssvc.TransactionSvcFacade
	analyticsService   portssvc.AnalyticsSvc
}

func registerLegacyRoutes(r gin.IRouter, services *portssvc.ServiceContainer) {
	h := &legacyHandler{
		transactionService: services.Transaction,
		analyticsService:   services.Analytics,
	}
	exports := newExportHandler(services.Export)

	r.POST("/add_transaction", h.addTransaction)
	r.GET("/get_transactions", h.getTransactions)
	r.POST("/update_transaction/:id", h.updateTransaction)
	r.DELETE("/delete_transaction/:id", h.deleteTransaction)
	r.DELETE("/delete_all_transactions", h.deleteAllTransactions)
	r.GET("/analytics", h.getAnalytics)
	r.GET("/export_csv", exports.exportCSV("start_date", "end_date", datedFileName("transactions_", legacyDateLayout, "csv")))
	r.GET("/export_pdf", exports.exportPDF("start_date", "end_date", datedFileName("report_", legacyDateLayout, "pdf")))
}

func (h *legacyHandler) addTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LegacyTransactionRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind legacy transaction form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.LegacyStatusResponse{Success: false, Errors: []string{"Invalid request format"}})
		return
	}

	txn, err := h.transactionService.AddTransaction(c.Request.Context(), req.ToInput())
	if err != nil {
		h.respondError(c, logger, err, "Failed to add transaction")
		return
	}

	logger.Info("Transaction added successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusOK, dto.LegacyStatusResponse{Success: true, Message: "Transaction added successfully"})
}

// getTransactions lists newest first. Same-day entries keep the most recently added first.
func (h *legacyHandler) getTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), portssvc.ListTransactionsOptions{})
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.LegacyStatusResponse{Success: false, Errors: []string{"Failed to list transactions"}})
		return
	}

	slices.Reverse(txns)
	c.JSON(http.StatusOK, dto.ToLegacyTransactionList(analytics.SortByDate(txns, true)))
}

func (h *legacyHandler) updateTransaction(c *gin.Context) {
	id := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", id))

	var req dto.LegacyTransactionRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warn("Failed to bind legacy transaction form", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.LegacyStatusResponse{Success: false, Errors: []string{"Invalid request format"}})
		return
	}

	if _, err := h.transactionService.UpdateTransaction(c.Request.Context(), id, req.ToInput()); err != nil {
		h.respondError(c, logger, err, "Failed to update transaction")
		return
	}

	c.JSON(http.StatusOK, dto.LegacyStatusResponse{Success: true, Message: "Transaction updated successfully"})
}

func (h *legacyHandler) deleteTransaction(c *gin.Context) {
	id := c.Param("id")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", id))

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), id); err != nil {
		h.respondError(c, logger, err, "Failed to delete transaction")
		return
	}

	c.JSON(http.StatusOK, dto.LegacyStatusResponse{Success: true, Message: "Transaction deleted successfully"})
}

func (h *legacyHandler) deleteAllTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if _, err := h.transactionService.DeleteAllTransactions(c.Request.Context()); err != nil {
		h.respondError(c, logger, err, "Failed to delete transactions")
		return
	}

	c.JSON(http.StatusOK, dto.LegacyStatusResponse{Success: true, Message: "All transactions deleted successfully"})
}

func (h *legacyHandler) getAnalytics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	r, ok := bindDateRange(c, "start_date", "end_date")
	if !ok {
		return
	}

	res, err := h.analyticsService.GetAnalytics(c.Request.Context(), r)
	if err != nil {
		logger.Error("Failed to compute analytics", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.LegacyStatusResponse{Success: false, Errors: []string{"Failed to compute analytics"}})
		return
	}

	c.JSON(http.StatusOK, dto.ToLegacyAnalyticsResponse(res))
}

func (h *legacyHandler) respondError(c *gin.Context, logger *slog.Logger, err error, failure string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		msgs := []string{err.Error()}
		if ve, ok := apperrors.AsValidationError(err); ok {
			msgs = ve.Messages()
		}
		c.JSON(http.StatusBadRequest, dto.LegacyStatusResponse{Success: false, Errors: msgs})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Transaction not found")
		c.JSON(http.StatusNotFound, dto.LegacyStatusResponse{Success: false, Errors: []string{"Transaction not found"}})
	default:
		logger.Error(failure, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.LegacyStatusResponse{Success: false, Errors: []string{failure}})
	}
}

package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fruit_shop_app/internal/core/ports/services"
	"github.com/SscSPs/fruit_shop_app/internal/dto"
	"github.com/SscSPs/fruit_shop_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// registerTransactionRoutes registers routes related to transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.DELETE("", h.deleteAllTransactions)
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.PUT("/:transactionID", h.updateTransaction)
		transactions.DELETE("/:transactionID", h.deleteTransaction)
	}
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Validates and stores a new income or expense entry
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.TransactionRequest true "Transaction details"
// @Success 201 {object} dto.MutationResponse
// @Failure 400 {object} dto.MutationResponse "Invalid input format or validation error"
// @Failure 500 {object} dto.MutationResponse "Failed to add transaction"
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.MutationResponse{Success: false, Errors: []string{"Invalid request format: " + err.Error()}})
		return
	}

	logger.Info("Received request to add transaction", slog.String("type", req.Type), slog.String("date", req.Date))

	txn, err := h.transactionService.AddTransaction(c.Request.Context(), req.ToInput())
	if err != nil {
		respondMutationError(c, logger, err, "Failed to add transaction")
		return
	}

	logger.Info("Transaction added successfully", slog.String("transaction_id", txn.TransactionID))
	resp := dto.ToTransactionResponse(txn)
	c.JSON(http.StatusCreated, dto.MutationResponse{Success: true, Transaction: &resp})
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions in insertion order, optionally filtered by an inclusive date range or sorted by date
// @Tags transactions
// @Produce  json
// @Param   startDate query string false "Earliest date (YYYY-MM-DD)"
// @Param   endDate query string false "Latest date (YYYY-MM-DD)"
// @Param   sort query string false "Sort key" Enums(date)
// @Param   order query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} dto.MutationResponse "Invalid query parameters"
// @Failure 500 {object} dto.MutationResponse "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	r, ok := bindDateRange(c, "startDate", "endDate")
	if !ok {
		return
	}

	opts := portssvc.ListTransactionsOptions{Range: r}
	switch c.Query("sort") {
	case "":
	case "date":
		opts.SortByDate = true
	default:
		c.JSON(http.StatusBadRequest, dto.MutationResponse{Success: false, Errors: []string{"sort must be 'date'"}})
		return
	}
	switch c.DefaultQuery("order", "asc") {
	case "asc":
	case "desc":
		opts.Descending = true
	default:
		c.JSON(http.StatusBadRequest, dto.MutationResponse{Success: false, Errors: []string{"order must be 'asc' or 'desc'"}})
		return
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), opts)
	if err != nil {
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MutationResponse{Success: false, Errors: []string{"Failed to list transactions"}})
		return
	}

	c.JSON(http.StatusOK, dto.NewListTransactionsResponse(txns))
}

// getTransaction godoc
// @Summary Get a transaction by ID
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} dto.MutationResponse "Transaction not found"
// @Failure 500 {object} dto.MutationResponse "Failed to retrieve transaction"
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	transactionID := c.Param("transactionID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", transactionID))

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		respondMutationError(c, logger, err, "Failed to retrieve transaction")
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Replaces every field of an existing transaction except its id and creation time
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Param   transaction body dto.TransactionRequest true "Transaction details"
// @Success 200 {object} dto.MutationResponse
// @Failure 400 {object} dto.MutationResponse "Invalid input format or validation error"
// @Failure 404 {object} dto.MutationResponse "Transaction not found"
// @Failure 500 {object} dto.MutationResponse "Failed to update transaction"
// @Router /transactions/{transactionID} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	transactionID := c.Param("transactionID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", transactionID))

	var req dto.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.MutationResponse{Success: false, Errors: []string{"Invalid request format: " + err.Error()}})
		return
	}

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), transactionID, req.ToInput())
	if err != nil {
		respondMutationError(c, logger, err, "Failed to update transaction")
		return
	}

	logger.Info("Transaction updated successfully")
	resp := dto.ToTransactionResponse(txn)
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true, Transaction: &resp})
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.MutationResponse
// @Failure 404 {object} dto.MutationResponse "Transaction not found"
// @Failure 500 {object} dto.MutationResponse "Failed to delete transaction"
// @Router /transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	transactionID := c.Param("transactionID")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("transaction_id", transactionID))

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), transactionID); err != nil {
		respondMutationError(c, logger, err, "Failed to delete transaction")
		return
	}

	logger.Info("Transaction deleted successfully")
	c.JSON(http.StatusOK, dto.MutationResponse{Success: true})
}

// deleteAllTransactions godoc
// @Summary Delete every transaction
// @Tags transactions
// @Produce  json
// @Success 200 {object} dto.DeleteAllResponse
// @Failure 500 {object} dto.MutationResponse "Failed to delete transactions"
// @Router /transactions [delete]
func (h *transactionHandler) deleteAllTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	n, err := h.transactionService.DeleteAllTransactions(c.Request.Context())
	if err != nil {
		respondMutationError(c, logger, err, "Failed to delete transactions")
		return
	}

	logger.Info("All transactions deleted", slog.Int64("deleted", n))
	c.JSON(http.StatusOK, dto.DeleteAllResponse{Success: true, Deleted: n})
}

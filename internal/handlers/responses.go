package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fruit_shop_app/internal/apperrors"
	"github.com/SscSPs/fruit_shop_app/internal/core/domain"
	"github.com/SscSPs/fruit_shop_app/internal/dto"
	"github.com/SscSPs/fruit_shop_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// validationResponse builds the 400 body for a rejected input.
func validationResponse(err error) dto.MutationResponse {
	resp := dto.MutationResponse{Success: false}
	if ve, ok := apperrors.AsValidationError(err); ok {
		resp.Errors = ve.Messages()
		for _, f := range ve.Fields {
			resp.FieldErrors = append(resp.FieldErrors, dto.FieldErrorResponse{Field: f.Field, Message: f.Message})
		}
		return resp
	}
	resp.Errors = []string{err.Error()}
	return resp
}

// respondMutationError maps a service error onto the v1 mutation envelope.
func respondMutationError(c *gin.Context, logger *slog.Logger, err error, failure string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, validationResponse(err))
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Transaction not found")
		c.JSON(http.StatusNotFound, dto.MutationResponse{Success: false, Errors: []string{"Transaction not found"}})
	default:
		logger.Error(failure, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.MutationResponse{Success: false, Errors: []string{failure}})
	}
}

// bindDateRange reads the optional inclusive date bounds from the query string.
// It writes a 400 and returns false when either bound is malformed.
func bindDateRange(c *gin.Context, startKey, endKey string) (domain.DateRange, bool) {
	r, err := domain.ParseDateRange(c.Query(startKey), c.Query(endKey))
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Invalid date range", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, validationResponse(err))
		return domain.DateRange{}, false
	}
	return r, true
}

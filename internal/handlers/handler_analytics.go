package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fruit_shop_app/internal/core/ports/services"
	"github.com/SscSPs/fruit_shop_app/internal/dto"
	"github.com/SscSPs/fruit_shop_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type analyticsHandler struct {
	analyticsService portssvc.AnalyticsSvc
}

func registerAnalyticsRoutes(rg *gin.RouterGroup, analyticsService portssvc.AnalyticsSvc) {
	h := &analyticsHandler{analyticsService: analyticsService}
	rg.GET("/analytics", h.getAnalytics)
}

// getAnalytics godoc
// @Summary Aggregate figures
// @Description Totals, cash/digital income split, daily averages and the daily trend over an optional inclusive date range
// @Tags analytics
// @Produce  json
// @Param   startDate query string false "Earliest date (YYYY-MM-DD)"
// @Param   endDate query string false "Latest date (YYYY-MM-DD)"
// @Success 200 {object} dto.AnalyticsResponse
// @Failure 400 {object} dto.MutationResponse "Invalid date range"
// @Failure 500 {object} map[string]string "Failed to compute analytics"
// @Router /analytics [get]
func (h *analyticsHandler) getAnalytics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	r, ok := bindDateRange(c, "startDate", "endDate")
	if !ok {
		return
	}

	res, err := h.analyticsService.GetAnalytics(c.Request.Context(), r)
	if err != nil {
		logger.Error("Failed to compute analytics", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
		return
	}

	c.JSON(http.StatusOK, dto.ToAnalyticsResponse(res))
}

package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	portsrepo "github.com/SscSPs/fruit_shop_app/internal/core/ports/repositories"
	"github.com/SscSPs/fruit_shop_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

const healthCheckTimeout = 2 * time.Second

// getHealth godoc
// @Summary Show the status of server.
// @Description Reports whether the server and its transaction store are reachable.
// @Tags root
// @Accept */*
// @Produce plain
// @Success 200 {string} string "OK"
// @Failure 503 {string} string "store unavailable"
// @Router /health [get]
func getHealth(checker portsrepo.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if checker != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
			defer cancel()
			if err := checker.Ping(ctx); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
				c.String(http.StatusServiceUnavailable, "store unavailable")
				return
			}
		}
		c.String(http.StatusOK, "OK")
	}
}

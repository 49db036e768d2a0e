package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/fruit_shop_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked by PostHog
var pathsToSkip = map[string]bool{
	"/health": true,
}

// PosthogMiddleware creates a Gin middleware handler that tracks successful API calls with PostHog.
// The shop has no user accounts, so every event is attributed to distinctID.
func PosthogMiddleware(posthogClient *utils.PosthogClientWrapper, distinctID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Skip if PostHog is not initialized or path is in skip list
		if !posthogClient.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		// Process request first
		c.Next()

		// Skip if there was an error processing the request
		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		eventName := EventNameForRoute(c.Request.Method, c.FullPath())
		// Skip if event name is empty (e.g., for 404s)
		if eventName == "" {
			return
		}

		// Prepare event properties
		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}

		// Add route parameters if any
		if len(c.Params) > 0 {
			params := make(map[string]string)
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}
		if id, ok := GetRequestIDFromCtx(c.Request.Context()); ok {
			props["request_id"] = id
		}

		posthogClient.Enqueue(distinctID, eventName, props)
	}
}

// EventNameForRoute derives an event name from a route template,
// e.g. GET "/api/v1/transactions/:transactionID" -> "get_api_v1_transactions_transactionID".
func EventNameForRoute(method, fullPath string) string {
	path := strings.Trim(fullPath, "/")
	if path == "" {
		return ""
	}
	path = strings.ReplaceAll(path, ":", "")
	path = strings.ReplaceAll(path, "/", "_")
	return strings.ToLower(method) + "_" + path
}

package respond

import (
	"github.com/gin-gonic/gin"

	"match-backend/internal/shared/telemetry"
)

// ErrorResponse is the published error shape: a single user-facing message.
// Existing clients parse the flat "error" field, so it stays flat.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Error sends the standardized error response and logs the failure with
// an internal code that never reaches the client.
func Error(c *gin.Context, status int, code, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"code":       code,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}

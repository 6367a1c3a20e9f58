package respond

import (
	"github.com/gin-gonic/gin"

	"resume-store/internal/shared/telemetry"
)

// Error sends a client-visible error payload of the form {"error": message}
// and logs the underlying cause server-side. The cause never reaches the
// client; pass nil when the message itself is the whole story.
func Error(c *gin.Context, status int, message string, cause error) {
	fields := map[string]any{
		"status":     status,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	}
	if cause != nil {
		fields["err"] = cause.Error()
	}
	telemetry.Error("http.error", fields)

	c.AbortWithStatusJSON(status, gin.H{"error": message})
}

// Message sends a {"message": text} payload. Used for the not-found
// responses, which carry a human-readable message rather than an error key.
func Message(c *gin.Context, status int, text string) {
	c.AbortWithStatusJSON(status, gin.H{"message": text})
}

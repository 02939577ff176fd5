package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/diet-recipe/backend/internal/types"
)

// AbortWithDetail stops the chain and writes a JSON error body.
func AbortWithDetail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, types.ErrorResponse{Detail: detail})
}

// Recovery turns a handler panic into a 500 JSON error response
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		panicRecoveries.Inc()
		slog.Error("panic recovered",
			"error", recovered,
			"requestID", GetRequestID(c),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		AbortWithDetail(c, http.StatusInternalServerError, "Internal Server Error")
	})
}

// NotFound renders unknown routes in the API's error shape.
func NotFound(c *gin.Context) {
	AbortWithDetail(c, http.StatusNotFound, "Not Found")
}

// MethodNotAllowed renders known routes hit with the wrong method.
func MethodNotAllowed(c *gin.Context) {
	AbortWithDetail(c, http.StatusMethodNotAllowed, "Method Not Allowed")
}

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jonesrussell/habrreader/internal/logger"
)

const (
	// RequestIDHeader carries the request identifier in both directions.
	RequestIDHeader = "X-Request-ID"
	// requestIDKey is the gin context key holding the request identifier.
	requestIDKey = "request_id"
	// maxRequestIDLength bounds inbound identifiers; longer ones are replaced.
	maxRequestIDLength = 128
)

// RecoveryMiddleware catches panics, logs them, and returns a 500 error.
func RecoveryMiddleware(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error("Panic recovered",
					"error", err,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"client_ip", c.ClientIP(),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error: "internal server error",
					Code:  codeInternal,
				})
			}
		}()

		c.Next()
	}
}

// RequestIDMiddleware takes the request ID from X-Request-ID or generates a
// UUID, and echoes it in the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)

		c.Next()
	}
}

// LoggerMiddleware logs one entry per request with method, path, status,
// duration and any handler errors.
func LoggerMiddleware(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []any{
			"method", c.Request.Method,
			"path", path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
			"client_ip", c.ClientIP(),
			"request_id", c.GetString(requestIDKey),
		}
		if query != "" {
			fields = append(fields, "query", query)
		}
		if !strings.HasPrefix(path, "/health") {
			fields = append(fields, "user_agent", c.Request.UserAgent())
		}

		if len(c.Errors) > 0 {
			fields = append(fields, "errors", c.Errors.Errors())
			log.Warn("HTTP request with errors", fields...)
			return
		}
		log.Info("HTTP request", fields...)
	}
}

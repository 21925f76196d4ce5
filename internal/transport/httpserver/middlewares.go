package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sandevgo/memobot/pkg/log"
)

// ContextLogger attaches the application logger to every request context
// so handlers and services keep logging through log.FromCtx.
func ContextLogger(base context.Context) gin.HandlerFunc {
	logger := log.FromCtx(base)
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))
		c.Next()
	}
}

// RequestLogger logs HTTP requests.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		logger := log.FromCtx(c.Request.Context())
		logEvent := logger.Info()
		if c.Writer.Status() >= 400 {
			logEvent = logger.Warn()
		}
		logEvent.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Msg("request completed")
	}
}

// CORS adds permissive CORS headers; the browser client is served from a
// different port than the API.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

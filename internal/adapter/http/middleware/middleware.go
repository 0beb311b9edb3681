// Package middleware carries the gin middlewares shared by every route.
package middleware

import (
	"net/http"
	"time"

	"tour_billing/internal/infrastructure/logger"
	"tour_billing/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const HeaderCorrelationID = "X-Correlation-Id"

// Correlation reuses the caller's X-Correlation-Id or mints one, stores it on
// the request context and echoes it back.
func Correlation() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := logger.WithCorrelationID(c.Request.Context(), c.GetHeader(HeaderCorrelationID))
		ctx, id := logger.EnsureCorrelationID(ctx)

		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(HeaderCorrelationID, id)
		c.Next()
	}
}

// RequestLogger writes one "http_request" entry per request.
func RequestLogger(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		status := c.Writer.Status()

		level := zapcore.InfoLevel
		switch {
		case status >= http.StatusInternalServerError:
			level = zapcore.ErrorLevel
		case c.Request.URL.Path == "/metrics":
			level = zapcore.DebugLevel
		}

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		logger.FromContext(c.Request.Context(), base).Log(level, "http_request", fields...)
	}
}

// Recovery turns a panic into a 500 carrying the correlation id.
func Recovery(base *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				ctx := c.Request.Context()
				logger.FromContext(ctx, base).Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
				)
				appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError).
					WithCorrelationID(logger.CorrelationID(ctx))
				c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			}
		}()
		c.Next()
	}
}

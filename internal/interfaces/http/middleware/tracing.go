// Package middleware provides the gin middleware chain of the Stockie API.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig holds configuration for the tracing middleware.
type TracingConfig struct {
	ServiceName string
	Enabled     bool
	// TracerProvider overrides the global provider; tests use it.
	TracerProvider trace.TracerProvider
}

// DefaultTracingConfig returns default tracing configuration.
func DefaultTracingConfig() TracingConfig {
	return TracingConfig{
		ServiceName: "stockie-backend",
		Enabled:     true,
	}
}

// TracingWithConfig returns the otelgin server span middleware followed by a
// handler that annotates the span with request_id, symbol and user_id, and
// marks 4xx and 5xx responses as errors. Spread it into Use:
//
//	engine.Use(middleware.TracingWithConfig(cfg)...)
func TracingWithConfig(cfg TracingConfig) gin.HandlersChain {
	if !cfg.Enabled {
		return gin.HandlersChain{func(c *gin.Context) { c.Next() }}
	}

	var opts []otelgin.Option
	if cfg.TracerProvider != nil {
		opts = append(opts, otelgin.WithTracerProvider(cfg.TracerProvider))
	}

	return gin.HandlersChain{otelgin.Middleware(cfg.ServiceName, opts...), annotateSpan}
}

// annotateSpan runs inside the otelgin span, so the span is still open after
// c.Next returns.
func annotateSpan(c *gin.Context) {
	span := trace.SpanFromContext(c.Request.Context())
	if !span.IsRecording() {
		c.Next()
		return
	}

	if requestID := c.GetString("request_id"); requestID != "" {
		span.SetAttributes(attribute.String("request_id", requestID))
	}
	if symbol := c.Param("symbol"); symbol != "" {
		span.SetAttributes(attribute.String("stock.symbol", symbol))
	}

	c.Next()

	if userID := c.GetString(JWTUserIDKey); userID != "" {
		span.SetAttributes(attribute.String("user_id", userID))
	}
	if cache := c.Writer.Header().Get("X-Cache"); cache != "" {
		span.SetAttributes(attribute.String("http.cache", cache))
	}

	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		return
	}
	span.SetStatus(codes.Error, http.StatusText(status))
	span.SetAttributes(attribute.Int("http.status_code", status))
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func tracedRouter(t *testing.T) (*gin.Engine, *tracetest.SpanRecorder) {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	router := gin.New()
	router.Use(RequestID())
	router.Use(TracingWithConfig(TracingConfig{ServiceName: "stockie-test", Enabled: true, TracerProvider: tp})...)
	router.GET("/api/v1/assets/:symbol/quote", func(c *gin.Context) {
		c.Header("X-Cache", "MISS")
		c.Status(http.StatusOK)
	})
	router.GET("/api/v1/analyses/:symbol", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
	return router, recorder
}

func spanAttr(attrs []attribute.KeyValue, key attribute.Key) string {
	for _, kv := range attrs {
		if kv.Key == key {
			return kv.Value.Emit()
		}
	}
	return ""
}

func TestTracingWithConfig(t *testing.T) {
	t.Run("annotates the server span", func(t *testing.T) {
		router, recorder := tracedRouter(t)
		req := httptest.NewRequest(http.MethodGet, "/api/v1/assets/AAPL/quote", nil)
		req.Header.Set(RequestIDKey, "req-1")
		router.ServeHTTP(httptest.NewRecorder(), req)

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		attrs := spans[0].Attributes()
		assert.Equal(t, "req-1", spanAttr(attrs, "request_id"))
		assert.Equal(t, "AAPL", spanAttr(attrs, "stock.symbol"))
		assert.Equal(t, "MISS", spanAttr(attrs, "http.cache"))
		assert.NotEqual(t, codes.Error, spans[0].Status().Code)
	})

	t.Run("marks client errors", func(t *testing.T) {
		router, recorder := tracedRouter(t)
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/analyses/ZZZ", nil))

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status().Code)
		assert.Equal(t, "404", spanAttr(spans[0].Attributes(), "http.status_code"))
	})

	t.Run("disabled is a pass-through", func(t *testing.T) {
		chain := TracingWithConfig(TracingConfig{Enabled: false})
		require.Len(t, chain, 1)

		router := gin.New()
		router.Use(chain...)
		router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

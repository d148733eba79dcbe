package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/stockie/backend/internal/infrastructure/telemetry"
)

func TestProcedureTiming(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer provider.Shutdown(context.Background())
	metrics, err := telemetry.NewAPIMetrics(provider.Meter(telemetry.MeterName))
	require.NoError(t, err)

	router := gin.New()
	router.Use(ProcedureTiming(zap.New(core), metrics))
	router.GET("/api/v1/assets/:symbol/quote", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/assets/AAPL/quote", nil))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.True(t, strings.HasPrefix(entry.Message, "[API] /api/v1/assets/AAPL/quote took "), entry.Message)
	assert.True(t, strings.HasSuffix(entry.Message, "ms"))
	assert.Equal(t, "/api/v1/assets/:symbol/quote", entry.ContextMap()["route"])

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	var found bool
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name == "api.procedure.duration" {
				found = true
				hist := m.Data.(metricdata.Histogram[float64])
				assert.Equal(t, uint64(1), hist.DataPoints[0].Count)
			}
		}
	}
	assert.True(t, found)
}

func TestProcedureTiming_NilDependencies(t *testing.T) {
	router := gin.New()
	router.Use(ProcedureTiming(nil, nil))

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

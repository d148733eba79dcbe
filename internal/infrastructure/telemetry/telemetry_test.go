package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/stockie/backend/internal/infrastructure/config"
)

func TestSetup_Disabled(t *testing.T) {
	ctx := context.Background()

	tel, err := Setup(ctx, config.TelemetryConfig{ServiceName: "stockie-test"}, zaptest.NewLogger(t))
	require.NoError(t, err)
	require.NotNil(t, tel)

	assert.False(t, tel.Tracer.IsEnabled())
	assert.False(t, tel.Meter.IsEnabled())
	assert.False(t, tel.Logs.IsEnabled())
	assert.False(t, tel.Profiler.IsEnabled())
	require.NotNil(t, tel.API, "API metrics fall back to the no-op meter")

	assert.NotPanics(t, func() {
		tel.API.RecordCacheLookup(ctx, true)
	})
	assert.NoError(t, tel.Shutdown(ctx))
	assert.NoError(t, tel.Shutdown(ctx), "shutdown is repeatable")
}

func TestSetup_ProfilingWithoutServer(t *testing.T) {
	_, err := Setup(context.Background(), config.TelemetryConfig{ProfilingEnabled: true}, zaptest.NewLogger(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server address is required")
}

func TestSampler(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{1.0, "AlwaysOnSampler"},
		{2.0, "AlwaysOnSampler"},
		{0.0, "AlwaysOffSampler"},
		{-1, "AlwaysOffSampler"},
		{0.25, "TraceIDRatioBased{0.25}"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Contains(t, sampler(tt.ratio).Description(), tt.want)
		})
	}
}

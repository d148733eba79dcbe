package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MeterName is the instrumentation scope for API metrics
const MeterName = "github.com/stockie/backend"

// APIMetrics holds the instruments recorded by the HTTP layer.
type APIMetrics struct {
	procedureDuration *Histogram
	cacheLookups      *Counter
}

// NewAPIMetrics creates the API instruments on meter
func NewAPIMetrics(meter metric.Meter) (*APIMetrics, error) {
	duration, err := NewHistogram(meter, HistogramOpts{
		Name:        "api.procedure.duration",
		Description: "Time spent serving one API procedure",
		Unit:        "ms",
		Boundaries:  DurationBuckets,
	})
	if err != nil {
		return nil, err
	}

	lookups, err := NewCounter(meter, "api.cache.lookups", "Response cache lookups by result", "{lookup}")
	if err != nil {
		return nil, err
	}

	return &APIMetrics{procedureDuration: duration, cacheLookups: lookups}, nil
}

// RecordProcedure records how long route took to answer with status
func (m *APIMetrics) RecordProcedure(ctx context.Context, method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.procedureDuration.Record(ctx, float64(elapsed.Microseconds())/1000,
		attribute.String("http.method", method),
		attribute.String("http.route", route),
		attribute.Int("http.status_code", status),
	)
}

// RecordCacheLookup counts one response cache lookup
func (m *APIMetrics) RecordCacheLookup(ctx context.Context, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.Inc(ctx, attribute.String("result", result))
}

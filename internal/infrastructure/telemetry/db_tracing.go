package telemetry

import (
	"context"
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultSlowQueryThreshold marks query spans as slow
const DefaultSlowQueryThreshold = 200 * time.Millisecond

type queryStartKey struct{}

// DBTracingOption configures RegisterDBTracing
type DBTracingOption func(*dbTracing)

type dbTracing struct {
	slowQuery time.Duration
	dbName    string
	otelOpts  []otelgorm.Option
}

// WithSlowQueryThreshold overrides DefaultSlowQueryThreshold
func WithSlowQueryThreshold(d time.Duration) DBTracingOption {
	return func(t *dbTracing) {
		t.slowQuery = d
	}
}

// WithDBTracerProvider sets the tracer provider otelgorm records into
func WithDBTracerProvider(tp trace.TracerProvider) DBTracingOption {
	return func(t *dbTracing) {
		t.otelOpts = append(t.otelOpts, otelgorm.WithTracerProvider(tp))
	}
}

// RegisterDBTracing installs the otelgorm plugin on db and a callback that
// annotates query spans with row counts, errors and slow-query events.
// Query variables are never attached to spans.
func RegisterDBTracing(db *gorm.DB, dbName string, logger *zap.Logger, opts ...DBTracingOption) error {
	t := &dbTracing{slowQuery: DefaultSlowQueryThreshold, dbName: dbName}
	for _, opt := range opts {
		opt(t)
	}

	otelOpts := append([]otelgorm.Option{
		otelgorm.WithDBName(t.dbName),
		otelgorm.WithoutQueryVariables(),
	}, t.otelOpts...)
	if err := db.Use(otelgorm.NewPlugin(otelOpts...)); err != nil {
		return err
	}

	before := func(tx *gorm.DB) {
		if tx.Statement.Context != nil {
			tx.Statement.Context = context.WithValue(tx.Statement.Context, queryStartKey{}, time.Now())
		}
	}
	if err := db.Callback().Query().Before("gorm:query").Register("stockie:before_query", before); err != nil {
		return err
	}
	if err := db.Callback().Create().Before("gorm:create").Register("stockie:before_create", before); err != nil {
		return err
	}
	if err := db.Callback().Raw().Before("gorm:raw").Register("stockie:before_raw", before); err != nil {
		return err
	}

	// annotate must run while the otelgorm span is still open
	if err := db.Callback().Query().After("gorm:query").Before("otel:after:select").Register("stockie:after_query", t.annotate); err != nil {
		return err
	}
	if err := db.Callback().Create().After("gorm:create").Before("otel:after:create").Register("stockie:after_create", t.annotate); err != nil {
		return err
	}
	if err := db.Callback().Raw().After("gorm:raw").Before("otel:after:raw").Register("stockie:after_raw", t.annotate); err != nil {
		return err
	}

	logger.Info("Database tracing enabled", zap.Duration("slow_query_threshold", t.slowQuery))
	return nil
}

func (t *dbTracing) annotate(tx *gorm.DB) {
	ctx := tx.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	span.SetAttributes(attribute.Int64("db.rows_affected", tx.Statement.RowsAffected))
	if tx.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", tx.Statement.Table))
	}
	if tx.Error != nil && !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		span.SetStatus(codes.Error, tx.Error.Error())
		span.RecordError(tx.Error)
	}

	if start, ok := ctx.Value(queryStartKey{}).(time.Time); ok {
		if elapsed := time.Since(start); elapsed > t.slowQuery {
			span.SetAttributes(attribute.Bool("db.slow_query", true))
			span.AddEvent("slow_query", trace.WithAttributes(
				attribute.Int64("duration_ms", elapsed.Milliseconds()),
				attribute.Int64("threshold_ms", t.slowQuery.Milliseconds()),
			))
		}
	}
}

// Package analysis generates LLM investment reports and serves the
// screener over previously analyzed stocks.
package analysis

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/stockie/backend/internal/domain/analysis"
	"github.com/stockie/backend/internal/domain/market"
	"github.com/stockie/backend/internal/domain/shared"
	"github.com/stockie/backend/internal/infrastructure/llm"
	"github.com/stockie/backend/internal/infrastructure/logger"
	"github.com/stockie/backend/internal/infrastructure/telemetry"
)

// ReportDataProvider is the market data a report is built from
type ReportDataProvider interface {
	Quote(ctx context.Context, symbol string) ([]market.EquityQuote, error)
	RatiosTTM(ctx context.Context, symbol string) ([]market.FundamentalMultiple, error)
	KeyMetrics(ctx context.Context, symbol string) ([]market.KeyMetric, error)
	News(ctx context.Context, symbol string) ([]market.CompanyNews, error)
	Profile(ctx context.Context, symbol string) (*market.CompanyProfile, error)
}

// ReportService generates and serves stock analysis reports
type ReportService struct {
	repo         analysis.Repository
	provider     ReportDataProvider
	generator    llm.Generator
	staleAfter   time.Duration
	systemPrompt string
	now          func() time.Time
	logger       *zap.Logger
}

// ReportOption configures a ReportService
type ReportOption func(*ReportService)

// WithStaleAfter sets how long a stored report is served before regenerating
func WithStaleAfter(d time.Duration) ReportOption {
	return func(s *ReportService) {
		if d > 0 {
			s.staleAfter = d
		}
	}
}

// WithSystemPrompt overrides DefaultSystemPrompt
func WithSystemPrompt(prompt string) ReportOption {
	return func(s *ReportService) {
		if prompt != "" {
			s.systemPrompt = prompt
		}
	}
}

// WithClock sets the time source
func WithClock(now func() time.Time) ReportOption {
	return func(s *ReportService) {
		s.now = now
	}
}

// WithLogger sets the logger
func WithLogger(zapLogger *zap.Logger) ReportOption {
	return func(s *ReportService) {
		s.logger = zapLogger
	}
}

// NewReportService creates a new ReportService
func NewReportService(
	repo analysis.Repository,
	provider ReportDataProvider,
	generator llm.Generator,
	opts ...ReportOption,
) *ReportService {
	s := &ReportService{
		repo:         repo,
		provider:     provider,
		generator:    generator,
		staleAfter:   analysis.DefaultStaleAfter,
		systemPrompt: DefaultSystemPrompt,
		now:          time.Now,
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate returns the stored report for symbol while it is fresh, and
// otherwise builds a new one from current market data and stores it
func (s *ReportService) Generate(ctx context.Context, symbol string) (_ *ReportResponse, err error) {
	ctx, span := telemetry.StartSpan(ctx, "analysis.generate_report", attribute.String("symbol", symbol))
	defer func() {
		telemetry.RecordError(span, err)
		span.End()
	}()

	sym, err := market.NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	log := logger.WithLogger(ctx, s.logger).With(zap.String("symbol", sym))

	existing, err := s.repo.FindByTicker(ctx, sym)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	now := s.now()
	if existing.IsFresh(now, s.staleAfter) {
		log.Debug("Serving stored report", zap.Time("created_at", existing.CreatedAt))
		return ToReportResponse(existing), nil
	}

	inputs, err := s.gather(ctx, sym)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		log.Error("Failed to fetch report inputs", zap.Error(err))
		return nil, shared.ErrUpstream.Wrap(err)
	}

	prompt, err := BuildPrompt(sym, inputs)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	text, err := s.generator.Complete(ctx, s.systemPrompt, prompt)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return nil, err
		}
		log.Error("Report generation failed", zap.Error(err))
		return nil, shared.ErrUpstream.Wrap(err)
	}
	log.Info("Report generated", zap.Duration("latency", time.Since(start)), zap.Int("chars", len(text)))

	var sector analysis.Sector
	if inputs.Profile != nil {
		sector = analysis.ParseSector(inputs.Profile.Sector)
	}

	record, err := analysis.NewAnalysis(sym, prompt, text, sector, marketCap(inputs),
		analysis.ParseRecommendation(text), now)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(ctx, record); err != nil {
		return nil, err
	}
	return ToReportResponse(record), nil
}

// Latest returns the stored report for symbol, or nil when none exists
func (s *ReportService) Latest(ctx context.Context, symbol string) (*ReportResponse, error) {
	sym, err := market.NormalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	record, err := s.repo.FindByTicker(ctx, sym)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return ToReportResponse(record), nil
}

// gather fetches every report input concurrently; the first failure cancels the rest
func (s *ReportService) gather(ctx context.Context, symbol string) (PromptInputs, error) {
	var in PromptInputs
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		in.Quote, err = s.provider.Quote(gctx, symbol)
		return err
	})
	g.Go(func() (err error) {
		in.Ratios, err = s.provider.RatiosTTM(gctx, symbol)
		return err
	})
	g.Go(func() (err error) {
		in.Metrics, err = s.provider.KeyMetrics(gctx, symbol)
		return err
	})
	g.Go(func() (err error) {
		in.News, err = s.provider.News(gctx, symbol)
		return err
	})
	g.Go(func() (err error) {
		in.Profile, err = s.provider.Profile(gctx, symbol)
		return err
	})

	if err := g.Wait(); err != nil {
		return PromptInputs{}, err
	}
	return in, nil
}

// marketCap prefers the live quote and falls back to the profile
func marketCap(in PromptInputs) decimal.Decimal {
	if len(in.Quote) > 0 && in.Quote[0].MarketCap > 0 {
		return decimal.NewFromFloat(in.Quote[0].MarketCap).Round(2)
	}
	if in.Profile != nil && in.Profile.MarketCap > 0 {
		return decimal.NewFromFloat(in.Profile.MarketCap).Round(2)
	}
	return decimal.Zero
}

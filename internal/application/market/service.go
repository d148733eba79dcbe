// Package market serves the read-only market data procedures: quotes,
// search, screening, price history, fundamentals and news.
package market

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/stockie/backend/internal/domain/market"
	"github.com/stockie/backend/internal/domain/shared"
	"github.com/stockie/backend/internal/infrastructure/logger"
)

// DataProvider is the market data vendor. Implemented by fmp.Client.
type DataProvider interface {
	Quote(ctx context.Context, symbol string) ([]market.EquityQuote, error)
	Search(ctx context.Context, query string) ([]market.EquitySearchResult, error)
	Screener(ctx context.Context) ([]market.EquityScreenerResult, error)
	Profile(ctx context.Context, symbol string) (*market.CompanyProfile, error)
	HistoricalPriceFull(ctx context.Context, symbol string) (*market.HistoricalPriceFull, error)
	IntradayPrices(ctx context.Context, symbol string) ([]market.HistoricalPrice, error)
	RatiosTTM(ctx context.Context, symbol string) ([]market.FundamentalMultiple, error)
	BalanceSheet(ctx context.Context, symbol string) ([]market.BalanceSheet, error)
	BalanceSheetGrowth(ctx context.Context, symbol string) ([]market.BalanceSheetGrowth, error)
	CashFlow(ctx context.Context, symbol string) ([]market.CashFlow, error)
	CashFlowGrowth(ctx context.Context, symbol string) ([]market.CashFlowGrowth, error)
	EarningsHistory(ctx context.Context, symbol string) ([]market.HistoricalEPS, error)
	KeyMetrics(ctx context.Context, symbol string) ([]market.KeyMetric, error)
	News(ctx context.Context, symbol string) ([]market.CompanyNews, error)
}

// Service exposes one method per market data procedure
type Service struct {
	provider DataProvider
	logger   *zap.Logger
}

// NewService creates a new market data Service
func NewService(provider DataProvider, zapLogger *zap.Logger) *Service {
	if zapLogger == nil {
		zapLogger = zap.NewNop()
	}
	return &Service{provider: provider, logger: zapLogger}
}

// bySymbol validates symbol, calls the provider and wraps the result
func bySymbol[T any](
	ctx context.Context,
	s *Service,
	procedure, symbol string,
	call func(context.Context, string) (T, error),
) (market.Envelope[T], error) {
	sym, err := market.NormalizeSymbol(symbol)
	if err != nil {
		return market.Envelope[T]{}, err
	}
	results, err := call(ctx, sym)
	if err != nil {
		return market.Envelope[T]{}, s.upstream(ctx, procedure, sym, err)
	}
	return market.NewEnvelope(results), nil
}

// upstream logs the vendor failure and replaces it with a generic domain error.
// Cancellation by the caller is returned unchanged.
func (s *Service) upstream(ctx context.Context, procedure, symbol string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	logger.WithLogger(ctx, s.logger).Error("Market data request failed",
		zap.String("procedure", procedure),
		zap.String("symbol", symbol),
		zap.Error(err),
	)
	return shared.ErrUpstream.Wrap(err)
}

// EquityQuote returns the latest quote
func (s *Service) EquityQuote(ctx context.Context, symbol string) (market.Envelope[[]market.EquityQuote], error) {
	return bySymbol(ctx, s, "equityQuote", symbol, s.provider.Quote)
}

// EquitySearch finds listed equities matching query
func (s *Service) EquitySearch(ctx context.Context, query string) (market.Envelope[[]market.EquitySearchResult], error) {
	q, err := market.NormalizeSearchQuery(query)
	if err != nil {
		return market.Envelope[[]market.EquitySearchResult]{}, err
	}
	results, err := s.provider.Search(ctx, q)
	if err != nil {
		return market.Envelope[[]market.EquitySearchResult]{}, s.upstream(ctx, "equitySearch", "", err)
	}
	return market.NewSearchEnvelope(results), nil
}

// EquityScreener lists the vendor's large-cap Nasdaq universe
func (s *Service) EquityScreener(ctx context.Context) (market.Envelope[[]market.EquityScreenerResult], error) {
	results, err := s.provider.Screener(ctx)
	if err != nil {
		return market.Envelope[[]market.EquityScreenerResult]{}, s.upstream(ctx, "equityScreener", "", err)
	}
	return market.NewEnvelope(results), nil
}

// CompanyProfile returns the issuer profile, or shared.ErrNotFound when the
// vendor has none
func (s *Service) CompanyProfile(ctx context.Context, symbol string) (market.Envelope[*market.CompanyProfile], error) {
	env, err := bySymbol(ctx, s, "companyProfile", symbol, s.provider.Profile)
	if err != nil {
		return env, err
	}
	if env.Results == nil {
		return market.Envelope[*market.CompanyProfile]{}, shared.ErrNotFound.WithMessage("company profile not found")
	}
	return env, nil
}

// EquityPriceHistoricalFMP returns daily price history
func (s *Service) EquityPriceHistoricalFMP(ctx context.Context, symbol string) (market.Envelope[*market.HistoricalPriceFull], error) {
	return bySymbol(ctx, s, "equityPriceHistoricalFMP", symbol, s.provider.HistoricalPriceFull)
}

// EquityPriceHistorical returns intraday bars
func (s *Service) EquityPriceHistorical(ctx context.Context, symbol string) (market.Envelope[[]market.HistoricalPrice], error) {
	return bySymbol(ctx, s, "equityPriceHistorical", symbol, s.provider.IntradayPrices)
}

// FundamentalMultiples returns trailing-twelve-month ratios
func (s *Service) FundamentalMultiples(ctx context.Context, symbol string) (market.Envelope[[]market.FundamentalMultiple], error) {
	return bySymbol(ctx, s, "fundamentalMultiples", symbol, s.provider.RatiosTTM)
}

// BalanceSheet returns quarterly balance sheets
func (s *Service) BalanceSheet(ctx context.Context, symbol string) (market.Envelope[[]market.BalanceSheet], error) {
	return bySymbol(ctx, s, "balance", symbol, s.provider.BalanceSheet)
}

// BalanceSheetGrowth returns quarter-over-quarter balance sheet growth
func (s *Service) BalanceSheetGrowth(ctx context.Context, symbol string) (market.Envelope[[]market.BalanceSheetGrowth], error) {
	return bySymbol(ctx, s, "balanceGrowth", symbol, s.provider.BalanceSheetGrowth)
}

// CashFlow returns quarterly cash flow statements
func (s *Service) CashFlow(ctx context.Context, symbol string) (market.Envelope[[]market.CashFlow], error) {
	return bySymbol(ctx, s, "cash", symbol, s.provider.CashFlow)
}

// CashFlowGrowth returns quarter-over-quarter cash flow growth
func (s *Service) CashFlowGrowth(ctx context.Context, symbol string) (market.Envelope[[]market.CashFlowGrowth], error) {
	return bySymbol(ctx, s, "cashGrowth", symbol, s.provider.CashFlowGrowth)
}

// HistoricalEPS returns reported and estimated earnings
func (s *Service) HistoricalEPS(ctx context.Context, symbol string) (market.Envelope[[]market.HistoricalEPS], error) {
	return bySymbol(ctx, s, "historicalEPS", symbol, s.provider.EarningsHistory)
}

// KeyMetrics returns quarterly key metrics
func (s *Service) KeyMetrics(ctx context.Context, symbol string) (market.Envelope[[]market.KeyMetric], error) {
	return bySymbol(ctx, s, "keyMetrics", symbol, s.provider.KeyMetrics)
}

// CompanyNews returns recent articles about the symbol
func (s *Service) CompanyNews(ctx context.Context, symbol string) (market.Envelope[[]market.CompanyNews], error) {
	return bySymbol(ctx, s, "newsCompany", symbol, s.provider.News)
}

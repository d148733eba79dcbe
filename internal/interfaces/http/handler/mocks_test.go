package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	analysisapp "github.com/stockie/backend/internal/application/analysis"
	"github.com/stockie/backend/internal/domain/analysis"
	"github.com/stockie/backend/internal/domain/blog"
	"github.com/stockie/backend/internal/domain/market"
	"github.com/stockie/backend/internal/domain/shared"
)

// MockMarketService is a mock implementation of MarketService
type MockMarketService struct {
	mock.Mock
}

func (m *MockMarketService) EquityQuote(ctx context.Context, symbol string) (market.Envelope[[]market.EquityQuote], error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(market.Envelope[[]market.EquityQuote]), args.Error(1)
}

func (m *MockMarketService) EquitySearch(ctx context.Context, query string) (market.Envelope[[]market.EquitySearchResult], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(market.Envelope[[]market.EquitySearchResult]), args.Error(1)
}

func (m *MockMarketService) EquityScreener(ctx context.Context) (market.Envelope[[]market.EquityScreenerResult], error) {
	args := m.Called(ctx)
	return args.Get(0).(market.Envelope[[]market.EquityScreenerResult]), args.Error(1)
}

func (m *MockMarketService) CompanyProfile(ctx context.Context, symbol string) (market.Envelope[*market.CompanyProfile], error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(market.Envelope[*market.CompanyProfile]), args.Error(1)
}

func (m *MockMarketService) EquityPriceHistoricalFMP(ctx context.Context, symbol string) (market.Envelope[*market.HistoricalPriceFull], error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(market.Envelope[*market.HistoricalPriceFull]), args.Error(1)
}

func (m *MockMarketService) EquityPriceHistorical(ctx context.Context, symbol string) (market.Envelope[[]market.HistoricalPrice], error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(market.Envelope[[]market.HistoricalPrice]), args.Error(1)
}

func (m *MockMarketService) FundamentalMultiples(ctx context.Context, symbol string) (market.Envelope[[]market.FundamentalMultiple], error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(market.Envelope[[]market.FundamentalMultiple]), args.Error(1)
}

func (m *MockMarketService) BalanceSheet(ctx context.Context, symbol string) (market.Envelope[[]market.BalanceSheet], error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(market.Envelope[[]market.BalanceSheet]), args.Error(1)
}

func (m *MockMarketService) BalanceSheetGrowth(ctx context.Context, symbol string) (market.Envelope[[]market.BalanceSheetGrowth], error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(market.Envelope[[]market.BalanceSheetGrowth]), args.Error(1)
}

func (m *MockMarketService) CashFlow(ctx context.Context, symbol string) (market.Envelope[[]market.CashFlow], error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(market.Envelope[[]market.CashFlow]), args.Error(1)
}

func (m *MockMarketService) CashFlowGrowth(ctx context.Context, symbol string) (market.Envelope[[]market.CashFlowGrowth], error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(market.Envelope[[]market.CashFlowGrowth]), args.Error(1)
}

func (m *MockMarketService) HistoricalEPS(ctx context.Context, symbol string) (market.Envelope[[]market.HistoricalEPS], error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(market.Envelope[[]market.HistoricalEPS]), args.Error(1)
}

func (m *MockMarketService) KeyMetrics(ctx context.Context, symbol string) (market.Envelope[[]market.KeyMetric], error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(market.Envelope[[]market.KeyMetric]), args.Error(1)
}

func (m *MockMarketService) CompanyNews(ctx context.Context, symbol string) (market.Envelope[[]market.CompanyNews], error) {
	args := m.Called(ctx, symbol)
	return args.Get(0).(market.Envelope[[]market.CompanyNews]), args.Error(1)
}

// MockReportService is a mock implementation of ReportService
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Generate(ctx context.Context, symbol string) (*analysisapp.ReportResponse, error) {
	args := m.Called(ctx, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analysisapp.ReportResponse), args.Error(1)
}

func (m *MockReportService) Latest(ctx context.Context, symbol string) (*analysisapp.ReportResponse, error) {
	args := m.Called(ctx, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*analysisapp.ReportResponse), args.Error(1)
}

// MockScreenerService is a mock implementation of ScreenerService
type MockScreenerService struct {
	mock.Mock
}

func (m *MockScreenerService) List(ctx context.Context, filter analysis.ScreenerFilter) (shared.Paginated[analysisapp.AnalysisSummary], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[analysisapp.AnalysisSummary]), args.Error(1)
}

func (m *MockScreenerService) Sectors() []analysis.Sector {
	args := m.Called()
	return args.Get(0).([]analysis.Sector)
}

// MockBlogService is a mock implementation of BlogService
type MockBlogService struct {
	mock.Mock
}

func (m *MockBlogService) GetAllBlogs(ctx context.Context, tag string) ([]blog.Meta, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]blog.Meta), args.Error(1)
}

func (m *MockBlogService) GetBlogBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blog.Post), args.Error(1)
}

func (m *MockBlogService) GetAllTags(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBlogService) GetAllBlogSlugs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBlogService) SitemapXML(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockPinger is a mock implementation of Pinger
type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping() error {
	return m.Called().Error(0)
}

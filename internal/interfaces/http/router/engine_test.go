package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	analysisapp "github.com/stockie/backend/internal/application/analysis"
	"github.com/stockie/backend/internal/domain/analysis"
	"github.com/stockie/backend/internal/domain/blog"
	"github.com/stockie/backend/internal/domain/market"
	"github.com/stockie/backend/internal/domain/shared"
	"github.com/stockie/backend/internal/infrastructure/auth"
	"github.com/stockie/backend/internal/infrastructure/cache"
	"github.com/stockie/backend/internal/infrastructure/config"
	"github.com/stockie/backend/internal/interfaces/http/handler"
	"github.com/stockie/backend/internal/interfaces/http/middleware"
)

const engineTestSecret = "engine-test-secret-at-least-32-chars"

// fakeMarket answers EquityQuote only; other procedures are not exercised here
type fakeMarket struct {
	handler.MarketService
	quotes atomic.Int32
}

func (f *fakeMarket) EquityQuote(_ context.Context, symbol string) (market.Envelope[[]market.EquityQuote], error) {
	f.quotes.Add(1)
	return market.NewEnvelope([]market.EquityQuote{{Symbol: strings.ToUpper(symbol), Price: 101}}), nil
}

type fakeReports struct {
	generated atomic.Int32
}

func (f *fakeReports) Generate(_ context.Context, symbol string) (*analysisapp.ReportResponse, error) {
	f.generated.Add(1)
	return &analysisapp.ReportResponse{Ticker: symbol, Recommendation: analysis.RecommendationHold}, nil
}

func (f *fakeReports) Latest(_ context.Context, symbol string) (*analysisapp.ReportResponse, error) {
	return &analysisapp.ReportResponse{Ticker: symbol, Recommendation: analysis.RecommendationBuy}, nil
}

type fakeScreener struct{}

func (fakeScreener) List(context.Context, analysis.ScreenerFilter) (shared.Paginated[analysisapp.AnalysisSummary], error) {
	return shared.NewPaginated[analysisapp.AnalysisSummary](nil, 0, 1, 20), nil
}

func (fakeScreener) Sectors() []analysis.Sector { return analysis.Sectors }

type fakeBlog struct {
	tagCalls atomic.Int32
}

func (f *fakeBlog) GetAllBlogs(context.Context, string) ([]blog.Meta, error) { return []blog.Meta{}, nil }

func (f *fakeBlog) GetBlogBySlug(context.Context, string) (*blog.Post, error) {
	return nil, shared.ErrNotFound.WithMessage("blog post not found")
}

func (f *fakeBlog) GetAllTags(context.Context) ([]string, error) {
	f.tagCalls.Add(1)
	return []string{"earnings"}, nil
}

func (f *fakeBlog) GetAllBlogSlugs(context.Context) ([]string, error) { return []string{}, nil }

func (f *fakeBlog) SitemapXML(context.Context) ([]byte, error) { return []byte("<urlset/>"), nil }

type testEngine struct {
	engine  *gin.Engine
	market  *fakeMarket
	reports *fakeReports
	blog    *fakeBlog
}

func newTestEngine(t *testing.T, mutate func(*EngineConfig)) *testEngine {
	t.Helper()
	te := &testEngine{market: &fakeMarket{}, reports: &fakeReports{}, blog: &fakeBlog{}}

	mem := cache.NewInMemoryResponseCache(time.Minute)
	t.Cleanup(func() { _ = mem.Close() })

	cfg := EngineConfig{
		CORS:           middleware.DefaultCORSConfig(),
		Security:       middleware.DefaultSecurityConfig(),
		AllowedOrigins: middleware.DefaultAllowedOrigins,
		MaxBodySize:    1 << 20,
		CacheControl:   middleware.DefaultCacheControl,
		Cache:          mem,
		CacheTTL:       10 * time.Minute,
		Auth: middleware.JWTMiddlewareConfig{
			Verifier: auth.NewTokenVerifier(config.JWTConfig{Enabled: true, Secret: engineTestSecret}),
		},
		Swagger: middleware.SwaggerConfig{Enabled: false},
	}
	if mutate != nil {
		mutate(&cfg)
	}

	engine, err := NewEngine(cfg, Handlers{
		Market:   handler.NewMarketHandler(te.market),
		Analysis: handler.NewAnalysisHandler(te.reports, fakeScreener{}),
		Blog:     handler.NewBlogHandler(te.blog),
		System:   handler.NewSystemHandler(nil, "test"),
	})
	require.NoError(t, err)
	te.engine = engine
	return te
}

func (te *testEngine) do(method, target string, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	te.engine.ServeHTTP(w, req)
	return w
}

func bearer(t *testing.T) map[string]string {
	t.Helper()
	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user_123",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}).SignedString([]byte(engineTestSecret))
	require.NoError(t, err)
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestNewEngine_RouteTable(t *testing.T) {
	te := newTestEngine(t, nil)

	registered := make(map[string]bool)
	for _, r := range te.engine.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		"GET /health",
		"GET /sitemap.xml",
		"GET /swagger/*any",
		"GET /api/v1/assets/search",
		"GET /api/v1/assets/screener",
		"GET /api/v1/assets/:symbol/quote",
		"GET /api/v1/assets/:symbol/profile",
		"GET /api/v1/assets/:symbol/prices/daily",
		"GET /api/v1/assets/:symbol/prices/intraday",
		"GET /api/v1/assets/:symbol/fundamentals/multiples",
		"GET /api/v1/assets/:symbol/fundamentals/balance",
		"GET /api/v1/assets/:symbol/fundamentals/balance-growth",
		"GET /api/v1/assets/:symbol/fundamentals/cash",
		"GET /api/v1/assets/:symbol/fundamentals/cash-growth",
		"GET /api/v1/assets/:symbol/fundamentals/eps",
		"GET /api/v1/assets/:symbol/fundamentals/metrics",
		"GET /api/v1/assets/:symbol/news",
		"GET /api/v1/analyses",
		"GET /api/v1/analyses/sectors",
		"GET /api/v1/analyses/:symbol",
		"POST /api/v1/analyses",
		"GET /api/v1/blogs",
		"GET /api/v1/blogs/tags",
		"GET /api/v1/blogs/slugs",
		"GET /api/v1/blogs/:slug",
		"GET /api/v1/system/info",
	}
	for _, route := range want {
		assert.True(t, registered[route], "missing route %s", route)
	}
	assert.Len(t, te.engine.Routes(), len(want))
}

func TestNewEngine_ResponseCache(t *testing.T) {
	te := newTestEngine(t, nil)

	first := te.do(http.MethodGet, "/api/v1/assets/aapl/quote", "", nil)
	second := te.do(http.MethodGet, "/api/v1/assets/aapl/quote", "", nil)

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "MISS", first.Header().Get(middleware.CacheHeader))
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "HIT", second.Header().Get(middleware.CacheHeader))
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, int32(1), te.market.quotes.Load())

	te.do(http.MethodGet, "/api/v1/blogs/tags", "", nil)
	te.do(http.MethodGet, "/api/v1/blogs/tags", "", nil)
	assert.Equal(t, int32(1), te.blog.tagCalls.Load())
}

func TestNewEngine_CacheDisabled(t *testing.T) {
	te := newTestEngine(t, func(cfg *EngineConfig) { cfg.Cache = nil })

	te.do(http.MethodGet, "/api/v1/assets/aapl/quote", "", nil)
	w := te.do(http.MethodGet, "/api/v1/assets/aapl/quote", "", nil)

	assert.Empty(t, w.Header().Get(middleware.CacheHeader))
	assert.Equal(t, int32(2), te.market.quotes.Load())
}

func TestNewEngine_Auth(t *testing.T) {
	te := newTestEngine(t, nil)

	t.Run("report generation requires a token", func(t *testing.T) {
		w := te.do(http.MethodPost, "/api/v1/analyses", `{"symbol":"AAPL"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, int32(0), te.reports.generated.Load())
	})

	t.Run("report generation with a token", func(t *testing.T) {
		w := te.do(http.MethodPost, "/api/v1/analyses", `{"symbol":"AAPL"}`, bearer(t))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get(middleware.CacheHeader), "mutations bypass the response cache")
		assert.Equal(t, int32(1), te.reports.generated.Load())
	})

	t.Run("latest report requires a token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, te.do(http.MethodGet, "/api/v1/analyses/AAPL", "", nil).Code)
		assert.Equal(t, http.StatusOK, te.do(http.MethodGet, "/api/v1/analyses/AAPL", "", bearer(t)).Code)
	})

	t.Run("screener listing is public", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, te.do(http.MethodGet, "/api/v1/analyses", "", nil).Code)
		assert.Equal(t, http.StatusOK, te.do(http.MethodGet, "/api/v1/analyses/sectors", "", nil).Code)
	})

	t.Run("disabled auth lets requests through", func(t *testing.T) {
		open := newTestEngine(t, func(cfg *EngineConfig) {
			cfg.Auth = middleware.JWTMiddlewareConfig{Disabled: true}
		})
		assert.Equal(t, http.StatusOK, open.do(http.MethodPost, "/api/v1/analyses", `{"symbol":"MSFT"}`, nil).Code)
	})
}

func TestNewEngine_GlobalMiddleware(t *testing.T) {
	te := newTestEngine(t, nil)

	t.Run("request id and cache-control on success", func(t *testing.T) {
		w := te.do(http.MethodGet, "/api/v1/blogs", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDKey))
		assert.Equal(t, middleware.DefaultCacheControl, w.Header().Get("Cache-Control"))
	})

	t.Run("errors are not publicly cacheable", func(t *testing.T) {
		w := te.do(http.MethodGet, "/api/v1/blogs/missing", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, w.Header().Get("Cache-Control"))
	})

	t.Run("unknown origins are rejected", func(t *testing.T) {
		w := te.do(http.MethodGet, "/api/v1/blogs", "", map[string]string{"Origin": "https://evil.example"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("allowed origins pass", func(t *testing.T) {
		w := te.do(http.MethodGet, "/api/v1/blogs", "", map[string]string{"Origin": "https://thestockie.com"})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown route uses the error envelope", func(t *testing.T) {
		w := te.do(http.MethodGet, "/api/v1/nope", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"NOT_FOUND"`)
	})

	t.Run("health and sitemap live outside the api prefix", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, te.do(http.MethodGet, "/health", "", nil).Code)
		w := te.do(http.MethodGet, "/sitemap.xml", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "<urlset/>", w.Body.String())
	})

	t.Run("swagger hidden when disabled", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, te.do(http.MethodGet, "/swagger/index.html", "", nil).Code)
	})
}

func TestNewEngine_RateLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(2, time.Minute)
	t.Cleanup(limiter.Stop)
	te := newTestEngine(t, func(cfg *EngineConfig) { cfg.RateLimiter = limiter })

	assert.Equal(t, http.StatusOK, te.do(http.MethodGet, "/health", "", nil).Code)
	assert.Equal(t, http.StatusOK, te.do(http.MethodGet, "/health", "", nil).Code)
	w := te.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestNewEngine_InvalidTrustedProxy(t *testing.T) {
	_, err := NewEngine(EngineConfig{TrustedProxies: []string{"not-an-ip"}}, Handlers{})
	assert.Error(t, err)
}

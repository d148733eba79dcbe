package router

import (
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/stockie/backend/internal/infrastructure/cache"
	"github.com/stockie/backend/internal/infrastructure/logger"
	"github.com/stockie/backend/internal/infrastructure/telemetry"
	"github.com/stockie/backend/internal/interfaces/http/dto"
	"github.com/stockie/backend/internal/interfaces/http/handler"
	"github.com/stockie/backend/internal/interfaces/http/middleware"
)

// Handlers bundles the HTTP handlers mounted by NewEngine
type Handlers struct {
	Market   *handler.MarketHandler
	Analysis *handler.AnalysisHandler
	Blog     *handler.BlogHandler
	System   *handler.SystemHandler
}

// EngineConfig configures the global middleware chain and the per-group
// caching and authentication
type EngineConfig struct {
	Logger         *zap.Logger
	Metrics        *telemetry.APIMetrics
	TrustedProxies []string

	Tracing        middleware.TracingConfig
	Profiling      middleware.ProfilingConfig
	Security       middleware.SecurityConfig
	CORS           middleware.CORSConfig
	AllowedOrigins []string
	MaxBodySize    int64
	RateLimiter    *middleware.RateLimiter // nil disables rate limiting
	CacheControl   string

	Cache    cache.ResponseCache // nil disables response caching
	CacheTTL time.Duration
	Auth     middleware.JWTMiddlewareConfig
	Swagger  middleware.SwaggerConfig
}

// NewEngine builds the gin engine with the full middleware chain, the
// versioned API and the root level routes
func NewEngine(cfg EngineConfig, h Handlers) (*gin.Engine, error) {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, err
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(cfg.Logger))
	engine.Use(logger.GinMiddleware(cfg.Logger))
	engine.Use(middleware.TracingWithConfig(cfg.Tracing)...)
	engine.Use(middleware.ProfilingWithConfig(cfg.Profiling))
	engine.Use(middleware.SecureWithConfig(cfg.Security))
	engine.Use(middleware.CORSWithConfig(cfg.CORS))
	engine.Use(middleware.OriginGuard(cfg.AllowedOrigins))
	engine.Use(middleware.BodyLimit(cfg.MaxBodySize))
	if cfg.RateLimiter != nil {
		engine.Use(middleware.RateLimit(cfg.RateLimiter))
	}
	engine.Use(middleware.ProcedureTiming(cfg.Logger, cfg.Metrics))
	if cfg.CacheControl != "" {
		engine.Use(middleware.CacheControl(cfg.CacheControl))
	}

	cached := middleware.ResponseCache(middleware.ResponseCacheConfig{
		Cache:   cfg.Cache,
		TTL:     cfg.CacheTTL,
		Logger:  cfg.Logger,
		Metrics: cfg.Metrics,
	})
	if cfg.Auth.Logger == nil {
		cfg.Auth.Logger = cfg.Logger
	}
	auth := middleware.JWTAuthMiddlewareWithConfig(cfg.Auth)

	engine.GET("/health", h.System.Health)
	engine.GET("/sitemap.xml", h.Blog.Sitemap)
	engine.GET("/swagger/*any", middleware.SwaggerProtection(cfg.Swagger), ginSwagger.WrapHandler(swaggerFiles.Handler))

	r := NewRouter(engine, WithAPIVersion("v1"))
	groups := APIGroups(h, cached, auth)
	for _, g := range groups {
		r.Register(g)
	}
	r.Setup()

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(dto.GetHTTPStatus(dto.ErrCodeNotFound), dto.NewErrorResponseWithRequestID(
			dto.ErrCodeNotFound, "Route not found", c.GetString("request_id")))
	})

	for _, g := range groups {
		cfg.Logger.Debug("Routes registered",
			zap.String("group", g.Name()),
			zap.Strings("routes", g.Routes()),
		)
	}
	return engine, nil
}

// APIGroups returns the route groups mounted under /api/v1. cached wraps
// every public GET; auth guards report reads and generation.
func APIGroups(h Handlers, cached, auth gin.HandlerFunc) []*DomainGroup {
	return []*DomainGroup{
		MarketRoutes(h.Market, cached),
		AnalysisRoutes(h.Analysis, cached, auth),
		BlogRoutes(h.Blog, cached),
		SystemRoutes(h.System),
	}
}

// MarketRoutes mounts the market data procedures under /assets
func MarketRoutes(h *handler.MarketHandler, cached gin.HandlerFunc) *DomainGroup {
	g := NewDomainGroup("assets", "/assets").Use(cached)
	g.GET("/search", h.EquitySearch)
	g.GET("/screener", h.EquityScreener)
	g.GET("/:symbol/quote", h.EquityQuote)
	g.GET("/:symbol/profile", h.CompanyProfile)
	g.GET("/:symbol/news", h.CompanyNews)

	prices := g.Group("prices", "/:symbol/prices")
	prices.GET("/daily", h.EquityPriceHistoricalFMP)
	prices.GET("/intraday", h.EquityPriceHistorical)

	fundamentals := g.Group("fundamentals", "/:symbol/fundamentals")
	fundamentals.GET("/multiples", h.FundamentalMultiples)
	fundamentals.GET("/balance", h.BalanceSheet)
	fundamentals.GET("/balance-growth", h.BalanceSheetGrowth)
	fundamentals.GET("/cash", h.CashFlow)
	fundamentals.GET("/cash-growth", h.CashFlowGrowth)
	fundamentals.GET("/eps", h.HistoricalEPS)
	fundamentals.GET("/metrics", h.KeyMetrics)
	return g
}

// AnalysisRoutes mounts the screener and report endpoints under /analyses
func AnalysisRoutes(h *handler.AnalysisHandler, cached, auth gin.HandlerFunc) *DomainGroup {
	g := NewDomainGroup("analyses", "/analyses")
	g.GET("", cached, h.List)
	g.GET("/sectors", cached, h.Sectors)
	g.GET("/:symbol", auth, h.Latest)
	g.POST("", auth, h.Generate)
	return g
}

// BlogRoutes mounts the content blog under /blogs
func BlogRoutes(h *handler.BlogHandler, cached gin.HandlerFunc) *DomainGroup {
	g := NewDomainGroup("blogs", "/blogs").Use(cached)
	g.GET("", h.GetAllBlogs)
	g.GET("/tags", h.GetAllTags)
	g.GET("/slugs", h.GetAllBlogSlugs)
	g.GET("/:slug", h.GetBlogBySlug)
	return g
}

// SystemRoutes mounts build information under /system
func SystemRoutes(h *handler.SystemHandler) *DomainGroup {
	return NewDomainGroup("system", "/system").GET("/info", h.GetSystemInfo)
}

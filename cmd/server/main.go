package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	analysisapp "github.com/stockie/backend/internal/application/analysis"
	blogapp "github.com/stockie/backend/internal/application/blog"
	marketapp "github.com/stockie/backend/internal/application/market"
	"github.com/stockie/backend/internal/infrastructure/auth"
	"github.com/stockie/backend/internal/infrastructure/cache"
	"github.com/stockie/backend/internal/infrastructure/config"
	"github.com/stockie/backend/internal/infrastructure/content"
	"github.com/stockie/backend/internal/infrastructure/fmp"
	"github.com/stockie/backend/internal/infrastructure/llm"
	"github.com/stockie/backend/internal/infrastructure/logger"
	"github.com/stockie/backend/internal/infrastructure/migration"
	"github.com/stockie/backend/internal/infrastructure/persistence"
	"github.com/stockie/backend/internal/infrastructure/storage"
	"github.com/stockie/backend/internal/infrastructure/telemetry"
	"github.com/stockie/backend/internal/interfaces/http/handler"
	"github.com/stockie/backend/internal/interfaces/http/middleware"
	"github.com/stockie/backend/internal/interfaces/http/router"

	_ "github.com/stockie/backend/docs"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "dev"

//	@title			Stockie API
//	@version		1.0
//	@description	Stock analysis dashboard backend: market data, AI analyst reports, screener and blog.

//	@license.name	MIT

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := &logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}
	log, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	// Telemetry is set up with the plain logger; once the OTEL log bridge is
	// running the logger is rebuilt to tee into it.
	ctx := context.Background()
	tel, err := telemetry.Setup(ctx, cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize telemetry", zap.Error(err))
	}
	if tel.Logs.IsEnabled() {
		otelCore := tel.Logs.ZapCore(cfg.Telemetry.ServiceName, logger.ParseLevel(cfg.Log.Level))
		if log, err = logger.New(logCfg, otelCore); err != nil {
			panic("Failed to initialize logger: " + err.Error())
		}
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Stockie backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	// Create GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))

	if cfg.Database.AutoMigrate {
		if err := applyMigrations(&cfg.Database, log); err != nil {
			log.Fatal("Failed to apply migrations", zap.Error(err))
		}
	}

	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		if err := telemetry.RegisterDBTracing(db.DB, cfg.Database.DBName, log); err != nil {
			log.Warn("Database tracing not registered", zap.Error(err))
		}
	}

	analysisRepo := persistence.NewGormAnalysisRepository(db.DB)

	responseCache, err := cache.NewResponseCacheFactory(cfg.Redis, cfg.Cache, cache.WithLogger(log)).CreateCache(ctx)
	if err != nil {
		log.Fatal("Failed to create response cache", zap.Error(err))
	}

	// Upstream clients
	fmpCfg := fmp.NewConfig(cfg.FMP.APIKey)
	fmpCfg.BaseURL = cfg.FMP.BaseURL
	fmpCfg.Timeout = cfg.FMP.Timeout
	fmpCfg.RequestsPerSecond = cfg.FMP.RequestsPerSecond
	fmpCfg.Burst = cfg.FMP.Burst
	fmpClient, err := fmp.NewClient(fmpCfg, fmp.WithLogger(log))
	if err != nil {
		log.Fatal("Failed to create FMP client", zap.Error(err))
	}

	generator, err := llm.NewEinoGenerator(ctx, cfg.LLM, llm.WithLogger(log))
	if err != nil {
		log.Fatal("Failed to create report generator", zap.Error(err))
	}

	// Blog content
	bgCtx, stopBackground := context.WithCancel(ctx)
	defer stopBackground()

	library, err := newBlogLibrary(bgCtx, cfg.Blog, log)
	if err != nil {
		log.Fatal("Failed to initialize blog content", zap.Error(err))
	}
	if err := library.Reload(bgCtx); err != nil {
		log.Fatal("Failed to load blog content", zap.Error(err))
	}
	if cfg.Blog.Source == "s3" {
		go library.Run(bgCtx, cfg.Blog.S3Refresh)
	} else if cfg.Blog.Watch {
		go library.Run(bgCtx, 0)
	}

	// Application services
	marketService := marketapp.NewService(fmpClient, log)
	reportService := analysisapp.NewReportService(analysisRepo, fmpClient, generator,
		analysisapp.WithStaleAfter(cfg.Report.StaleAfter),
		analysisapp.WithSystemPrompt(cfg.Report.SystemPrompt),
		analysisapp.WithLogger(log),
	)
	screenerService := analysisapp.NewScreenerService(analysisRepo)
	blogService := blogapp.NewService(library, cfg.App.BaseURL)

	handlers := router.Handlers{
		Market:   handler.NewMarketHandler(marketService),
		Analysis: handler.NewAnalysisHandler(reportService, screenerService),
		Blog:     handler.NewBlogHandler(blogService),
		System:   handler.NewSystemHandler(db, version),
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	var rateLimiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	var cacheForRoutes cache.ResponseCache
	if cfg.Cache.Enabled {
		cacheForRoutes = responseCache
	}

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders

	securityConfig := middleware.DefaultSecurityConfig()
	securityConfig.HSTSEnabled = cfg.App.Env == "production"

	tracingConfig := middleware.DefaultTracingConfig()
	tracingConfig.ServiceName = cfg.Telemetry.ServiceName
	tracingConfig.Enabled = cfg.Telemetry.Enabled

	profilingConfig := middleware.DefaultProfilingConfig()
	profilingConfig.Enabled = tel.Profiler.IsEnabled()

	engine, err := router.NewEngine(router.EngineConfig{
		Logger:         log,
		Metrics:        tel.API,
		TrustedProxies: cfg.HTTP.TrustedProxies,
		Tracing:        tracingConfig,
		Profiling:      profilingConfig,
		Security:       securityConfig,
		CORS:           corsConfig,
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		MaxBodySize:    cfg.HTTP.MaxBodySize,
		RateLimiter:    rateLimiter,
		CacheControl:   cfg.HTTP.CacheControl,
		Cache:          cacheForRoutes,
		CacheTTL:       cfg.Cache.TTL,
		Auth: middleware.JWTMiddlewareConfig{
			Verifier: auth.NewTokenVerifier(cfg.JWT),
			Disabled: !cfg.JWT.Enabled,
			Logger:   log,
		},
		Swagger: middleware.SwaggerConfig{
			Enabled:    cfg.Swagger.Enabled,
			AllowedIPs: cfg.Swagger.AllowedIPs,
		},
	}, handlers)
	if err != nil {
		log.Fatal("Failed to build HTTP engine", zap.Error(err))
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	stopBackground()
	if rateLimiter != nil {
		rateLimiter.Stop()
	}
	if err := responseCache.Close(); err != nil {
		log.Error("Error closing response cache", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		log.Error("Error closing database", zap.Error(err))
	}
	if err := tel.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down telemetry", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// newBlogLibrary builds the post library over the configured source
func newBlogLibrary(ctx context.Context, cfg config.BlogConfig, log *zap.Logger) (*content.Library, error) {
	var source content.Source
	switch cfg.Source {
	case "s3":
		store, err := storage.NewS3ObjectStorage(ctx, &cfg.S3, storage.WithLogger(log))
		if err != nil {
			return nil, err
		}
		source = content.NewS3Source(store, cfg.S3Prefix)
	default:
		source = content.NewDirSource(cfg.Dir, content.WithDirLogger(log))
	}
	return content.NewLibrary(source, content.WithLibraryLogger(log)), nil
}

// applyMigrations brings the schema up to date on a dedicated connection;
// closing the migrator closes it.
func applyMigrations(cfg *config.DatabaseConfig, log *zap.Logger) error {
	sqlDB, err := migration.Open(cfg)
	if err != nil {
		return err
	}
	m, err := migration.New(sqlDB, cfg.Driver, log)
	if err != nil {
		_ = sqlDB.Close()
		return err
	}
	defer func() {
		_ = m.Close()
	}()
	return m.Up()
}

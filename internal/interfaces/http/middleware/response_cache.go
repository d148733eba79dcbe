package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stockie/backend/internal/infrastructure/cache"
	"github.com/stockie/backend/internal/infrastructure/telemetry"
)

// CacheHeader reports whether a response came from the response cache
const CacheHeader = "X-Cache"

// ResponseCacheConfig configures ResponseCache
type ResponseCacheConfig struct {
	Cache   cache.ResponseCache
	TTL     time.Duration
	Logger  *zap.Logger
	Metrics *telemetry.APIMetrics
}

// cachedResponse is what gets stored per key
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// ResponseCache serves repeated GET requests from cfg.Cache. The key is the
// path plus the query string with parameters sorted, so ?a=1&b=2 and
// ?b=2&a=1 share an entry. Only 2xx responses are stored. Cache failures
// are logged and the request falls through to the handler.
func ResponseCache(cfg ResponseCacheConfig) gin.HandlerFunc {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Cache == nil {
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		key := ResponseCacheKey(c.Request)

		raw, ok, err := cfg.Cache.Get(ctx, key)
		if err != nil {
			cfg.Logger.Warn("Response cache read failed", zap.String("key", key), zap.Error(err))
		}
		if ok {
			var hit cachedResponse
			if err := json.Unmarshal(raw, &hit); err == nil {
				cfg.Metrics.RecordCacheLookup(ctx, true)
				c.Header(CacheHeader, "HIT")
				c.Data(hit.Status, hit.ContentType, hit.Body)
				c.Abort()
				return
			}
			cfg.Logger.Warn("Discarding undecodable cache entry", zap.String("key", key))
		}

		cfg.Metrics.RecordCacheLookup(ctx, false)
		c.Header(CacheHeader, "MISS")
		w := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = w
		c.Next()

		status := w.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}
		value, err := json.Marshal(cachedResponse{
			Status:      status,
			ContentType: w.Header().Get("Content-Type"),
			Body:        w.body.Bytes(),
		})
		if err != nil {
			return
		}
		if err := cfg.Cache.Set(ctx, key, value, cfg.TTL); err != nil {
			cfg.Logger.Warn("Response cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
}

// ResponseCacheKey returns the cache key for r: path, then "?" and the
// sorted query when there is one.
func ResponseCacheKey(r *http.Request) string {
	query := r.URL.Query().Encode()
	if query == "" {
		return r.URL.Path
	}
	return r.URL.Path + "?" + query
}

// bodyRecorder copies everything written to the client
type bodyRecorder struct {
	gin.ResponseWriter
	body bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

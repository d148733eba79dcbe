package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DefaultCacheControl lets the CDN serve a response for a second and keep
// serving it while it revalidates for five minutes.
const DefaultCacheControl = "s-maxage=1, stale-while-revalidate=300"

// CacheControl sets value as the Cache-Control header of successful GET
// responses. Any other status drops the header before it is written.
func CacheControl(value string) gin.HandlerFunc {
	if value == "" {
		value = DefaultCacheControl
	}
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}
		c.Header("Cache-Control", value)
		c.Writer = &cacheControlWriter{ResponseWriter: c.Writer}
		c.Next()
	}
}

type cacheControlWriter struct {
	gin.ResponseWriter
}

func (w *cacheControlWriter) WriteHeader(code int) {
	if code < http.StatusOK || code >= http.StatusMultipleChoices {
		w.Header().Del("Cache-Control")
	}
	w.ResponseWriter.WriteHeader(code)
}

package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/stockie/backend/internal/infrastructure/logger"
	"github.com/stockie/backend/internal/infrastructure/telemetry"
)

// ProcedureTiming logs how long each API procedure took and records it in
// the api.procedure.duration histogram. metrics may be nil.
func ProcedureTiming(base *zap.Logger, metrics *telemetry.APIMetrics) gin.HandlerFunc {
	if base == nil {
		base = zap.NewNop()
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()
		metrics.RecordProcedure(c.Request.Context(), c.Request.Method, route, status, elapsed)

		log := base
		if _, ok := c.Get("logger"); ok {
			log = logger.GetGinLogger(c)
		}
		log.Info(fmt.Sprintf("[API] %s took %dms", c.Request.URL.Path, elapsed.Milliseconds()),
			zap.String("route", route),
			zap.Int("status", status),
		)
	}
}

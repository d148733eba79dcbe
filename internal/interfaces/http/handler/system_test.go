package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSystemRouter(h *SystemHandler) *gin.Engine {
	r := gin.New()
	r.GET("/health", h.Health)
	r.GET("/system/info", h.GetSystemInfo)
	return r
}

func fixedSystemHandler(db Pinger) *SystemHandler {
	h := NewSystemHandler(db, "1.2.3")
	h.now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }
	return h
}

func TestSystemHandler_Health(t *testing.T) {
	tests := []struct {
		name     string
		db       func() Pinger
		status   int
		health   string
		database string
	}{
		{
			name: "database reachable",
			db: func() Pinger {
				p := new(MockPinger)
				p.On("Ping").Return(nil)
				return p
			},
			status:   http.StatusOK,
			health:   "healthy",
			database: "ok",
		},
		{
			name: "database down",
			db: func() Pinger {
				p := new(MockPinger)
				p.On("Ping").Return(errors.New("dial tcp: connection refused"))
				return p
			},
			status:   http.StatusServiceUnavailable,
			health:   "unhealthy",
			database: "error",
		},
		{
			name:     "no database configured",
			db:       func() Pinger { return nil },
			status:   http.StatusOK,
			health:   "healthy",
			database: "disabled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(newSystemRouter(fixedSystemHandler(tt.db())), "/health")

			assert.Equal(t, tt.status, w.Code)
			var resp HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.health, resp.Status)
			assert.Equal(t, tt.database, resp.Database)
			assert.Equal(t, "2025-03-10T12:00:00Z", resp.Time)
		})
	}
}

func TestSystemHandler_GetSystemInfo(t *testing.T) {
	w := get(newSystemRouter(fixedSystemHandler(nil)), "/system/info")

	assert.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]any)
	assert.Equal(t, "Stockie API", data["name"])
	assert.Equal(t, "1.2.3", data["version"])
	assert.NotEmpty(t, data["go_version"])
	assert.NotEmpty(t, data["uptime"])
}

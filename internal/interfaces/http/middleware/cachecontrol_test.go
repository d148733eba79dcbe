package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCacheControl(t *testing.T) {
	router := gin.New()
	router.Use(CacheControl(""))
	router.GET("/ok", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	router.GET("/missing", func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"success": false})
	})
	router.GET("/broken", func(c *gin.Context) {
		c.String(http.StatusBadGateway, "upstream")
	})
	router.POST("/ok", func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"success": true})
	})

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{http.MethodGet, "/ok", DefaultCacheControl},
		{http.MethodGet, "/missing", ""},
		{http.MethodGet, "/broken", ""},
		{http.MethodPost, "/ok", ""},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.want, w.Header().Get("Cache-Control"))
		})
	}
}

func TestCacheControl_CustomValue(t *testing.T) {
	w := httptest.NewRecorder()
	okRouter(CacheControl("no-store")).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

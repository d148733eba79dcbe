package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine http.Handler, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.NotNil(t, r)
	assert.Equal(t, "v1", r.apiVersion)
	assert.Equal(t, "/api/v1", r.BasePath())
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	r := NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "/api/v2", r.BasePath())
}

func TestRouterRegister(t *testing.T) {
	r := NewRouter(gin.New())
	r.Register(NewDomainGroup("a", "/a"), NewDomainGroup("b", "/b"))
	assert.Len(t, r.registrars, 2)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v1"))

	group := NewDomainGroup("test", "/test")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	r.Register(group)
	r.Setup()

	w := serve(engine, http.MethodGet, "/api/v1/test/ping")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestDomainGroup(t *testing.T) {
	t.Run("creates group with name and prefix", func(t *testing.T) {
		g := NewDomainGroup("blogs", "/blogs")
		assert.Equal(t, "blogs", g.Name())
		assert.Equal(t, "/blogs", g.Prefix())
	})

	t.Run("registers GET and POST on the group root", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("analyses", "/analyses")
		g.GET("", func(c *gin.Context) { c.String(http.StatusOK, "list") })
		g.POST("", func(c *gin.Context) { c.String(http.StatusCreated, "created") })
		g.RegisterRoutes(engine.Group("/api/v1"))

		assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/api/v1/analyses").Code)
		assert.Equal(t, http.StatusCreated, serve(engine, http.MethodPost, "/api/v1/analyses").Code)
	})

	t.Run("applies group middleware", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		g.Use(func(c *gin.Context) {
			c.Header("X-Group", "applied")
			c.Next()
		})
		g.GET("/items", func(c *gin.Context) { c.Status(http.StatusOK) })
		g.RegisterRoutes(engine.Group("/api/v1"))

		w := serve(engine, http.MethodGet, "/api/v1/test/items")
		assert.Equal(t, "applied", w.Header().Get("X-Group"))
	})

	t.Run("subgroups inherit prefix and middleware", func(t *testing.T) {
		engine := gin.New()
		parent := NewDomainGroup("assets", "/assets")
		parent.Use(func(c *gin.Context) {
			c.Header("X-Parent", "yes")
			c.Next()
		})
		child := parent.Group("prices", "/:symbol/prices")
		child.GET("/daily", func(c *gin.Context) {
			c.String(http.StatusOK, c.Param("symbol"))
		})
		parent.RegisterRoutes(engine.Group("/api/v1"))

		w := serve(engine, http.MethodGet, "/api/v1/assets/AAPL/prices/daily")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "AAPL", w.Body.String())
		assert.Equal(t, "yes", w.Header().Get("X-Parent"))
	})

	t.Run("per-route handlers run in order", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("test", "/test")
		g.GET("/guarded",
			func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) },
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)
		g.RegisterRoutes(engine.Group(""))

		assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodGet, "/test/guarded").Code)
	})
}

func TestDomainGroup_Routes(t *testing.T) {
	g := NewDomainGroup("assets", "/assets")
	g.GET("/search")
	g.POST("")
	g.Group("fundamentals", "/:symbol/fundamentals").GET("/eps")

	assert.Equal(t, []string{
		"GET /assets/search",
		"POST /assets",
		"GET /assets/:symbol/fundamentals/eps",
	}, g.Routes())
}

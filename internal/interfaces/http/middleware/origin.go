package middleware

import (
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/stockie/backend/internal/interfaces/http/dto"
)

// DefaultAllowedOrigins are the dashboard front-ends allowed to call the API
var DefaultAllowedOrigins = []string{
	"http://localhost:3000",
	"https://thestockie.vercel.app",
	"https://www.thestockie.vercel.app",
	"https://thestockie.com",
	"https://www.thestockie.com",
}

// OriginGuard rejects browser requests whose Origin is not one of allowed.
// Scheme and host (with port) must match exactly. Requests without an Origin
// header (curl, server-to-server) pass, as does everything when allowed is
// empty.
func OriginGuard(allowed []string) gin.HandlerFunc {
	origins := make(map[string]struct{}, len(allowed))
	for _, entry := range allowed {
		if key, ok := originKey(entry); ok {
			origins[key] = struct{}{}
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" || len(allowed) == 0 {
			c.Next()
			return
		}
		if key, ok := originKey(origin); ok {
			if _, found := origins[key]; found {
				c.Next()
				return
			}
		}
		abortWithError(c, dto.ErrCodeUnauthorized, "Origin not allowed")
	}
}

// originKey reduces an origin to lower-cased scheme://host[:port]
func originKey(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return "", false
	}
	return strings.ToLower(u.Scheme + "://" + u.Host), true
}

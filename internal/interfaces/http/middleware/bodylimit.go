package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/stockie/backend/internal/interfaces/http/dto"
)

// BodyLimit answers 413 when a declared Content-Length exceeds maxBytes and
// caps reads of undeclared bodies. A non-positive limit disables the check.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		req := c.Request
		if req.Body == nil || req.Body == http.NoBody {
			c.Next()
			return
		}
		if req.ContentLength > maxBytes {
			abortWithError(c, dto.ErrCodeBodyTooLarge, "Request body exceeds maximum allowed size")
			return
		}
		req.Body = http.MaxBytesReader(c.Writer, req.Body, maxBytes)
		c.Next()
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/stockie/backend/internal/interfaces/http/dto"
)

// abortWithError stops the chain with the standard error envelope for code
func abortWithError(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(dto.GetHTTPStatus(code),
		dto.NewErrorResponseWithRequestID(code, message, c.GetString("request_id")))
}

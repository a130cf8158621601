package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shreeramenterprise/sems_backend/utils"
)

// CorrelationMiddleware tags every request with a correlation id so log
// lines from one request can be stitched together. An incoming
// X-Correlation-Id header is honored, otherwise one is minted.
func CorrelationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cid := c.Request.Header.Get("X-Correlation-Id")
		if cid == "" {
			cid = uuid.NewString()
		}
		c.Writer.Header().Set("X-Correlation-Id", cid)
		c.Request = c.Request.WithContext(utils.SetCorrelationIdInContext(c.Request.Context(), cid))
		c.Next()
	}
}

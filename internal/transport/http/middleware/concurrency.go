package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/semaphore"

	"storefront-api/internal/transport/http/response"
)

// ConcurrencyLimit caps in-flight requests so a burst cannot exhaust the
// database pool behind us.
func ConcurrencyLimit(max int64) gin.HandlerFunc {
	sem := semaphore.NewWeighted(max)
	return func(c *gin.Context) {
		if err := sem.Acquire(c, 1); err != nil {
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, response.Error{Error: "server busy"})
			return
		}
		defer sem.Release(1)
		c.Next()
	}
}

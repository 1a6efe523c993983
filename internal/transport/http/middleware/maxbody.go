package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MaxBodyBytes caps the request body. An oversized read surfaces as an
// *http.MaxBytesError from the handler's bind, which maps it to 413;
// checking c.Err() here would never fire since the request context is
// not cancelled by the reader.
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
	}
}

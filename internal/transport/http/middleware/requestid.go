package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderRequestID is the wire header; ctxKeyRequestID is where the value
// lives inside the gin context. They are distinct on purpose: the header
// name is a protocol detail, the context key an implementation one.
const (
	HeaderRequestID = "X-Request-ID"

	ctxKeyRequestID = "request_id"
)

// RequestID echoes a caller-supplied id or mints a fresh one, so every
// log line and response can be tied back to a single request.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Writer.Header().Set(HeaderRequestID, rid)
		c.Set(ctxKeyRequestID, rid)
		c.Next()
	}
}

// RequestIDFrom returns the id assigned by RequestID, or "" outside it.
func RequestIDFrom(c *gin.Context) string {
	return c.GetString(ctxKeyRequestID)
}

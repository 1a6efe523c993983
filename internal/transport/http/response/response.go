// Package response pins the wire shapes of error bodies. The product and
// user routes answer {"error": ..., "message"?: ...} while the login route
// answers {"message": ..., "error"?: ...}; clients depend on the exact key
// layout of both families, so the asymmetry is kept on purpose.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Error struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// LoginError inverts the key layout of Error.
type LoginError struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func NotFound(c *gin.Context, what string) {
	c.JSON(http.StatusNotFound, Error{Error: what + " not found"})
}

// MissingField names the first absent required field.
func MissingField(c *gin.Context, field string) {
	c.JSON(http.StatusBadRequest, Error{Error: "'" + field + "' is required"})
}

func DatabaseError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Error{Error: "Database error", Message: err.Error()})
}

func LoginDatabaseError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, LoginError{Message: "Database error", Error: err.Error()})
}

func InvalidCredentials(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, LoginError{Message: "Invalid credentials"})
}

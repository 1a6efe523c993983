package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-api/internal/domain"
	"storefront-api/internal/transport/http/response"
	"storefront-api/pkg/utils"
)

type AuthHandler struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewAuthHandler(users domain.UserRepository, l *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, log: l}
}

type loginIn struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Login checks a plaintext password against the stored bcrypt hash.
// Unknown name, wrong password and a malformed stored hash all collapse
// into the same 401 so the response leaks nothing about which one failed.
// No token or session is issued; there is no authenticated follow-up call.
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBindJSON(&in); err != nil {
		response.InvalidCredentials(c)
		return
	}

	u, err := h.users.FindByName(c.Request.Context(), in.Name)
	if err != nil {
		response.LoginDatabaseError(c, err)
		return
	}
	if u == nil || !utils.CheckPassword(in.Password, u.PasswordHash) {
		response.InvalidCredentials(c)
		return
	}

	h.log.Info("login successful", zap.Int64("user_id", u.ID))
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    u,
	})
}

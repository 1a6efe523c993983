package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-api/internal/domain"
	"storefront-api/internal/transport/http/response"
)

// UserHandler serves the read-only user surface. The password hash never
// leaves this service: domain.User tags it json:"-".
type UserHandler struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewUserHandler(users domain.UserRepository, l *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: l}
}

func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.NotFound(c, "User")
		return
	}
	u, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		response.DatabaseError(c, err)
		return
	}
	if u == nil {
		response.NotFound(c, "User")
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

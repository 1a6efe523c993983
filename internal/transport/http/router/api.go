package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"storefront-api/internal/repo"
	"storefront-api/internal/transport/http/handler"
	mdw "storefront-api/internal/transport/http/middleware"
)

// NewAPIEngine wires the full route surface. Paths and response bodies are
// wire-compatible with the service this one replaces, including the
// trailing-slash list route.
func NewAPIEngine(l *zap.Logger, db *gorm.DB) *gin.Engine {
	r := gin.New()

	r.Use(
		mdw.RequestID(),
		ginzap.RecoveryWithZap(l, true),
		cors.Default(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.Metrics(),
		mdw.AccessLog(l),
	)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the API"})
	})
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	products := handler.NewProductHandler(repo.NewProductRepo(db), l)
	users := handler.NewUserHandler(repo.NewUserRepo(db), l)
	auth := handler.NewAuthHandler(repo.NewUserRepo(db), l)

	r.GET("/products", products.List)
	r.GET("/products/", products.List)
	r.GET("/products/:id", products.Get)
	r.POST("/products", products.Create)
	r.PUT("/products/:id", products.Update)
	r.DELETE("/products/:id", products.Delete)

	r.GET("/users", users.List)
	r.GET("/users/:id", users.Get)

	r.POST("/login", auth.Login)

	return r
}

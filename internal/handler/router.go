package handler

import (
	"net/http"

	"go-gin-checkout/config"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	Cart    *CartHandler
	Ticket  *TicketHandler
	Product *ProductHandler
	User    *UserHandler
}

// NewRouter 組裝路由；metrics 為 nil 時不掛 /metrics
func NewRouter(authCfg config.AuthConfig, h Handlers, metrics http.Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics))
	}

	api := r.Group("/api/v1")
	authed := api.Group("", Auth(authCfg))
	admin := authed.Group("", RequireAdmin())

	h.User.RegisterRoutes(api, authed)
	h.Product.RegisterRoutes(api, admin)
	h.Cart.RegisterRoutes(authed)
	h.Ticket.RegisterRoutes(authed, admin)
	return r
}

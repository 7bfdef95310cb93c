package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the order routes. All of them require an
// authenticated user; ownership is enforced in the service.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/orders")
	group.Use(authMiddleware)
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.GET("/:id", h.Get)
	}
}

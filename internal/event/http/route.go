package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the event routes. Reads are public so the
// marketing pages can consume them; every mutation goes through both
// the auth and admin middleware.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/events")

	// === Public Routes ===
	group.GET("", h.List)
	group.GET("/slug/:slug", h.GetBySlug)
	group.GET("/:id", h.Get)

	// === Administration Routes (Admin Email Only) ===
	adminGroup := group.Group("")
	adminGroup.Use(authMiddleware, adminMiddleware)
	{
		adminGroup.POST("", h.Create)
		adminGroup.PUT("/:id", h.Update)
		adminGroup.DELETE("/:id", h.Delete)
	}
}

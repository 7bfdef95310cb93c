package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the media routes. Uploads are admin-only.
func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/media")
	group.Use(authMiddleware, adminMiddleware)
	{
		group.POST("/images", h.UploadImage)
	}
}

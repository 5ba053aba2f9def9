package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, adminMiddleware gin.HandlerFunc) {
	admin := g.Group("/admin/config")
	admin.Use(adminMiddleware)
	{
		admin.GET("", h.Get)
		admin.PUT("", h.Update)
	}
}

package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers venue routes, including admin approval endpoints.
func RegisterRoutes(g *gin.RouterGroup, h *VenueHandler, optionalAuthMiddleware, authMiddleware, ownerMiddleware, adminMiddleware gin.HandlerFunc) {
	venues := g.Group("/venues")
	{
		venues.GET("", h.List)
		venues.GET("/mine", authMiddleware, ownerMiddleware, h.ListMine)
		venues.GET("/:id", optionalAuthMiddleware, h.Get)
		venues.POST("", authMiddleware, ownerMiddleware, h.Create)
		venues.PATCH("/:id", authMiddleware, ownerMiddleware, h.Update)
		venues.DELETE("/:id", authMiddleware, ownerMiddleware, h.Delete)
	}

	admin := g.Group("/admin/venues")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.GET("/pending", h.ListPending)
		admin.PATCH("/:id/approve", h.Approve)
		admin.PATCH("/:id/reject", h.Reject)
	}
}

package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers booking routes. The slot availability read is
// public; everything else requires authentication.
func RegisterRoutes(g *gin.RouterGroup, h *BookingHandler, authMiddleware, ownerMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")
	{
		group.GET("/slots", h.Slots)

		group.GET("", authMiddleware, h.List)
		group.GET("/:id", authMiddleware, h.Get)
		group.POST("", authMiddleware, h.Create)
		group.PATCH("/:id/status", authMiddleware, h.UpdateStatus)
	}

	g.GET("/owner/bookings", authMiddleware, ownerMiddleware, h.ListForOwner)
}

package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers court routes. Public reads live under /venues and
// /courts; writes require an owner (or admin) account.
func RegisterRoutes(g *gin.RouterGroup, h *CourtHandler, authMiddleware, ownerMiddleware gin.HandlerFunc) {
	g.GET("/venues/:id/courts", h.ListByVenue)

	courts := g.Group("/courts")
	{
		courts.GET("/:id", h.Get)
		courts.POST("", authMiddleware, ownerMiddleware, h.Create)
		courts.PATCH("/:id", authMiddleware, ownerMiddleware, h.Update)
		courts.DELETE("/:id", authMiddleware, ownerMiddleware, h.Delete)
	}

	g.GET("/owner/courts", authMiddleware, ownerMiddleware, h.ListMine)
}

package http

import "github.com/gin-gonic/gin"

// RegisterRoutes registers file routes. Reads are public since venue photos
// are shown on unauthenticated pages; uploads require a logged-in user.
func RegisterRoutes(g *gin.RouterGroup, h *FileHandler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/files")

	group.POST("", authMiddleware, h.Upload)
	group.GET("/:id", h.ServeFile)
	group.GET("/:id/thumbnail", h.ServeThumbnail)
}

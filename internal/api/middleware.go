package api

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/quickcourt/quickcourt-backend/internal/auth"
	"github.com/quickcourt/quickcourt-backend/internal/user"
)

// RequireRole ensures the authenticated user holds one of the given roles.
// The role comes from the JWT claims, so it MUST be used after
// auth.AuthRequired.
func RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := user.Role(auth.GetUserRole(c))
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if !slices.Contains(roles, role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden: insufficient role"})
			return
		}

		c.Next()
	}
}

// RequireAdmin restricts a route to platform admins.
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(user.RoleAdmin)
}

// RequireOwner restricts a route to facility owners. Admins pass too so
// they can manage listings on an owner's behalf.
func RequireOwner() gin.HandlerFunc {
	return RequireRole(user.RoleOwner, user.RoleAdmin)
}

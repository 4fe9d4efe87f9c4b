package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-management-server/database"
	"hotel-management-server/models"
	"hotel-management-server/utils"
)

// AuthCookieName is the cookie carrying the session token for browser clients.
// API clients may send the same token as a Bearer header instead.
const AuthCookieName = "auth_token"

// unauthorized writes the single unauthorized response used for every gated
// route, whether the session is missing, invalid, or the role is not
// permitted.
func unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{
		"error":   "Unauthorized",
		"message": "You are not authorized to access this resource",
	})
	c.Abort()
}

// tokenFromRequest extracts the session token from the Authorization header
// or the auth cookie.
func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString != authHeader {
			return tokenString
		}
		return ""
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil {
		return cookie
	}
	return ""
}

// AuthMiddleware validates the session token, loads the user and attaches the
// identity to the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			unauthorized(c)
			return
		}

		claims, err := utils.VerifyToken(tokenString)
		if err != nil {
			unauthorized(c)
			return
		}

		// Load the user so role changes and deactivation take effect on the
		// next request, not at token expiry.
		var user models.User
		if err := database.DB.First(&user, claims.UserID).Error; err != nil {
			unauthorized(c)
			return
		}

		if !user.IsActive {
			unauthorized(c)
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Set("role", user.Role)

		c.Next()
	}
}

// RequireRoles restricts a route to users whose role tag is in the permitted
// set. Must run after AuthMiddleware. A role outside the set gets the same
// unauthorized response as a missing session.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		unauthorized(c)
	}
}

// CurrentUser returns the authenticated user attached by AuthMiddleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}

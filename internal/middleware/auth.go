package middleware

import (
	"net/http"
	"strings"

	"gramseva/config"
	"gramseva/internal/auth"
	"gramseva/internal/domain"

	"github.com/gin-gonic/gin"
)

// TokenCookie is the cookie the admin pages use; the API sends the same
// token as a Bearer header.
const TokenCookie = "gramseva_token"

func tokenFrom(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}

// AuthRequired validates the JWT and sets user_id, email and role in the
// request context.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFrom(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		claims, err := auth.ParseToken(cfg, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// OptionalAuth sets caller identity when a valid token is present but
// never rejects. Public read endpoints use it so the gallery can widen
// its result set for staff callers.
func OptionalAuth(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := tokenFrom(c); token != "" {
			if claims, err := auth.ParseToken(cfg, token); err == nil {
				c.Set("user_id", claims.UserID)
				c.Set("email", claims.Email)
				c.Set("role", claims.Role)
			}
		}
		c.Next()
	}
}

// StaffRequired gates an operation to staff callers. Every mutating
// route is behind this; the policy is deny by default.
func StaffRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role.(string) != domain.RoleStaff {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user ID from context (zero when
// the caller is anonymous).
func GetUserID(c *gin.Context) uint {
	v, _ := c.Get("user_id")
	if v == nil {
		return 0
	}
	return v.(uint)
}

// IsStaff reports whether the current caller carries the staff role.
func IsStaff(c *gin.Context) bool {
	role, exists := c.Get("role")
	return exists && role.(string) == domain.RoleStaff
}

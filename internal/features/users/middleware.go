package users

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/publicvoice/api/internal/config"
	"github.com/publicvoice/api/internal/pkg/jwt"
	"github.com/publicvoice/api/internal/pkg/response"
)

// RequireAuth validates the bearer token and loads the authenticated user
// into the context under "user" (plus "userID" for logging).
func RequireAuth(repo *Repository, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "Invalid authorization format", "INVALID_AUTH_FORMAT")
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(parts[1], cfg.JWTSecret)
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token", "INVALID_TOKEN")
			c.Abort()
			return
		}

		user, err := repo.GetUserByID(c.Request.Context(), claims.UserID)
		if err != nil {
			response.Unauthorized(c, "User not found", "USER_NOT_FOUND")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("userID", user.ID.Hex())
		c.Next()
	}
}

// OptionalAuth loads the user when a valid token is present but lets
// anonymous requests continue.
func OptionalAuth(repo *Repository, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := jwt.ValidateToken(parts[1], cfg.JWTSecret)
		if err != nil {
			c.Next()
			return
		}

		if user, err := repo.GetUserByID(c.Request.Context(), claims.UserID); err == nil {
			c.Set("user", user)
			c.Set("userID", user.ID.Hex())
		}

		c.Next()
	}
}

// RequireAdmin must run after RequireAuth; rejects non-admin callers.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, exists := c.Get("user")
		if !exists {
			response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		if !user.(*User).IsAdmin() {
			response.Forbidden(c, "Administrator access required", "ADMIN_ONLY")
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user from the context, or nil.
func CurrentUser(c *gin.Context) *User {
	if user, exists := c.Get("user"); exists {
		return user.(*User)
	}
	return nil
}

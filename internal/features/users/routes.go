package users

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/publicvoice/api/internal/config"
	"github.com/publicvoice/api/internal/pkg/ratelimit"
)

// RegisterRoutes registers the authentication routes
func RegisterRoutes(router *gin.RouterGroup, repo *Repository, cfg *config.Config) {
	handler := NewHandler(repo, cfg)

	// Brute-force protection on credential endpoints
	loginLimiter := ratelimit.New(10, time.Minute)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", handler.Register)
		authGroup.POST("/login", ratelimit.Middleware(loginLimiter), handler.Login)
		authGroup.POST("/google", handler.GoogleAuth)
		authGroup.GET("/me", RequireAuth(repo, cfg), handler.Me)
	}
}

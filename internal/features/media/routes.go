package media

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/publicvoice/api/internal/pkg/ratelimit"
)

// RegisterRoutes mounts the media upload routes
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	uploadLimiter := ratelimit.New(20, time.Minute)

	uploads := router.Group("/media", auth, ratelimit.UserBasedMiddleware(uploadLimiter))
	{
		uploads.POST("/images", handler.UploadImage)
		uploads.POST("/videos", handler.UploadVideo)
	}
}

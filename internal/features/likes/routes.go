package likes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/publicvoice/api/internal/pkg/ratelimit"
)

// RegisterRoutes mounts like routes under the complaints resource
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	likeLimiter := ratelimit.New(30, time.Minute)

	likes := router.Group("/complaints/:id/like", auth)
	{
		likes.POST("", ratelimit.UserBasedMiddleware(likeLimiter), handler.LikeComplaint)
		likes.GET("", handler.LikeStatus)
	}
}

package adminreplies

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public reply lookups
func RegisterRoutes(router *gin.RouterGroup, handler *Handler) {
	router.GET("/complaints/:id/reply", handler.GetReplyForComplaint)
	router.GET("/complaints/:id/replies", handler.ListRepliesForComplaint)
}

// RegisterAdminRoutes mounts the reply-posting endpoint. The group is
// expected to already carry the auth and admin-role middleware.
func RegisterAdminRoutes(admin *gin.RouterGroup, handler *Handler) {
	admin.POST("/complaints/:id/reply", handler.PostReply)
}

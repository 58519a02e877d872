package complaints

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public complaint routes.
// The status transition endpoint is admin-only and mounted separately
// via RegisterAdminRoutes.
func RegisterRoutes(router *gin.RouterGroup, handler *Handler, auth, optionalAuth gin.HandlerFunc) {
	complaints := router.Group("/complaints")
	{
		complaints.GET("", optionalAuth, handler.ListComplaints)
		complaints.GET("/:id", optionalAuth, handler.GetComplaint)

		complaints.POST("", auth, handler.CreateComplaint)
		complaints.GET("/mine", auth, handler.MyComplaints)
		complaints.DELETE("/:id", auth, handler.DeleteComplaint)
		complaints.POST("/:id/comments", auth, handler.AddComment)
	}
}

// RegisterAdminRoutes mounts the workflow transition endpoint. The group is
// expected to already carry the auth and admin-role middleware.
func RegisterAdminRoutes(admin *gin.RouterGroup, handler *Handler) {
	admin.PATCH("/complaints/:id/status", handler.TransitionStatus)
}

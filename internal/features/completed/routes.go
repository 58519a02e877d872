package completed

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public completed-complaints listing
func RegisterRoutes(router *gin.RouterGroup, handler *Handler) {
	router.GET("/completed-complaints", handler.ListCompleted)
}

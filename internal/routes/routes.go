package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/publicvoice/api/internal/config"
	"github.com/publicvoice/api/internal/features/adminreplies"
	"github.com/publicvoice/api/internal/features/complaints"
	"github.com/publicvoice/api/internal/features/completed"
	"github.com/publicvoice/api/internal/features/likes"
	"github.com/publicvoice/api/internal/features/media"
	"github.com/publicvoice/api/internal/features/users"
	"github.com/publicvoice/api/internal/pkg/cloudinary"
	"github.com/publicvoice/api/internal/pkg/logger"
)

// Setup wires every feature under /api/v1
func Setup(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	usersRepo := users.NewRepository(db)
	complaintsRepo := complaints.NewRepository(db)
	likesRepo := likes.NewRepository(db)
	repliesRepo := adminreplies.NewRepository(db)

	auth := users.RequireAuth(usersRepo, cfg)
	optionalAuth := users.OptionalAuth(usersRepo, cfg)

	complaintsHandler := complaints.NewHandler(complaintsRepo, usersRepo, complaints.PermissivePolicy(), likesRepo)
	likesHandler := likes.NewHandler(likesRepo, complaintsRepo)
	repliesHandler := adminreplies.NewHandler(repliesRepo, complaintsRepo)
	completedHandler := completed.NewHandler(completed.NewService(complaintsRepo, repliesRepo))

	v1 := router.Group("/api/v1")

	users.RegisterRoutes(v1, usersRepo, cfg)
	complaints.RegisterRoutes(v1, complaintsHandler, auth, optionalAuth)
	likes.RegisterRoutes(v1, likesHandler, auth)
	adminreplies.RegisterRoutes(v1, repliesHandler)
	completed.RegisterRoutes(v1, completedHandler)

	admin := v1.Group("/admin", auth, users.RequireAdmin())
	complaints.RegisterAdminRoutes(admin, complaintsHandler)
	adminreplies.RegisterAdminRoutes(admin, repliesHandler)

	if cfg.CloudinaryCloudName != "" {
		uploader, err := cloudinary.NewService(
			cfg.CloudinaryCloudName,
			cfg.CloudinaryAPIKey,
			cfg.CloudinaryAPISecret,
			"publicvoice",
		)
		if err != nil {
			logger.Warn("cloudinary disabled: %v", err)
			return
		}
		media.RegisterRoutes(v1, media.NewHandler(uploader), auth)
	} else {
		logger.Info("cloudinary not configured, media uploads disabled")
	}
}

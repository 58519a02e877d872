package likes

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/publicvoice/api/internal/features/users"
	"github.com/publicvoice/api/internal/pkg/logger"
	"github.com/publicvoice/api/internal/pkg/response"
	apperrors "github.com/publicvoice/api/pkg/errors"
)

// Ledger is the like-ledger surface the handler needs.
type Ledger interface {
	CreateLike(ctx context.Context, complaintID, userID primitive.ObjectID) error
	DeleteLike(ctx context.Context, complaintID, userID primitive.ObjectID) error
	HasLiked(ctx context.Context, complaintID, userID primitive.ObjectID) (bool, error)
	CountForComplaint(ctx context.Context, complaintID primitive.ObjectID) (int64, error)
}

// Counter mirrors the ledger onto the complaint's denormalized counter.
type Counter interface {
	IncrementLikeCount(ctx context.Context, id primitive.ObjectID, delta int) (int, error)
}

// Handler handles like HTTP requests
type Handler struct {
	ledger  Ledger
	counter Counter
}

func NewHandler(ledger Ledger, counter Counter) *Handler {
	return &Handler{
		ledger:  ledger,
		counter: counter,
	}
}

// LikeComplaint godoc
// @Summary Like a complaint
// @Description Each user may like a complaint at most once. A repeat like
// @Description returns 409 and leaves the counter untouched.
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Success 200 {object} response.SuccessResponse{data=LikeResult}
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /complaints/{id}/like [post]
func (h *Handler) LikeComplaint(c *gin.Context) {
	currentUser := users.CurrentUser(c)
	if currentUser == nil {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	complaintID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid complaint ID format", "INVALID_ID")
		return
	}

	// Insert into the ledger first. The unique index serializes racing
	// likes: exactly one insert wins, every loser gets a duplicate key.
	if err := h.ledger.CreateLike(c.Request.Context(), complaintID, currentUser.ID); err != nil {
		if errors.Is(err, apperrors.ErrAlreadyLiked) {
			response.Conflict(c, "You have already liked this complaint", "ALREADY_LIKED")
			return
		}
		response.InternalServerError(c, "Failed to record like", "DATABASE_ERROR")
		return
	}

	count, err := h.counter.IncrementLikeCount(c.Request.Context(), complaintID, 1)
	if err != nil {
		// The ledger record points at nothing; take it back out.
		if cleanupErr := h.ledger.DeleteLike(c.Request.Context(), complaintID, currentUser.ID); cleanupErr != nil {
			logger.Error("failed to roll back like for missing complaint %s: %v", complaintID.Hex(), cleanupErr)
		}

		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Complaint not found", "COMPLAINT_NOT_FOUND")
			return
		}
		response.InternalServerError(c, "Failed to update like count", "DATABASE_ERROR")
		return
	}

	response.Success(c, LikeResult{ComplaintID: complaintID, LikeCount: count})
}

// LikeStatus godoc
// @Summary Whether the current user liked a complaint
// @Description Also returns the authoritative ledger count for the complaint.
// @Tags likes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Success 200 {object} response.SuccessResponse
// @Router /complaints/{id}/like [get]
func (h *Handler) LikeStatus(c *gin.Context) {
	currentUser := users.CurrentUser(c)
	if currentUser == nil {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	complaintID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid complaint ID format", "INVALID_ID")
		return
	}

	liked, err := h.ledger.HasLiked(c.Request.Context(), complaintID, currentUser.ID)
	if err != nil {
		response.InternalServerError(c, "Failed to check like status", "DATABASE_ERROR")
		return
	}

	count, err := h.ledger.CountForComplaint(c.Request.Context(), complaintID)
	if err != nil {
		response.InternalServerError(c, "Failed to count likes", "DATABASE_ERROR")
		return
	}

	response.Success(c, gin.H{"liked": liked, "likeCount": count})
}

package adminreplies

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/publicvoice/api/internal/features/complaints"
	"github.com/publicvoice/api/internal/features/users"
	"github.com/publicvoice/api/internal/pkg/response"
)

// Handler handles admin reply HTTP requests
type Handler struct {
	repo           *Repository
	complaintsRepo *complaints.Repository
}

func NewHandler(repo *Repository, complaintsRepo *complaints.Repository) *Handler {
	return &Handler{
		repo:           repo,
		complaintsRepo: complaintsRepo,
	}
}

// PostReply godoc
// @Summary Post an official reply to a complaint
// @Description Replying does not move the complaint through the workflow;
// @Description status changes go through the status endpoint.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param request body PostReplyRequest true "Reply"
// @Success 201 {object} response.SuccessResponse{data=AdminReply}
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /admin/complaints/{id}/reply [post]
func (h *Handler) PostReply(c *gin.Context) {
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

	var req PostReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	if err := ValidatePostReplyRequest(&req); err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	exists, err := h.complaintsRepo.Exists(c.Request.Context(), complaintID)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch complaint", "DATABASE_ERROR")
		return
	}
	if !exists {
		response.NotFound(c, "Complaint not found", "COMPLAINT_NOT_FOUND")
		return
	}

	reply := &AdminReply{
		ComplaintID: complaintID,
		AdminID:     currentUser.ID,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
	}

	if err := h.repo.CreateReply(c.Request.Context(), reply); err != nil {
		response.InternalServerError(c, "Failed to create reply", "DATABASE_ERROR")
		return
	}

	response.Created(c, reply)
}

// ListRepliesForComplaint godoc
// @Summary Full reply history for a complaint
// @Tags complaints
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 200 {object} response.SuccessResponse{data=[]AdminReply}
// @Router /complaints/{id}/replies [get]
func (h *Handler) ListRepliesForComplaint(c *gin.Context) {
	complaintID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid complaint ID format", "INVALID_ID")
		return
	}

	replies, err := h.repo.ListForComplaint(c.Request.Context(), complaintID)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch replies", "DATABASE_ERROR")
		return
	}

	response.Success(c, replies)
}

// GetReplyForComplaint godoc
// @Summary Latest official reply for a complaint
// @Description Returns data null when the complaint has no reply yet.
// @Tags complaints
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 200 {object} response.SuccessResponse{data=AdminReply}
// @Router /complaints/{id}/reply [get]
func (h *Handler) GetReplyForComplaint(c *gin.Context) {
	complaintID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid complaint ID format", "INVALID_ID")
		return
	}

	reply, err := h.repo.LatestForComplaint(c.Request.Context(), complaintID)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch reply", "DATABASE_ERROR")
		return
	}

	response.Success(c, reply)
}

package complaints

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/publicvoice/api/internal/features/users"
	"github.com/publicvoice/api/internal/pkg/logger"
	"github.com/publicvoice/api/internal/pkg/pagination"
	"github.com/publicvoice/api/internal/pkg/response"
	apperrors "github.com/publicvoice/api/pkg/errors"
)

// LikeLedger purges per-user like records when their complaint goes away.
type LikeLedger interface {
	DeleteByComplaint(ctx context.Context, complaintID primitive.ObjectID) error
}

// Handler handles complaint HTTP requests
type Handler struct {
	repo      *Repository
	usersRepo *users.Repository
	policy    TransitionPolicy
	likes     LikeLedger
}

// NewHandler creates a complaint handler governed by the given transition policy.
// likes may be nil when no ledger cleanup is wanted.
func NewHandler(repo *Repository, usersRepo *users.Repository, policy TransitionPolicy, likes LikeLedger) *Handler {
	return &Handler{
		repo:      repo,
		usersRepo: usersRepo,
		policy:    policy,
		likes:     likes,
	}
}

// CreateComplaint godoc
// @Summary File a new complaint
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateComplaintRequest true "Complaint"
// @Success 201 {object} response.SuccessResponse{data=Complaint}
// @Failure 422 {object} response.ErrorResponse
// @Router /complaints [post]
func (h *Handler) CreateComplaint(c *gin.Context) {
	currentUser := users.CurrentUser(c)
	if currentUser == nil {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	var req CreateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	if err := ValidateCreateComplaintRequest(&req); err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	complaint := &Complaint{
		AuthorID: currentUser.ID,
		Title:    req.Title,
		Content:  req.Content,
		Media:    req.Media,
		Location: req.Location,
		Category: req.Category,
	}

	if err := h.repo.CreateComplaint(c.Request.Context(), complaint); err != nil {
		response.InternalServerError(c, "Failed to create complaint", "DATABASE_ERROR")
		return
	}

	response.Created(c, complaint)
}

// ListComplaints godoc
// @Summary Public complaint feed
// @Tags complaints
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Items per page (default 20, max 100)"
// @Success 200 {object} response.PaginatedResponse{data=[]ComplaintResponse}
// @Router /complaints [get]
func (h *Handler) ListComplaints(c *gin.Context) {
	h.listComplaints(c, nil)
}

// MyComplaints godoc
// @Summary Complaints filed by the current user
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.PaginatedResponse{data=[]ComplaintResponse}
// @Router /complaints/mine [get]
func (h *Handler) MyComplaints(c *gin.Context) {
	currentUser := users.CurrentUser(c)
	if currentUser == nil {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	h.listComplaints(c, &currentUser.ID)
}

func (h *Handler) listComplaints(c *gin.Context, authorID *primitive.ObjectID) {
	page, limit := pagination.ParseQuery(c.Query("page"), c.Query("limit"))

	list, total, err := h.repo.ListComplaints(c.Request.Context(), authorID, page, limit)
	if err != nil {
		response.InternalServerError(c, "Failed to fetch complaints", "DATABASE_ERROR")
		return
	}

	response.Paginated(c, h.resolveAuthors(c, list), total, limit, page)
}

// resolveAuthors joins each complaint with its author's display identity.
// A missing or failed lookup leaves Author nil rather than failing the list.
func (h *Handler) resolveAuthors(c *gin.Context, list []Complaint) []ComplaintResponse {
	idSet := make(map[primitive.ObjectID]struct{}, len(list))
	var ids []primitive.ObjectID
	for _, complaint := range list {
		if _, seen := idSet[complaint.AuthorID]; !seen {
			idSet[complaint.AuthorID] = struct{}{}
			ids = append(ids, complaint.AuthorID)
		}
	}

	authors, err := h.usersRepo.GetUsersByIDs(c.Request.Context(), ids)
	profiles := make(map[primitive.ObjectID]users.PublicProfile, len(authors))
	if err == nil {
		for i := range authors {
			profiles[authors[i].ID] = authors[i].ToPublicProfile()
		}
	}

	result := make([]ComplaintResponse, 0, len(list))
	for _, complaint := range list {
		item := ComplaintResponse{Complaint: complaint}
		if profile, ok := profiles[complaint.AuthorID]; ok {
			item.Author = &profile
		}
		result = append(result, item)
	}

	return result
}

// GetComplaint godoc
// @Summary Get one complaint
// @Tags complaints
// @Produce json
// @Param id path string true "Complaint ID"
// @Success 200 {object} response.SuccessResponse{data=ComplaintResponse}
// @Failure 404 {object} response.ErrorResponse
// @Router /complaints/{id} [get]
func (h *Handler) GetComplaint(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid complaint ID format", "INVALID_ID")
		return
	}

	complaint, err := h.repo.GetComplaintByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Complaint not found", "COMPLAINT_NOT_FOUND")
			return
		}
		response.InternalServerError(c, "Failed to fetch complaint", "DATABASE_ERROR")
		return
	}

	resolved := h.resolveAuthors(c, []Complaint{*complaint})
	response.Success(c, resolved[0])
}

// DeleteComplaint godoc
// @Summary Delete a complaint
// @Description Only the author or an administrator may delete. Comments go
// @Description with the complaint; an existing admin reply is left dangling.
// @Tags complaints
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Success 200 {object} response.SuccessResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /complaints/{id} [delete]
func (h *Handler) DeleteComplaint(c *gin.Context) {
	currentUser := users.CurrentUser(c)
	if currentUser == nil {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid complaint ID format", "INVALID_ID")
		return
	}

	complaint, err := h.repo.GetComplaintByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Complaint not found", "COMPLAINT_NOT_FOUND")
			return
		}
		response.InternalServerError(c, "Failed to fetch complaint", "DATABASE_ERROR")
		return
	}

	if !complaint.IsAuthoredBy(currentUser.ID) && !currentUser.IsAdmin() {
		response.Forbidden(c, "Only the author or an administrator may delete", "DELETE_FORBIDDEN")
		return
	}

	if err := h.repo.DeleteComplaint(c.Request.Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Complaint not found", "COMPLAINT_NOT_FOUND")
			return
		}
		response.InternalServerError(c, "Failed to delete complaint", "DATABASE_ERROR")
		return
	}

	if h.likes != nil {
		if err := h.likes.DeleteByComplaint(c.Request.Context(), id); err != nil {
			logger.Warn("failed to purge like records for complaint %s: %v", id.Hex(), err)
		}
	}

	response.Success(c, gin.H{"deleted": true})
}

// AddComment godoc
// @Summary Comment on a complaint
// @Tags complaints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param request body AddCommentRequest true "Comment"
// @Success 201 {object} response.SuccessResponse{data=Comment}
// @Failure 404 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Router /complaints/{id}/comments [post]
func (h *Handler) AddComment(c *gin.Context) {
	currentUser := users.CurrentUser(c)
	if currentUser == nil {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid complaint ID format", "INVALID_ID")
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	if err := ValidateAddCommentRequest(&req); err != nil {
		response.ValidationError(c, err.Error(), "VALIDATION_FAILED")
		return
	}

	comment := &Comment{
		AuthorID: currentUser.ID,
		Text:     req.Text,
	}

	if err := h.repo.AddComment(c.Request.Context(), id, comment); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Complaint not found", "COMPLAINT_NOT_FOUND")
			return
		}
		response.InternalServerError(c, "Failed to add comment", "DATABASE_ERROR")
		return
	}

	response.Created(c, comment)
}

// TransitionStatus godoc
// @Summary Move a complaint through the workflow
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Complaint ID"
// @Param request body TransitionStatusRequest true "Target status"
// @Success 200 {object} response.SuccessResponse{data=Complaint}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /admin/complaints/{id}/status [patch]
func (h *Handler) TransitionStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid complaint ID format", "INVALID_ID")
		return
	}

	var req TransitionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request format", "INVALID_JSON")
		return
	}

	if !IsKnownStatus(req.Status) {
		response.BadRequest(c, "Status must be one of: Pending, In Progress, Rejected, Completed", "INVALID_STATUS")
		return
	}

	complaint, err := h.repo.GetComplaintByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Complaint not found", "COMPLAINT_NOT_FOUND")
			return
		}
		response.InternalServerError(c, "Failed to fetch complaint", "DATABASE_ERROR")
		return
	}

	if !h.policy.CanTransition(complaint.Status, req.Status) {
		response.Conflict(c, "Transition not allowed by workflow policy", "TRANSITION_NOT_ALLOWED")
		return
	}

	updated, err := h.repo.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			response.NotFound(c, "Complaint not found", "COMPLAINT_NOT_FOUND")
			return
		}
		response.InternalServerError(c, "Failed to update status", "DATABASE_ERROR")
		return
	}

	response.Success(c, updated)
}

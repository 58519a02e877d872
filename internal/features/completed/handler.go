package completed

import (
	"github.com/gin-gonic/gin"

	"github.com/publicvoice/api/internal/pkg/response"
)

// Handler handles completed-complaint HTTP requests
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ListCompleted godoc
// @Summary Completed complaints with their official replies
// @Tags complaints
// @Produce json
// @Success 200 {object} response.SuccessResponse{data=[]CompletedComplaint}
// @Router /completed-complaints [get]
func (h *Handler) ListCompleted(c *gin.Context) {
	list, err := h.service.ListCompleted(c.Request.Context())
	if err != nil {
		response.InternalServerError(c, "Failed to fetch completed complaints", "DATABASE_ERROR")
		return
	}

	response.Success(c, list)
}

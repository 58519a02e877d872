package media

import (
	"github.com/gin-gonic/gin"

	"github.com/publicvoice/api/internal/pkg/cloudinary"
	"github.com/publicvoice/api/internal/pkg/response"
)

// Handler handles media upload HTTP requests
type Handler struct {
	uploader *cloudinary.Service
}

func NewHandler(uploader *cloudinary.Service) *Handler {
	return &Handler{uploader: uploader}
}

// UploadImage godoc
// @Summary Upload a complaint image
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 201 {object} response.SuccessResponse{data=cloudinary.UploadResult}
// @Failure 422 {object} response.ErrorResponse
// @Router /media/images [post]
func (h *Handler) UploadImage(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File is required", "FILE_REQUIRED")
		return
	}

	if err := cloudinary.ValidateImageFile(header); err != nil {
		response.ValidationError(c, err.Error(), "INVALID_FILE")
		return
	}

	file, err := header.Open()
	if err != nil {
		response.InternalServerError(c, "Failed to read file", "FILE_READ_ERROR")
		return
	}
	defer file.Close()

	result, err := h.uploader.UploadImage(c.Request.Context(), file, header.Filename)
	if err != nil {
		response.InternalServerError(c, "Failed to upload image", "UPLOAD_FAILED")
		return
	}

	response.Created(c, result)
}

// UploadVideo godoc
// @Summary Upload a complaint video
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Video file"
// @Success 201 {object} response.SuccessResponse{data=cloudinary.UploadResult}
// @Failure 422 {object} response.ErrorResponse
// @Router /media/videos [post]
func (h *Handler) UploadVideo(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File is required", "FILE_REQUIRED")
		return
	}

	if err := cloudinary.ValidateVideoFile(header); err != nil {
		response.ValidationError(c, err.Error(), "INVALID_FILE")
		return
	}

	file, err := header.Open()
	if err != nil {
		response.InternalServerError(c, "Failed to read file", "FILE_READ_ERROR")
		return
	}
	defer file.Close()

	result, err := h.uploader.UploadVideo(c.Request.Context(), file, header.Filename)
	if err != nil {
		response.InternalServerError(c, "Failed to upload video", "UPLOAD_FAILED")
		return
	}

	response.Created(c, result)
}

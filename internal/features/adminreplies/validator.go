package adminreplies

import (
	"errors"
	"strings"

	"github.com/publicvoice/api/internal/pkg/validator"
)

const maxDescriptionLength = 5000

func ValidatePostReplyRequest(req *PostReplyRequest) error {
	req.Description = strings.TrimSpace(req.Description)

	if req.Description == "" {
		return errors.New("description is required")
	}

	if len(req.Description) > maxDescriptionLength {
		return errors.New("description must be 5000 characters or less")
	}

	req.ImageURL = strings.TrimSpace(req.ImageURL)
	if req.ImageURL != "" && !validator.IsValidURL(req.ImageURL) {
		return errors.New("imageUrl must be a valid http(s) URL")
	}

	req.VideoURL = strings.TrimSpace(req.VideoURL)
	if req.VideoURL != "" && !validator.IsValidURL(req.VideoURL) {
		return errors.New("videoUrl must be a valid http(s) URL")
	}

	return nil
}

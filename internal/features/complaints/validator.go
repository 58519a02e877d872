package complaints

import (
	"errors"
	"strings"

	"github.com/publicvoice/api/internal/pkg/validator"
)

const maxCommentLength = 1000

func ValidateCreateComplaintRequest(req *CreateComplaintRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)

	if req.Content == "" {
		return errors.New("content is required")
	}

	if req.Category == "" {
		req.Category = CategoryOthers
	}
	if !IsKnownCategory(req.Category) {
		return errors.New("category must be one of: Electric, Water, Social Problem, Drainage, Air, Others")
	}

	for i := range req.Media {
		if err := validateMedia(&req.Media[i]); err != nil {
			return err
		}
	}

	if req.Location != nil {
		if !validator.IsValidLatitude(req.Location.Latitude) {
			return errors.New("latitude must be between -90 and 90")
		}
		if !validator.IsValidLongitude(req.Location.Longitude) {
			return errors.New("longitude must be between -180 and 180")
		}
	}

	return nil
}

func validateMedia(m *Media) error {
	if m.Type != MediaTypeImage && m.Type != MediaTypeVideo {
		return errors.New("media type must be 'image' or 'video'")
	}

	m.URL = strings.TrimSpace(m.URL)
	if m.URL == "" {
		return errors.New("media url is required")
	}

	// Inline data URIs from the upload fallback path are accepted as-is.
	if !strings.HasPrefix(m.URL, "data:") && !validator.IsValidURL(m.URL) {
		return errors.New("media url must be a valid http(s) URL or data URI")
	}

	return nil
}

func ValidateAddCommentRequest(req *AddCommentRequest) error {
	req.Text = strings.TrimSpace(req.Text)

	if req.Text == "" {
		return errors.New("text is required")
	}

	if len(req.Text) > maxCommentLength {
		return errors.New("text must be 1000 characters or less")
	}

	return nil
}

package complaints

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateComplaintRequest(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateComplaintRequest
		wantErr bool
	}{
		{
			name:    "valid minimal",
			req:     CreateComplaintRequest{Content: "Streetlight broken on 5th avenue"},
			wantErr: false,
		},
		{
			name:    "content only whitespace",
			req:     CreateComplaintRequest{Content: "   "},
			wantErr: true,
		},
		{
			name:    "unknown category",
			req:     CreateComplaintRequest{Content: "x", Category: Category("Roads")},
			wantErr: true,
		},
		{
			name: "valid media",
			req: CreateComplaintRequest{
				Content: "x",
				Media:   []Media{{Type: MediaTypeImage, URL: "https://cdn.example.com/a.jpg"}},
			},
			wantErr: false,
		},
		{
			name: "data uri media",
			req: CreateComplaintRequest{
				Content: "x",
				Media:   []Media{{Type: MediaTypeImage, URL: "data:image/png;base64,iVBORw0KGgo="}},
			},
			wantErr: false,
		},
		{
			name: "bad media type",
			req: CreateComplaintRequest{
				Content: "x",
				Media:   []Media{{Type: "gif", URL: "https://cdn.example.com/a.gif"}},
			},
			wantErr: true,
		},
		{
			name: "media without url",
			req: CreateComplaintRequest{
				Content: "x",
				Media:   []Media{{Type: MediaTypeVideo}},
			},
			wantErr: true,
		},
		{
			name: "latitude out of range",
			req: CreateComplaintRequest{
				Content:  "x",
				Location: &GeoPoint{Latitude: 91, Longitude: 0},
			},
			wantErr: true,
		},
		{
			name: "longitude out of range",
			req: CreateComplaintRequest{
				Content:  "x",
				Location: &GeoPoint{Latitude: 23.8, Longitude: -181},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCreateComplaintRequest(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateCreateComplaintRequestDefaultsCategory(t *testing.T) {
	req := CreateComplaintRequest{Content: "no water supply since monday"}

	require.NoError(t, ValidateCreateComplaintRequest(&req))
	assert.Equal(t, CategoryOthers, req.Category)
}

func TestValidateAddCommentRequest(t *testing.T) {
	req := AddCommentRequest{Text: "  same problem in my street  "}
	require.NoError(t, ValidateAddCommentRequest(&req))
	assert.Equal(t, "same problem in my street", req.Text)

	empty := AddCommentRequest{Text: "   "}
	assert.Error(t, ValidateAddCommentRequest(&empty))

	long := AddCommentRequest{Text: strings.Repeat("a", maxCommentLength+1)}
	assert.Error(t, ValidateAddCommentRequest(&long))
}

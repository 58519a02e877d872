package complaints

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func performRequest(handler gin.HandlerFunc, method, target, body string, params gin.Params) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(method, target, bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = params

	handler(c)
	return recorder
}

func TestTransitionStatusRejectsMalformedID(t *testing.T) {
	handler := NewHandler(nil, nil, PermissivePolicy(), nil)

	recorder := performRequest(
		handler.TransitionStatus,
		http.MethodPatch, "/admin/complaints/not-an-id/status",
		`{"status":"Completed"}`,
		gin.Params{{Key: "id", Value: "not-an-id"}},
	)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestTransitionStatusRejectsUnknownStatus(t *testing.T) {
	handler := NewHandler(nil, nil, PermissivePolicy(), nil)

	recorder := performRequest(
		handler.TransitionStatus,
		http.MethodPatch, "/admin/complaints/64f000000000000000000000/status",
		`{"status":"Archived"}`,
		gin.Params{{Key: "id", Value: "64f000000000000000000000"}},
	)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "INVALID_STATUS")
}

func TestCreateComplaintRequiresAuth(t *testing.T) {
	handler := NewHandler(nil, nil, PermissivePolicy(), nil)

	recorder := performRequest(
		handler.CreateComplaint,
		http.MethodPost, "/complaints",
		`{"content":"pothole"}`,
		nil,
	)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestAddCommentRequiresAuth(t *testing.T) {
	handler := NewHandler(nil, nil, PermissivePolicy(), nil)

	recorder := performRequest(
		handler.AddComment,
		http.MethodPost, "/complaints/64f000000000000000000000/comments",
		`{"text":"same here"}`,
		gin.Params{{Key: "id", Value: "64f000000000000000000000"}},
	)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

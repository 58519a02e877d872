package adminreplies

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func replyRequest(handler gin.HandlerFunc, complaintID string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/complaints/"+complaintID+"/replies", nil)
	c.Params = gin.Params{{Key: "id", Value: complaintID}}

	handler(c)
	return recorder
}

func TestGetReplyForComplaintRejectsMalformedID(t *testing.T) {
	handler := NewHandler(nil, nil)

	recorder := replyRequest(handler.GetReplyForComplaint, "not-an-id")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestListRepliesForComplaintRejectsMalformedID(t *testing.T) {
	handler := NewHandler(nil, nil)

	recorder := replyRequest(handler.ListRepliesForComplaint, "not-an-id")

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

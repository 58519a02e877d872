package likes

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/publicvoice/api/internal/features/users"
	apperrors "github.com/publicvoice/api/pkg/errors"
)

type stubLedger struct {
	createErr   error
	createCalls int
	deleteCalls int
	liked       bool
	count       int64
}

func (s *stubLedger) CreateLike(_ context.Context, _, _ primitive.ObjectID) error {
	s.createCalls++
	return s.createErr
}

func (s *stubLedger) DeleteLike(_ context.Context, _, _ primitive.ObjectID) error {
	s.deleteCalls++
	return nil
}

func (s *stubLedger) HasLiked(_ context.Context, _, _ primitive.ObjectID) (bool, error) {
	return s.liked, nil
}

func (s *stubLedger) CountForComplaint(_ context.Context, _ primitive.ObjectID) (int64, error) {
	return s.count, nil
}

type stubCounter struct {
	count int
	err   error
	calls int
}

func (s *stubCounter) IncrementLikeCount(_ context.Context, _ primitive.ObjectID, _ int) (int, error) {
	s.calls++
	return s.count, s.err
}

func likeRequest(handler gin.HandlerFunc, complaintID string, user *users.User) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/complaints/"+complaintID+"/like", nil)
	c.Params = gin.Params{{Key: "id", Value: complaintID}}
	if user != nil {
		c.Set("user", user)
	}

	handler(c)
	return recorder
}

func TestLikeComplaintSuccess(t *testing.T) {
	ledger := &stubLedger{}
	counter := &stubCounter{count: 3}
	handler := NewHandler(ledger, counter)

	recorder := likeRequest(handler.LikeComplaint, primitive.NewObjectID().Hex(), &users.User{ID: primitive.NewObjectID()})

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"likeCount":3`)
	assert.Equal(t, 1, ledger.createCalls)
	assert.Equal(t, 1, counter.calls)
	assert.Zero(t, ledger.deleteCalls)
}

func TestLikeComplaintRepeatIsConflictAndSkipsCounter(t *testing.T) {
	ledger := &stubLedger{createErr: fmt.Errorf("%w: user already liked this complaint", apperrors.ErrAlreadyLiked)}
	counter := &stubCounter{}
	handler := NewHandler(ledger, counter)

	recorder := likeRequest(handler.LikeComplaint, primitive.NewObjectID().Hex(), &users.User{ID: primitive.NewObjectID()})

	require.Equal(t, http.StatusConflict, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "ALREADY_LIKED")
	assert.Zero(t, counter.calls, "a repeat like must not touch the counter")
}

func TestLikeComplaintMissingComplaintCompensatesLedger(t *testing.T) {
	ledger := &stubLedger{}
	counter := &stubCounter{err: apperrors.ErrNotFound}
	handler := NewHandler(ledger, counter)

	recorder := likeRequest(handler.LikeComplaint, primitive.NewObjectID().Hex(), &users.User{ID: primitive.NewObjectID()})

	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "COMPLAINT_NOT_FOUND")
	assert.Equal(t, 1, ledger.deleteCalls, "the orphaned ledger record must be removed")
}

func TestLikeComplaintRequiresAuth(t *testing.T) {
	handler := NewHandler(&stubLedger{}, &stubCounter{})

	recorder := likeRequest(handler.LikeComplaint, primitive.NewObjectID().Hex(), nil)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestLikeComplaintRejectsMalformedID(t *testing.T) {
	ledger := &stubLedger{}
	handler := NewHandler(ledger, &stubCounter{})

	recorder := likeRequest(handler.LikeComplaint, "not-an-id", &users.User{ID: primitive.NewObjectID()})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Zero(t, ledger.createCalls)
}

func TestLikeStatusReportsLedgerCount(t *testing.T) {
	ledger := &stubLedger{liked: true, count: 7}
	handler := NewHandler(ledger, &stubCounter{})

	recorder := likeRequest(handler.LikeStatus, primitive.NewObjectID().Hex(), &users.User{ID: primitive.NewObjectID()})

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"liked":true`)
	assert.Contains(t, recorder.Body.String(), `"likeCount":7`)
}

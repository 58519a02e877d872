package completed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/publicvoice/api/internal/features/adminreplies"
	"github.com/publicvoice/api/internal/features/complaints"
)

type stubComplaintSource struct {
	list []complaints.Complaint
	err  error
}

func (s *stubComplaintSource) ListByStatus(_ context.Context, _ complaints.Status) ([]complaints.Complaint, error) {
	return s.list, s.err
}

type stubReplySource struct {
	replies map[primitive.ObjectID]*adminreplies.AdminReply
	errFor  map[primitive.ObjectID]error
}

func (s *stubReplySource) LatestForComplaint(_ context.Context, complaintID primitive.ObjectID) (*adminreplies.AdminReply, error) {
	if err, ok := s.errFor[complaintID]; ok {
		return nil, err
	}
	return s.replies[complaintID], nil
}

func TestListCompletedJoinsReplies(t *testing.T) {
	withReply := primitive.NewObjectID()
	withoutReply := primitive.NewObjectID()

	reply := &adminreplies.AdminReply{
		ID:          primitive.NewObjectID(),
		ComplaintID: withReply,
		Description: "Resolved by the water board",
	}

	service := NewService(
		&stubComplaintSource{list: []complaints.Complaint{
			{ID: withReply, Status: complaints.StatusCompleted},
			{ID: withoutReply, Status: complaints.StatusCompleted},
		}},
		&stubReplySource{replies: map[primitive.ObjectID]*adminreplies.AdminReply{
			withReply: reply,
		}},
	)

	result, err := service.ListCompleted(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, reply, result[0].AdminReply)
	assert.Nil(t, result[1].AdminReply)
}

func TestListCompletedReplyFailureDoesNotFailListing(t *testing.T) {
	broken := primitive.NewObjectID()
	healthy := primitive.NewObjectID()

	reply := &adminreplies.AdminReply{ID: primitive.NewObjectID(), ComplaintID: healthy}

	service := NewService(
		&stubComplaintSource{list: []complaints.Complaint{
			{ID: broken, Status: complaints.StatusCompleted},
			{ID: healthy, Status: complaints.StatusCompleted},
		}},
		&stubReplySource{
			replies: map[primitive.ObjectID]*adminreplies.AdminReply{healthy: reply},
			errFor:  map[primitive.ObjectID]error{broken: errors.New("read timeout")},
		},
	)

	result, err := service.ListCompleted(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Nil(t, result[0].AdminReply)
	assert.Equal(t, reply, result[1].AdminReply)
}

func TestListCompletedSourceFailure(t *testing.T) {
	service := NewService(
		&stubComplaintSource{err: errors.New("server selection timeout")},
		&stubReplySource{},
	)

	result, err := service.ListCompleted(context.Background())

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestListCompletedEmpty(t *testing.T) {
	service := NewService(&stubComplaintSource{}, &stubReplySource{})

	result, err := service.ListCompleted(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NotNil(t, result)
}

package completed

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/publicvoice/api/internal/features/adminreplies"
	"github.com/publicvoice/api/internal/features/complaints"
	"github.com/publicvoice/api/internal/pkg/logger"
)

// ComplaintSource lists complaints in a given workflow state.
type ComplaintSource interface {
	ListByStatus(ctx context.Context, status complaints.Status) ([]complaints.Complaint, error)
}

// ReplySource resolves the latest official reply for a complaint.
type ReplySource interface {
	LatestForComplaint(ctx context.Context, complaintID primitive.ObjectID) (*adminreplies.AdminReply, error)
}

// Service joins completed complaints with their admin replies.
type Service struct {
	complaints ComplaintSource
	replies    ReplySource
}

func NewService(complaintSource ComplaintSource, replySource ReplySource) *Service {
	return &Service{
		complaints: complaintSource,
		replies:    replySource,
	}
}

// ListCompleted returns every Completed complaint joined with its latest
// reply. A reply lookup failure for one item does not fail the listing;
// that item just carries a null reply.
func (s *Service) ListCompleted(ctx context.Context) ([]CompletedComplaint, error) {
	list, err := s.complaints.ListByStatus(ctx, complaints.StatusCompleted)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed complaints: %w", err)
	}

	result := make([]CompletedComplaint, 0, len(list))
	for _, complaint := range list {
		item := CompletedComplaint{Complaint: complaint}

		reply, err := s.replies.LatestForComplaint(ctx, complaint.ID)
		if err != nil {
			logger.Warn("failed to resolve reply for complaint %s: %v", complaint.ID.Hex(), err)
		} else {
			item.AdminReply = reply
		}

		result = append(result, item)
	}

	return result, nil
}

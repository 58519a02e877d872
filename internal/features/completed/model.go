package completed

import (
	"github.com/publicvoice/api/internal/features/adminreplies"
	"github.com/publicvoice/api/internal/features/complaints"
)

// CompletedComplaint pairs a resolved complaint with its latest official
// reply. AdminReply is null when no reply was ever posted.
type CompletedComplaint struct {
	complaints.Complaint
	AdminReply *adminreplies.AdminReply `json:"adminReply"`
}

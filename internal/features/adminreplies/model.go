package adminreplies

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminReply is an official response to a complaint. Replies live in their
// own collection keyed by complaintId, so a reply can outlive its complaint.
type AdminReply struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ComplaintID primitive.ObjectID `bson:"complaintId" json:"complaintId"`
	AdminID     primitive.ObjectID `bson:"adminId" json:"adminId"`
	Description string             `bson:"description" json:"description"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	VideoURL    string             `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

type PostReplyRequest struct {
	Description string `json:"description" binding:"required"`
	ImageURL    string `json:"imageUrl" binding:"omitempty"`
	VideoURL    string `json:"videoUrl" binding:"omitempty"`
}

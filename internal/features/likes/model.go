package likes

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Like is one row in the like ledger. The unique (complaintId, userId)
// index is what makes liking idempotent per user.
type Like struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ComplaintID primitive.ObjectID `bson:"complaintId" json:"complaintId"`
	UserID      primitive.ObjectID `bson:"userId" json:"userId"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// LikeResult is returned after a successful like.
type LikeResult struct {
	ComplaintID primitive.ObjectID `json:"complaintId"`
	LikeCount   int                `json:"likeCount"`
}

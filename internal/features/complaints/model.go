package complaints

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/publicvoice/api/internal/features/users"
)

// Status values a complaint moves through
type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In Progress"
	StatusRejected   Status = "Rejected"
	StatusCompleted  Status = "Completed"
)

// AllStatuses lists every recognized status
var AllStatuses = []Status{StatusPending, StatusInProgress, StatusRejected, StatusCompleted}

// IsKnownStatus reports whether s is one of the enumerated statuses
func IsKnownStatus(s Status) bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Category values for classifying a complaint
type Category string

const (
	CategoryElectric      Category = "Electric"
	CategoryWater         Category = "Water"
	CategorySocialProblem Category = "Social Problem"
	CategoryDrainage      Category = "Drainage"
	CategoryAir           Category = "Air"
	CategoryOthers        Category = "Others"
)

// AllCategories lists every recognized category
var AllCategories = []Category{
	CategoryElectric,
	CategoryWater,
	CategorySocialProblem,
	CategoryDrainage,
	CategoryAir,
	CategoryOthers,
}

// IsKnownCategory reports whether c is one of the enumerated categories
func IsKnownCategory(c Category) bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// Media type constants
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Media is an attachment reference, either a hosted URI or an inline
// data URI produced by the upload service.
type Media struct {
	Type string `bson:"type" json:"type"`
	URL  string `bson:"url" json:"url"`
}

// GeoPoint is an optional complaint location
type GeoPoint struct {
	Latitude  float64 `bson:"latitude" json:"latitude"`
	Longitude float64 `bson:"longitude" json:"longitude"`
}

// Comment is owned by exactly one complaint and stored embedded in it,
// so insertion order and cascade-on-delete are structural.
type Comment struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	AuthorID  primitive.ObjectID `bson:"authorId" json:"authorId"`
	Text      string             `bson:"text" json:"text"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

// Complaint is the central entity: a citizen report with a workflow status,
// a like counter maintained by the likes ledger, and embedded comments.
type Complaint struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuthorID  primitive.ObjectID `bson:"authorId" json:"authorId"`
	Title     string             `bson:"title,omitempty" json:"title,omitempty"`
	Content   string             `bson:"content" json:"content"`
	Media     []Media            `bson:"media,omitempty" json:"media,omitempty"`
	Location  *GeoPoint          `bson:"location,omitempty" json:"location,omitempty"`
	Category  Category           `bson:"category" json:"category"`
	Status    Status             `bson:"status" json:"status"`
	LikeCount int                `bson:"likeCount" json:"likeCount"`
	Comments  []Comment          `bson:"comments" json:"comments"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// IsAuthoredBy reports whether the given user created this complaint
func (c *Complaint) IsAuthoredBy(userID primitive.ObjectID) bool {
	return c.AuthorID == userID
}

// Request DTOs

type CreateComplaintRequest struct {
	Title    string    `json:"title" binding:"omitempty,max=120"`
	Content  string    `json:"content" binding:"required"`
	Media    []Media   `json:"media" binding:"omitempty,max=5"`
	Location *GeoPoint `json:"location" binding:"omitempty"`
	Category Category  `json:"category" binding:"omitempty"`
}

type AddCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

type TransitionStatusRequest struct {
	Status Status `json:"status" binding:"required"`
}

// Response DTOs

// ComplaintResponse is a complaint with its author resolved to a display
// identity. Author is nil when the account no longer exists.
type ComplaintResponse struct {
	Complaint
	Author *users.PublicProfile `json:"author"`
}

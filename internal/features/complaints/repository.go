package complaints

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "github.com/publicvoice/api/pkg/errors"
)

// Repository handles database interactions for the complaints feature
type Repository struct {
	collection *mongo.Collection
}

// NewRepository initializes the repository and creates necessary indexes
func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("complaints")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			// "my complaints" views
			Keys: bson.D{
				{Key: "authorId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
		{
			// status-filtered listings (completed-complaints join)
			Keys: bson.D{
				{Key: "status", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
	})

	return &Repository{collection: collection}
}

// CreateComplaint inserts a new complaint in its initial state
func (r *Repository) CreateComplaint(ctx context.Context, complaint *Complaint) error {
	now := time.Now()
	complaint.ID = primitive.NewObjectID()
	complaint.Status = StatusPending
	complaint.LikeCount = 0
	complaint.Comments = []Comment{}
	complaint.CreatedAt = now
	complaint.UpdatedAt = now

	if complaint.Category == "" {
		complaint.Category = CategoryOthers
	}

	_, err := r.collection.InsertOne(ctx, complaint)
	if err != nil {
		return fmt.Errorf("insert complaint: %w", err)
	}

	return nil
}

// GetComplaintByID finds a complaint by its ID
func (r *Repository) GetComplaintByID(ctx context.Context, id primitive.ObjectID) (*Complaint, error) {
	var complaint Complaint
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&complaint)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &complaint, nil
}

// ListComplaints returns complaints newest first, optionally restricted to
// one author, with pagination.
func (r *Repository) ListComplaints(ctx context.Context, authorID *primitive.ObjectID, page, limit int) ([]Complaint, int64, error) {
	filter := bson.M{}
	if authorID != nil {
		filter["authorId"] = *authorID
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var result []Complaint
	if err = cursor.All(ctx, &result); err != nil {
		return nil, 0, err
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	return result, total, nil
}

// ListByStatus returns every complaint currently in the given status,
// newest first. The completion aggregator reads Completed through this.
func (r *Repository) ListByStatus(ctx context.Context, status Status) ([]Complaint, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"status": status}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []Complaint
	if err = cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// DeleteComplaint removes a complaint. Embedded comments go with the
// document; any admin reply keeps its dangling complaintId on purpose.
func (r *Repository) DeleteComplaint(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// AddComment appends a comment to the complaint's embedded sequence
func (r *Repository) AddComment(ctx context.Context, complaintID primitive.ObjectID, comment *Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()

	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": complaintID},
		bson.M{
			"$push": bson.M{"comments": comment},
			"$set":  bson.M{"updatedAt": time.Now()},
		},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// UpdateStatus sets the complaint's status and returns the updated document
func (r *Repository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status Status) (*Complaint, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var complaint Complaint
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
		opts,
	).Decode(&complaint)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	return &complaint, nil
}

// IncrementLikeCount bumps the denormalized like counter and returns the new
// value. The likes ledger is the source of truth; this counter mirrors it.
func (r *Repository) IncrementLikeCount(ctx context.Context, id primitive.ObjectID, delta int) (int, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var complaint Complaint
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{
			"$inc": bson.M{"likeCount": delta},
			"$set": bson.M{"updatedAt": time.Now()},
		},
		opts,
	).Decode(&complaint)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, apperrors.ErrNotFound
		}
		return 0, err
	}

	return complaint.LikeCount, nil
}

// Exists reports whether a complaint with the given ID is present
func (r *Repository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

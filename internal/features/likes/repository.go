package likes

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/publicvoice/api/internal/pkg/logger"
	apperrors "github.com/publicvoice/api/pkg/errors"
)

// Repository handles like ledger database operations
type Repository struct {
	collection *mongo.Collection
}

// NewRepository creates a like repository and ensures its indexes
func NewRepository(db *mongo.Database) *Repository {
	repo := &Repository{
		collection: db.Collection("likes"),
	}
	repo.ensureIndexes()
	return repo
}

func (r *Repository) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// The unique compound index is the whole integrity story: a second
	// like from the same user fails at insert time, no read needed.
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "complaintId", Value: 1},
				{Key: "userId", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "userId", Value: 1}},
		},
	}

	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Warn("failed to create like indexes: %v", err)
	}
}

// CreateLike records that userID liked complaintID. Returns ErrAlreadyLiked
// when a record for the pair already exists.
func (r *Repository) CreateLike(ctx context.Context, complaintID, userID primitive.ObjectID) error {
	like := Like{
		ID:          primitive.NewObjectID(),
		ComplaintID: complaintID,
		UserID:      userID,
		CreatedAt:   time.Now(),
	}

	if _, err := r.collection.InsertOne(ctx, like); err != nil {
		return translateInsertError(err)
	}

	return nil
}

func translateInsertError(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: user already liked this complaint", apperrors.ErrAlreadyLiked)
	}
	return fmt.Errorf("failed to record like: %w", err)
}

// DeleteLike removes a single ledger record. Used to compensate when the
// liked complaint turns out not to exist.
func (r *Repository) DeleteLike(ctx context.Context, complaintID, userID primitive.ObjectID) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{
		"complaintId": complaintID,
		"userId":      userID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

// DeleteByComplaint removes every ledger record for a complaint
func (r *Repository) DeleteByComplaint(ctx context.Context, complaintID primitive.ObjectID) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"complaintId": complaintID})
	if err != nil {
		return fmt.Errorf("failed to delete likes for complaint: %w", err)
	}
	return nil
}

// HasLiked reports whether the user already has a ledger record
func (r *Repository) HasLiked(ctx context.Context, complaintID, userID primitive.ObjectID) (bool, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{
		"complaintId": complaintID,
		"userId":      userID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return count > 0, nil
}

// CountForComplaint returns the authoritative ledger count, as opposed to
// the denormalized counter mirrored on the complaint document.
func (r *Repository) CountForComplaint(ctx context.Context, complaintID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"complaintId": complaintID})
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}

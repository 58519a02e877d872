package adminreplies

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/publicvoice/api/internal/pkg/logger"
)

// Repository handles admin reply database operations
type Repository struct {
	collection *mongo.Collection
}

// NewRepository creates an admin reply repository and ensures its indexes
func NewRepository(db *mongo.Database) *Repository {
	repo := &Repository{
		collection: db.Collection("admin_replies"),
	}
	repo.ensureIndexes()
	return repo
}

func (r *Repository) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "complaintId", Value: 1},
				{Key: "createdAt", Value: -1},
			},
		},
	}

	if _, err := r.collection.Indexes().CreateMany(ctx, indexes); err != nil {
		logger.Warn("failed to create admin reply indexes: %v", err)
	}
}

// CreateReply inserts a new official reply
func (r *Repository) CreateReply(ctx context.Context, reply *AdminReply) error {
	reply.ID = primitive.NewObjectID()
	reply.CreatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, reply); err != nil {
		return fmt.Errorf("failed to create admin reply: %w", err)
	}

	return nil
}

// LatestForComplaint returns the most recent reply for a complaint, or
// (nil, nil) when no reply has been posted.
func (r *Repository) LatestForComplaint(ctx context.Context, complaintID primitive.ObjectID) (*AdminReply, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var reply AdminReply
	err := r.collection.FindOne(ctx, bson.M{"complaintId": complaintID}, opts).Decode(&reply)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin reply: %w", err)
	}

	return &reply, nil
}

// ListForComplaint returns every reply for a complaint, newest first
func (r *Repository) ListForComplaint(ctx context.Context, complaintID primitive.ObjectID) ([]AdminReply, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"complaintId": complaintID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list admin replies: %w", err)
	}
	defer cursor.Close(ctx)

	replies := []AdminReply{}
	if err := cursor.All(ctx, &replies); err != nil {
		return nil, fmt.Errorf("failed to decode admin replies: %w", err)
	}

	return replies, nil
}

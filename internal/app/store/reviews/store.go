package reviewstore

import (
	"context"
	"time"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store wraps the reviews collection.
type Store struct {
	c *mongo.Collection
}

// New creates a Store bound to the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("reviews")}
}

// GetByID fetches a review. Returns mongo.ErrNoDocuments when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Review, error) {
	var rv models.Review
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&rv); err != nil {
		return nil, err
	}
	return &rv, nil
}

// ListByChurch returns a church's reviews, newest first.
func (s *Store) ListByChurch(ctx context.Context, churchID primitive.ObjectID) ([]models.Review, error) {
	return s.list(ctx, bson.M{"church_id": churchID})
}

// ListByUser returns a churchgoer's reviews, newest first.
func (s *Store) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Review, error) {
	return s.list(ctx, bson.M{"user_id": userID})
}

func (s *Store) list(ctx context.Context, q bson.M) ([]models.Review, error) {
	cur, err := s.c.Find(ctx, q, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Review{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert stores a new review.
func (s *Store) Insert(ctx context.Context, rv *models.Review) error {
	now := time.Now().UTC()
	rv.ID = primitive.NewObjectID()
	rv.CreatedAt = now
	rv.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, rv)
	return err
}

// Update applies a partial $set and returns the updated document.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.Review, error) {
	set["updated_at"] = time.Now().UTC()
	var rv models.Review
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&rv)
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

// Delete removes one review.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByChurch removes every review of a church (cascade).
func (s *Store) DeleteByChurch(ctx context.Context, churchID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"church_id": churchID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByUser removes every review authored by a user (cascade).
func (s *Store) DeleteByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

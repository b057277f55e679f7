package volopstore

import (
	"context"
	"time"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store wraps the volunteerops collection.
type Store struct {
	c *mongo.Collection
}

// New creates a Store bound to the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("volunteerops")}
}

// GetByID fetches an opportunity. Returns mongo.ErrNoDocuments when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.VolunteerOp, error) {
	var op models.VolunteerOp
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&op); err != nil {
		return nil, err
	}
	return &op, nil
}

// ListByChurch returns a church's opportunities, newest first.
func (s *Store) ListByChurch(ctx context.Context, churchID primitive.ObjectID) ([]models.VolunteerOp, error) {
	cur, err := s.c.Find(ctx, bson.M{"church_id": churchID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.VolunteerOp{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert stores a new opportunity.
func (s *Store) Insert(ctx context.Context, op *models.VolunteerOp) error {
	now := time.Now().UTC()
	op.ID = primitive.NewObjectID()
	op.CreatedAt = now
	op.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, op)
	return err
}

// Update applies a $set and returns the updated document.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.VolunteerOp, error) {
	set["updated_at"] = time.Now().UTC()
	var op models.VolunteerOp
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&op)
	if err != nil {
		return nil, err
	}
	return &op, nil
}

// Delete removes one opportunity.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByChurch removes every opportunity under a church (cascade).
func (s *Store) DeleteByChurch(ctx context.Context, churchID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"church_id": churchID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

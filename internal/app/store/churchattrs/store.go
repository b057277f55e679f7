package attrstore

import (
	"context"
	"time"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store wraps the churchattrs collection.
type Store struct {
	c *mongo.Collection
}

// New creates a Store bound to the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("churchattrs")}
}

// GetByID fetches an attribute record. Returns mongo.ErrNoDocuments when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.ChurchAttribute, error) {
	var a models.ChurchAttribute
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&a); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListByChurch returns all attribute records for a church.
func (s *Store) ListByChurch(ctx context.Context, churchID primitive.ObjectID) ([]models.ChurchAttribute, error) {
	cur, err := s.c.Find(ctx, bson.M{"church_id": churchID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.ChurchAttribute{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert stores a new attribute record.
func (s *Store) Insert(ctx context.Context, a *models.ChurchAttribute) error {
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	a.CreatedAt = now
	a.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, a)
	return err
}

// Update applies a partial $set and returns the updated document.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.ChurchAttribute, error) {
	set["updated_at"] = time.Now().UTC()
	var a models.ChurchAttribute
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Delete removes one attribute record.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByChurch removes every attribute record for a church (cascade).
func (s *Store) DeleteByChurch(ctx context.Context, churchID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"church_id": churchID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

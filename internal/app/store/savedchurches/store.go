package savedstore

import (
	"context"
	"time"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store wraps the savedchurches collection. The (user_id, church_id) pair is
// covered by a unique index, so a duplicate save surfaces as a duplicate-key
// write error rather than relying on the pre-check alone.
type Store struct {
	c *mongo.Collection
}

// New creates a Store bound to the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("savedchurches")}
}

// GetByID fetches a bookmark. Returns mongo.ErrNoDocuments when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.SavedChurch, error) {
	var sc models.SavedChurch
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

// FindByUserAndChurch looks a bookmark up by its natural key.
func (s *Store) FindByUserAndChurch(ctx context.Context, userID, churchID primitive.ObjectID) (*models.SavedChurch, error) {
	var sc models.SavedChurch
	err := s.c.FindOne(ctx, bson.M{"user_id": userID, "church_id": churchID}).Decode(&sc)
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

// ListByUser returns a churchgoer's bookmarks, newest first.
func (s *Store) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.SavedChurch, error) {
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.SavedChurch{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert stores a new bookmark.
func (s *Store) Insert(ctx context.Context, sc *models.SavedChurch) error {
	sc.ID = primitive.NewObjectID()
	sc.CreatedAt = time.Now().UTC()
	_, err := s.c.InsertOne(ctx, sc)
	return err
}

// Delete removes one bookmark.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByChurch removes every bookmark of a church (cascade).
func (s *Store) DeleteByChurch(ctx context.Context, churchID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"church_id": churchID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// DeleteByUser removes every bookmark held by a user (cascade).
func (s *Store) DeleteByUser(ctx context.Context, userID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"user_id": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

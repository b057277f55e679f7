package userstore

import (
	"context"
	"time"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/auth"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/normalize"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/timeouts"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store wraps the users collection.
type Store struct {
	c *mongo.Collection
}

// New creates a Store bound to the given database.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// GetByID fetches a user by ID. Returns mongo.ErrNoDocuments when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail fetches a user by normalized email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Insert stores a new user and fills in the generated ID and timestamps.
func (s *Store) Insert(ctx context.Context, u *models.User) error {
	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.CreatedAt = now
	u.UpdatedAt = now
	_, err := s.c.InsertOne(ctx, u)
	return err
}

// Update applies a partial $set and returns the updated document.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (*models.User, error) {
	set["updated_at"] = time.Now().UTC()
	var u models.User
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&u)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Delete removes a user document. Dependent records are the caller's
// responsibility (see the cascade package).
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// AddChurch appends a church to a churchRep's owned-church back-reference
// list. $addToSet keeps the list duplicate-free.
func (s *Store) AddChurch(ctx context.Context, userID, churchID primitive.ObjectID) error {
	_, err := s.c.UpdateByID(ctx, userID, bson.M{
		"$addToSet": bson.M{"church_ids": churchID},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	})
	return err
}

// PullChurch removes a church from the owner's back-reference list.
func (s *Store) PullChurch(ctx context.Context, userID, churchID primitive.ObjectID) error {
	_, err := s.c.UpdateByID(ctx, userID, bson.M{
		"$pull": bson.M{"church_ids": churchID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
	return err
}

// Fetcher implements auth.UserFetcher to load fresh user data on each
// request, so deleted accounts and role changes take effect immediately.
type Fetcher struct {
	users *mongo.Collection
}

// NewFetcher creates a UserFetcher that queries the given database.
func NewFetcher(db *mongo.Database) *Fetcher {
	return &Fetcher{users: db.Collection("users")}
}

// FetchUser retrieves a user by ID and returns nil if the user is not found
// or any error occurs. This implements auth.UserFetcher.
func (f *Fetcher) FetchUser(ctx context.Context, userID string) *auth.SessionUser {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	var u models.User
	proj := options.FindOne().SetProjection(bson.M{
		"_id":         1,
		"role":        1,
		"email":       1,
		"first_name":  1,
		"last_name":   1,
		"username":    1,
		"church_name": 1,
	})
	if err := f.users.FindOne(ctx, bson.M{"_id": oid}, proj).Decode(&u); err != nil {
		return nil
	}

	return &auth.SessionUser{
		ID:    u.ID.Hex(),
		Role:  u.Role,
		Email: u.Email,
		Name:  displayName(&u),
	}
}

func displayName(u *models.User) string {
	if u.ChurchName != nil && *u.ChurchName != "" {
		return *u.ChurchName
	}
	if u.Username != nil {
		return *u.Username
	}
	return ""
}

package churchstore

import (
	"context"
	"regexp"
	"time"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store wraps the churches collection. It also reads churchattrs for
// attribute-filtered directory searches, which span both collections.
type Store struct {
	c     *mongo.Collection
	attrs *mongo.Collection
}

// New creates a Store bound to the given database.
func New(db *mongo.Database) *Store {
	return &Store{
		c:     db.Collection("churches"),
		attrs: db.Collection("churchattrs"),
	}
}

// GetByID fetches a church by ID. Returns mongo.ErrNoDocuments when absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Church, error) {
	var ch models.Church
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

// FindByNameAddress looks a church up by its exact (name, address) pair,
// the uniqueness key for listings.
func (s *Store) FindByNameAddress(ctx context.Context, name, address string) (*models.Church, error) {
	var ch models.Church
	err := s.c.FindOne(ctx, bson.M{"name": name, "address": address}).Decode(&ch)
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// Insert stores a new church, filling derived CI fields, the generated ID,
// and timestamps.
func (s *Store) Insert(ctx context.Context, ch *models.Church) error {
	now := time.Now().UTC()
	ch.ID = primitive.NewObjectID()
	ch.CreatedAt = now
	ch.UpdatedAt = now
	fold(ch)
	_, err := s.c.InsertOne(ctx, ch)
	return err
}

// Update applies a partial $set (and optional $unset) and returns the
// updated document. Callers that change name/address/city/state must
// include the *_ci fields.
func (s *Store) Update(ctx context.Context, id primitive.ObjectID, set, unset bson.M) (*models.Church, error) {
	set["updated_at"] = time.Now().UTC()
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	var ch models.Church
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&ch)
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

// Delete removes the church document only; dependents are handled by the
// cascade package.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ListByOwner returns every church owned by the given churchRep.
func (s *Store) ListByOwner(ctx context.Context, userID primitive.ObjectID) ([]models.Church, error) {
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Church
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Filter narrows a directory search. Name matches on the folded name as a
// prefix; attribute fields match churches through their churchattrs records.
type Filter struct {
	Name  string
	City  string
	State string

	Size          string
	AgeGroup      string
	Ethnicity     string
	Language      string
	Denomination  string
	ServiceDay    string
	Volunteering  *bool
	Participatory *bool
}

func (f Filter) hasAttrFilter() bool {
	return f.Size != "" || f.AgeGroup != "" || f.Ethnicity != "" ||
		f.Language != "" || f.Denomination != "" || f.ServiceDay != "" ||
		f.Volunteering != nil || f.Participatory != nil
}

// Search returns the churches matching the filter, sorted by folded name.
func (s *Store) Search(ctx context.Context, f Filter) ([]models.Church, error) {
	q := bson.M{}
	if f.Name != "" {
		q["name_ci"] = bson.M{"$regex": "^" + regexp.QuoteMeta(text.Fold(f.Name))}
	}
	if f.City != "" {
		q["city_ci"] = text.Fold(f.City)
	}
	if f.State != "" {
		q["state_ci"] = text.Fold(f.State)
	}

	if f.hasAttrFilter() {
		ids, err := s.churchIDsMatchingAttrs(ctx, f)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return []models.Church{}, nil
		}
		q["_id"] = bson.M{"$in": ids}
	}

	cur, err := s.c.Find(ctx, q, options.Find().SetSort(bson.D{{Key: "name_ci", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []models.Church{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) churchIDsMatchingAttrs(ctx context.Context, f Filter) ([]primitive.ObjectID, error) {
	q := bson.M{}
	if f.Size != "" {
		q["size"] = f.Size
	}
	if f.AgeGroup != "" {
		q["age_group"] = f.AgeGroup
	}
	if f.Ethnicity != "" {
		q["ethnicity"] = f.Ethnicity
	}
	if f.Language != "" {
		q["language"] = f.Language
	}
	if f.Denomination != "" {
		q["denomination"] = f.Denomination
	}
	if f.ServiceDay != "" {
		q["service_day"] = f.ServiceDay
	}
	if f.Volunteering != nil {
		q["volunteering"] = *f.Volunteering
	}
	if f.Participatory != nil {
		q["participatory"] = *f.Participatory
	}

	raw, err := s.attrs.Distinct(ctx, "church_id", q)
	if err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(raw))
	for _, v := range raw {
		if oid, ok := v.(primitive.ObjectID); ok {
			ids = append(ids, oid)
		}
	}
	return ids, nil
}

func fold(ch *models.Church) {
	ch.NameCI = text.Fold(ch.Name)
	ch.AddressCI = text.Fold(ch.Address)
	ch.CityCI = text.Fold(ch.City)
	ch.StateCI = text.Fold(ch.State)
}

// internal/domain/models/church.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Church is a directory listing owned by a churchRep user.
// Includes case/diacritic-insensitive fields for search/sort.
//
// (Name, Address) is unique across the collection, enforced by a compound
// index created at startup.
type Church struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"userId"` // owning churchRep

	Name      string `bson:"name" json:"name"`
	NameCI    string `bson:"name_ci" json:"-"`
	Address   string `bson:"address" json:"address"`
	AddressCI string `bson:"address_ci" json:"-"`
	City      string `bson:"city" json:"city"`
	CityCI    string `bson:"city_ci" json:"-"`
	State     string `bson:"state" json:"state"`
	StateCI   string `bson:"state_ci" json:"-"`

	Email    string `bson:"email" json:"email"`
	Website  string `bson:"website" json:"website"`
	ImageURL string `bson:"image_url" json:"imageUrl"`

	Phone       string `bson:"phone,omitempty" json:"phone,omitempty"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	// Set by the geocoding client on create/update when the address resolves.
	Latitude  *float64 `bson:"latitude,omitempty" json:"latitude,omitempty"`
	Longitude *float64 `bson:"longitude,omitempty" json:"longitude,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

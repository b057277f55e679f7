// internal/domain/models/review.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review is a churchgoer's rating of a church. Rating is always in [1,5];
// the body is sanitized before storage.
type Review struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChurchID primitive.ObjectID `bson:"church_id" json:"churchId"`
	UserID   primitive.ObjectID `bson:"user_id" json:"userId"` // author (churchgoer)

	Rating int    `bson:"rating" json:"rating"`
	Body   string `bson:"body,omitempty" json:"body,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

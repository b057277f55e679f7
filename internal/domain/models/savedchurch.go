// internal/domain/models/savedchurch.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SavedChurch records a churchgoer's bookmark of a church. A given
// (user, church) pair appears at most once, enforced by a unique compound
// index created at startup.
type SavedChurch struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID   primitive.ObjectID `bson:"user_id" json:"userId"`
	ChurchID primitive.ObjectID `bson:"church_id" json:"churchId"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

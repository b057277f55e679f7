// internal/domain/models/volunteerop.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VolunteerOp is a volunteer opportunity listed under a church. Ownership is
// transitive through the parent church. Both boolean flags must be supplied
// explicitly on create and update; false is a valid value.
type VolunteerOp struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChurchID primitive.ObjectID `bson:"church_id" json:"churchId"`

	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Active      bool   `bson:"active" json:"active"`
	MembersOnly bool   `bson:"members_only" json:"membersOnly"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

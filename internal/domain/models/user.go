package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role values stored on User documents.
const (
	RoleChurchgoer = "churchgoer"
	RoleChurchRep  = "churchRep"
)

// User represents both churchgoers and church representatives.
//
// Role-conditional fields:
//   - churchgoer: FirstName, LastName, Username are required.
//   - churchRep: ChurchName is required; ChurchIDs lists the churches the
//     representative owns (back-reference maintained by the churches feature).
//
// The password is stored only as a bcrypt hash and never serialized.
type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Role           string             `bson:"role" json:"role"` // churchgoer | churchRep
	Email          string             `bson:"email" json:"email"`
	HashedPassword []byte             `bson:"hashed_password" json:"-"`

	FirstName *string `bson:"first_name,omitempty" json:"firstName,omitempty"`
	LastName  *string `bson:"last_name,omitempty" json:"lastName,omitempty"`
	Username  *string `bson:"username,omitempty" json:"username,omitempty"`

	ChurchName *string              `bson:"church_name,omitempty" json:"churchName,omitempty"`
	ChurchIDs  []primitive.ObjectID `bson:"church_ids,omitempty" json:"churchIds,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsChurchRep reports whether the user holds the church representative role.
func (u *User) IsChurchRep() bool { return u.Role == RoleChurchRep }

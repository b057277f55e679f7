// internal/domain/models/churchattribute.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChurchAttribute holds the descriptive profile a representative publishes
// for a church. Every descriptive field is optional; ownership is transitive
// through the parent church (UserID records the authoring rep for reference
// but is never consulted for authorization).
type ChurchAttribute struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ChurchID primitive.ObjectID `bson:"church_id" json:"churchId"`
	UserID   primitive.ObjectID `bson:"user_id" json:"userId"`

	Size          *string `bson:"size,omitempty" json:"size,omitempty"`
	AgeGroup      *string `bson:"age_group,omitempty" json:"ageGroup,omitempty"`
	Ethnicity     *string `bson:"ethnicity,omitempty" json:"ethnicity,omitempty"`
	Language      *string `bson:"language,omitempty" json:"language,omitempty"`
	Denomination  *string `bson:"denomination,omitempty" json:"denomination,omitempty"`
	ServiceDay    *string `bson:"service_day,omitempty" json:"serviceDay,omitempty"`
	ServiceTime   *string `bson:"service_time,omitempty" json:"serviceTime,omitempty"`
	Volunteering  *bool   `bson:"volunteering,omitempty" json:"volunteering,omitempty"`
	Participatory *bool   `bson:"participatory,omitempty" json:"participatory,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

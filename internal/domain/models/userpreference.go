// internal/domain/models/userpreference.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserPreference mirrors ChurchAttribute's descriptive fields but records the
// values a churchgoer is looking for. Used by the directory search to match
// churches to a user's preferences.
type UserPreference struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID primitive.ObjectID `bson:"user_id" json:"userId"` // owning churchgoer

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

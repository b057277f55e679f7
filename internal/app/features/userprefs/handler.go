// internal/app/features/userprefs/handler.go

// Package userprefs serves a churchgoer's worship-preference sets: the
// attribute values they are looking for in a church. The surface is private
// and owner-scoped throughout.
package userprefs

import (
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/policy/ownerpolicy"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var policy = ownerpolicy.Policy{
	RequiredRole:  models.RoleChurchgoer,
	RoleDeniedMsg: "Only churchgoers can manage worship preferences.",
	NotOwnerMsg:   "You are not authorized to manage this preference set.",
}

const notFoundMsg = "Preference set couldn't be found"

// Handler is the feature-level entry point for user preferences.
type Handler struct {
	DB   *mongo.Database
	Errs *apierr.Writer
	Log  *zap.Logger
}

// NewHandler constructs a userprefs handler bound to its dependencies.
func NewHandler(db *mongo.Database, errs *apierr.Writer, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Errs: errs, Log: logger}
}

// prefPayload is the create/update request body. Same shape and rules as a
// church's attribute record: all optional, bucketed fields enumerated.
type prefPayload struct {
	Size          *string `json:"size"`
	AgeGroup      *string `json:"ageGroup"`
	Ethnicity     *string `json:"ethnicity"`
	Language      *string `json:"language"`
	Denomination  *string `json:"denomination"`
	ServiceDay    *string `json:"serviceDay"`
	ServiceTime   *string `json:"serviceTime"`
	Volunteering  *bool   `json:"volunteering"`
	Participatory *bool   `json:"participatory"`
}

func (p prefPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Size, validation.In(asAny(models.SizeOptions)...)),
		validation.Field(&p.AgeGroup, validation.In(asAny(models.AgeGroupOptions)...)),
		validation.Field(&p.ServiceDay, validation.In(asAny(models.ServiceDayOptions)...)),
		validation.Field(&p.Ethnicity, validation.Length(0, 100)),
		validation.Field(&p.Language, validation.Length(0, 100)),
		validation.Field(&p.Denomination, validation.Length(0, 100)),
		validation.Field(&p.ServiceTime, validation.Length(0, 100)),
	)
}

func (p prefPayload) set() bson.M {
	set := bson.M{}
	putStr := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	putBool := func(key string, v *bool) {
		if v != nil {
			set[key] = *v
		}
	}
	putStr("size", p.Size)
	putStr("age_group", p.AgeGroup)
	putStr("ethnicity", p.Ethnicity)
	putStr("language", p.Language)
	putStr("denomination", p.Denomination)
	putStr("service_day", p.ServiceDay)
	putStr("service_time", p.ServiceTime)
	putBool("volunteering", p.Volunteering)
	putBool("participatory", p.Participatory)
	return set
}

func asAny(opts []string) []any {
	out := make([]any, len(opts))
	for i, o := range opts {
		out[i] = o
	}
	return out
}

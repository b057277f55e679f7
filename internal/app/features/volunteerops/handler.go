// internal/app/features/volunteerops/handler.go

// Package volunteerops serves the volunteer opportunities listed under
// churches. Reads are public; mutations require the representative that owns
// the parent church.
package volunteerops

import (
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/policy/ownerpolicy"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var policy = ownerpolicy.Policy{
	RequiredRole:  models.RoleChurchRep,
	RoleDeniedMsg: "Only church representatives can manage volunteer opportunities.",
	NotOwnerMsg:   "You are not authorized to manage this church's volunteer opportunities.",
}

const (
	notFoundMsg       = "Volunteer opportunity couldn't be found"
	churchNotFoundMsg = "Church couldn't be found"
)

// Handler is the feature-level entry point for volunteer opportunities.
type Handler struct {
	DB   *mongo.Database
	Errs *apierr.Writer
	Log  *zap.Logger
}

// NewHandler constructs a volunteerops handler bound to its dependencies.
func NewHandler(db *mongo.Database, errs *apierr.Writer, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Errs: errs, Log: logger}
}

// opPayload is the create/update request body. The boolean flags must be
// given explicitly on every write: false means open/inactive, absent is a
// validation error.
type opPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Active      *bool  `json:"active"`
	MembersOnly *bool  `json:"membersOnly"`
}

func (p opPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&p.Description, validation.Required, validation.Length(1, 5000)),
		validation.Field(&p.Active, validation.NotNil),
		validation.Field(&p.MembersOnly, validation.NotNil),
	)
}

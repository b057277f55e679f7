// internal/app/features/reviews/handler.go

// Package reviews serves church reviews. Reads are public; writing is
// reserved to churchgoers, and a review can only ever be changed or removed
// by its author.
package reviews

import (
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/policy/ownerpolicy"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var policy = ownerpolicy.Policy{
	RequiredRole:  models.RoleChurchgoer,
	RoleDeniedMsg: "Only churchgoers can write reviews.",
	NotOwnerMsg:   "You are not the author of this review.",
}

const (
	notFoundMsg       = "Review couldn't be found"
	churchNotFoundMsg = "Church couldn't be found"
	userNotFoundMsg   = "User couldn't be found"
)

// Handler is the feature-level entry point for reviews.
type Handler struct {
	DB   *mongo.Database
	Errs *apierr.Writer
	Log  *zap.Logger
}

// NewHandler constructs a reviews handler bound to its dependencies.
func NewHandler(db *mongo.Database, errs *apierr.Writer, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Errs: errs, Log: logger}
}

// reviewPayload is the create/update request body. The rating must be
// supplied explicitly on every write; the body is optional free text.
type reviewPayload struct {
	Rating *int   `json:"rating"`
	Body   string `json:"body"`
}

func (p reviewPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Rating, validation.NotNil, validation.Min(1), validation.Max(5)),
		validation.Field(&p.Body, validation.Length(0, 5000)),
	)
}

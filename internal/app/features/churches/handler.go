// internal/app/features/churches/handler.go
package churches

import (
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/policy/ownerpolicy"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/geocode"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// policy gates every church mutation: only church representatives may
// create listings, and only the owning representative may change one.
var policy = ownerpolicy.Policy{
	RequiredRole:  models.RoleChurchRep,
	RoleDeniedMsg: "Only church representatives can manage church listings.",
	NotOwnerMsg:   "You are not authorized to manage this church.",
}

const notFoundMsg = "Church couldn't be found"

// Handler is the feature-level entry point for church listings.
type Handler struct {
	DB   *mongo.Database
	Errs *apierr.Writer
	Geo  *geocode.Client
	Log  *zap.Logger
}

// NewHandler constructs a churches handler bound to its dependencies.
func NewHandler(db *mongo.Database, errs *apierr.Writer, geo *geocode.Client, logger *zap.Logger) *Handler {
	return &Handler{
		DB:   db,
		Errs: errs,
		Geo:  geo,
		Log:  logger,
	}
}

// internal/app/features/churchattrs/handler.go

// Package churchattrs serves the descriptive attribute profiles published
// under church listings. Reads are public; every mutation requires the
// representative that owns the parent church, resolved transitively.
package churchattrs

import (
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/policy/ownerpolicy"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var policy = ownerpolicy.Policy{
	RequiredRole:  models.RoleChurchRep,
	RoleDeniedMsg: "Only church representatives can manage church attributes.",
	NotOwnerMsg:   "You are not authorized to manage this church's attributes.",
}

const (
	notFoundMsg       = "Church attribute couldn't be found"
	churchNotFoundMsg = "Church couldn't be found"
)

// Handler is the feature-level entry point for church attributes.
type Handler struct {
	DB   *mongo.Database
	Errs *apierr.Writer
	Log  *zap.Logger
}

// NewHandler constructs a churchattrs handler bound to its dependencies.
func NewHandler(db *mongo.Database, errs *apierr.Writer, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Errs: errs, Log: logger}
}

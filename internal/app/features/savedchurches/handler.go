// internal/app/features/savedchurches/handler.go

// Package savedchurches serves churchgoers' bookmarked churches. The whole
// surface is private: a churchgoer only ever sees and manages their own
// bookmarks.
package savedchurches

import (
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/policy/ownerpolicy"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var policy = ownerpolicy.Policy{
	RequiredRole:  models.RoleChurchgoer,
	RoleDeniedMsg: "Only churchgoers can save churches.",
	NotOwnerMsg:   "You are not authorized to manage this saved church.",
}

const (
	notFoundMsg       = "Saved church couldn't be found"
	churchNotFoundMsg = "Church couldn't be found"
)

// Handler is the feature-level entry point for saved churches.
type Handler struct {
	DB   *mongo.Database
	Errs *apierr.Writer
	Log  *zap.Logger
}

// NewHandler constructs a savedchurches handler bound to its dependencies.
func NewHandler(db *mongo.Database, errs *apierr.Writer, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Errs: errs, Log: logger}
}

// internal/app/features/users/handler.go

// Package users serves account signup, profiles, and account removal.
// Profile reads are public; updating or deleting an account is strictly
// self-service, for either role.
package users

import (
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const (
	notFoundMsg = "User couldn't be found"
	notSelfMsg  = "You can only manage your own account."
	dupEmailMsg = "A user with this email already exists"
)

// Handler is the feature-level entry point for user accounts.
type Handler struct {
	DB   *mongo.Database
	Errs *apierr.Writer
	SM   *auth.SessionManager
	Log  *zap.Logger
}

// NewHandler constructs a users handler bound to its dependencies.
func NewHandler(db *mongo.Database, errs *apierr.Writer, sm *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Errs: errs, SM: sm, Log: logger}
}

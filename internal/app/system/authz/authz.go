// internal/app/system/authz/authz.go
package authz

import (
	"net/http"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/auth"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/normalize"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCtx returns the caller's canonical role, Mongo ObjectID, and a found
// flag. If no user is present in context or the session user ID is
// malformed, it returns "visitor", NilObjectID, false — callers can trust
// that ok=true means a valid, authenticated user with a valid ObjectID.
func UserCtx(r *http.Request) (role string, userID primitive.ObjectID, ok bool) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		// Malformed user ID in session - fail closed.
		return "visitor", primitive.NilObjectID, false
	}
	return normalize.Role(u.Role), userID, true
}

// IsChurchgoer reports whether the current request's user is a churchgoer.
func IsChurchgoer(r *http.Request) bool {
	role, _, ok := UserCtx(r)
	return ok && role == models.RoleChurchgoer
}

// IsChurchRep reports whether the current request's user is a church
// representative.
func IsChurchRep(r *http.Request) bool {
	role, _, ok := UserCtx(r)
	return ok && role == models.RoleChurchRep
}

// HasAnyRole reports whether the current request's user holds any of the
// given roles. Returns false if no user is present.
func HasAnyRole(r *http.Request, roles ...string) bool {
	cur, _, ok := UserCtx(r)
	if !ok {
		return false
	}
	for _, want := range roles {
		if cur == normalize.Role(want) {
			return true
		}
	}
	return false
}

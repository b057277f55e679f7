// internal/app/features/users/profile.go
package users

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/users"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/authz"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/httpjson"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/indexes"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/normalize"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// HandleGet serves a user's public profile. The password hash never
// serializes.
//
// Route: GET /api/users/{userID}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "userID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	u, err := userstore.New(h.DB).GetByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, u)
}

// self authorizes a profile mutation: the target must be the caller.
// There is no role gate here, both roles manage their own account.
func (h *Handler) self(r *http.Request) (primitive.ObjectID, error) {
	_, uid, ok := authz.UserCtx(r)
	if !ok {
		return primitive.NilObjectID, apierr.Unauthorized("Authentication required")
	}
	target, err := primitive.ObjectIDFromHex(chi.URLParam(r, "userID"))
	if err != nil {
		return primitive.NilObjectID, apierr.NotFound(notFoundMsg)
	}
	if target != uid {
		return primitive.NilObjectID, apierr.Forbidden(notSelfMsg)
	}
	return uid, nil
}

// HandleUpdate merges the supplied profile fields into the caller's own
// account. Role is immutable.
//
// Route: PUT /api/users/{userID}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	uid, err := h.self(r)
	if err != nil {
		h.Errs.Write(w, r, err)
		return
	}

	var p updatePayload
	if err := httpjson.Decode(r, &p); err != nil {
		h.Errs.Write(w, r, err)
		return
	}
	role, _, _ := authz.UserCtx(r)
	if err := p.Validate(role); err != nil {
		h.Errs.Write(w, r, apierr.Validation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := userstore.New(h.DB)
	set := bson.M{}

	if p.Email != nil {
		email := normalize.Email(*p.Email)
		if other, err := store.GetByEmail(ctx, email); err == nil {
			if other.ID != uid {
				h.Errs.Write(w, r, apierr.BadRequest(dupEmailMsg))
				return
			}
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			h.Errs.Write(w, r, apierr.Internal(err))
			return
		}
		set["email"] = email
	}
	if p.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*p.Password), bcrypt.DefaultCost)
		if err != nil {
			h.Errs.Write(w, r, apierr.Internal(err))
			return
		}
		set["hashed_password"] = hash
	}
	if p.FirstName != nil {
		set["first_name"] = *p.FirstName
	}
	if p.LastName != nil {
		set["last_name"] = *p.LastName
	}
	if p.Username != nil {
		set["username"] = *p.Username
	}
	if p.ChurchName != nil {
		set["church_name"] = *p.ChurchName
	}
	if len(set) == 0 {
		h.Errs.Write(w, r, apierr.BadRequest("No updatable fields provided"))
		return
	}

	u, err := store.Update(ctx, uid, set)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}
	if err != nil {
		if indexes.IsDuplicateKey(err) {
			h.Errs.Write(w, r, apierr.BadRequest(dupEmailMsg))
			return
		}
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, u)
}

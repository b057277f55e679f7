// internal/app/features/userprefs/handlers.go
package userprefs

import (
	"context"
	"errors"
	"net/http"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/policy/ownerpolicy"
	prefstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/userprefs"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/httpjson"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/timeouts"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleList serves the calling churchgoer's preference sets.
//
// Route: GET /api/preferences
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	uid, err := policy.Allow(r)
	if err != nil {
		h.Errs.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	out, err := prefstore.New(h.DB).ListByUser(ctx, uid)
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, out)
}

// HandleCreate records a new preference set for the calling churchgoer.
//
// Route: POST /api/preferences
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	uid, err := policy.Allow(r)
	if err != nil {
		h.Errs.Write(w, r, err)
		return
	}

	var p prefPayload
	if err := httpjson.Decode(r, &p); err != nil {
		h.Errs.Write(w, r, err)
		return
	}
	if err := p.Validate(); err != nil {
		h.Errs.Write(w, r, apierr.Validation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	pref := models.UserPreference{
		UserID:        uid,
		Size:          p.Size,
		AgeGroup:      p.AgeGroup,
		Ethnicity:     p.Ethnicity,
		Language:      p.Language,
		Denomination:  p.Denomination,
		ServiceDay:    p.ServiceDay,
		ServiceTime:   p.ServiceTime,
		Volunteering:  p.Volunteering,
		Participatory: p.Participatory,
	}
	if err := prefstore.New(h.DB).Insert(ctx, &pref); err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusCreated, pref)
}

// HandleGet serves one of the caller's preference sets.
//
// Route: GET /api/preferences/{preferenceID}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "preferenceID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	resolver := ownerpolicy.DirectOwner(h.DB, "userprefs", oid, notFoundMsg)
	if _, err := policy.AllowOwner(ctx, r, resolver); err != nil {
		h.Errs.Write(w, r, err)
		return
	}

	pref, err := prefstore.New(h.DB).GetByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, pref)
}

// HandleUpdate merges the supplied fields into a preference set. Owner only.
//
// Route: PUT /api/preferences/{preferenceID}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "preferenceID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	resolver := ownerpolicy.DirectOwner(h.DB, "userprefs", oid, notFoundMsg)
	if _, err := policy.AllowOwner(ctx, r, resolver); err != nil {
		h.Errs.Write(w, r, err)
		return
	}

	var p prefPayload
	if err := httpjson.Decode(r, &p); err != nil {
		h.Errs.Write(w, r, err)
		return
	}
	if err := p.Validate(); err != nil {
		h.Errs.Write(w, r, apierr.Validation(err))
		return
	}
	set := p.set()
	if len(set) == 0 {
		h.Errs.Write(w, r, apierr.BadRequest("No updatable fields provided"))
		return
	}

	pref, err := prefstore.New(h.DB).Update(ctx, oid, set)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, pref)
}

// HandleDelete removes one of the caller's preference sets.
//
// Route: DELETE /api/preferences/{preferenceID}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "preferenceID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	resolver := ownerpolicy.DirectOwner(h.DB, "userprefs", oid, notFoundMsg)
	if _, err := policy.AllowOwner(ctx, r, resolver); err != nil {
		h.Errs.Write(w, r, err)
		return
	}

	n, err := prefstore.New(h.DB).Delete(ctx, oid)
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	if n == 0 {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}
	h.Errs.JSON(w, http.StatusOK, map[string]string{"message": "Successfully deleted"})
}

// internal/app/features/volunteerops/item.go
package volunteerops

import (
	"context"
	"errors"
	"net/http"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/policy/ownerpolicy"
	volopstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/volunteerops"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/htmlsanitize"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/httpjson"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleGet serves one volunteer opportunity. Public.
//
// Route: GET /api/volunteer-ops/{opportunityID}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "opportunityID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	op, err := volopstore.New(h.DB).GetByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, op)
}

// HandleUpdate replaces an opportunity's fields. Only the parent church's
// owner may update it.
//
// Route: PUT /api/volunteer-ops/{opportunityID}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "opportunityID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	resolver := ownerpolicy.ParentChurchOwner(h.DB, "volunteerops", oid, notFoundMsg)
	if _, err := policy.AllowOwner(ctx, r, resolver); err != nil {
		h.Errs.Write(w, r, err)
		return
	}

	var p opPayload
	if err := httpjson.Decode(r, &p); err != nil {
		h.Errs.Write(w, r, err)
		return
	}
	if err := p.Validate(); err != nil {
		h.Errs.Write(w, r, apierr.Validation(err))
		return
	}

	op, err := volopstore.New(h.DB).Update(ctx, oid, bson.M{
		"title":        p.Title,
		"description":  htmlsanitize.Sanitize(p.Description),
		"active":       *p.Active,
		"members_only": *p.MembersOnly,
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, op)
}

// HandleDelete removes one opportunity. Only the parent church's owner may
// delete it.
//
// Route: DELETE /api/volunteer-ops/{opportunityID}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "opportunityID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	resolver := ownerpolicy.ParentChurchOwner(h.DB, "volunteerops", oid, notFoundMsg)
	if _, err := policy.AllowOwner(ctx, r, resolver); err != nil {
		h.Errs.Write(w, r, err)
		return
	}

	n, err := volopstore.New(h.DB).Delete(ctx, oid)
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

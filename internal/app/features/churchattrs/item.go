// internal/app/features/churchattrs/item.go
package churchattrs

import (
	"context"
	"errors"
	"net/http"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/policy/ownerpolicy"
	attrstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/churchattrs"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/httpjson"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleGet serves one attribute record. Public.
//
// Route: GET /api/attributes/{attributeID}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "attributeID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	a, err := attrstore.New(h.DB).GetByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, a)
}

// HandleUpdate merges the supplied fields into an attribute record. Only the
// parent church's owner may update it.
//
// Route: PUT /api/attributes/{attributeID}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "attributeID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	resolver := ownerpolicy.ParentChurchOwner(h.DB, "churchattrs", oid, notFoundMsg)
	if _, err := policy.AllowOwner(ctx, r, resolver); err != nil {
		h.Errs.Write(w, r, err)
		return
	}

	var p attrPayload
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

	a, err := attrstore.New(h.DB).Update(ctx, oid, set)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, a)
}

// HandleDelete removes one attribute record. Only the parent church's owner
// may delete it.
//
// Route: DELETE /api/attributes/{attributeID}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "attributeID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	resolver := ownerpolicy.ParentChurchOwner(h.DB, "churchattrs", oid, notFoundMsg)
	if _, err := policy.AllowOwner(ctx, r, resolver); err != nil {
		h.Errs.Write(w, r, err)
		return
	}

	n, err := attrstore.New(h.DB).Delete(ctx, oid)
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

// internal/app/features/reviews/item.go
package reviews

import (
	"context"
	"errors"
	"net/http"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/policy/ownerpolicy"
	reviewstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/reviews"
	userstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/users"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/htmlsanitize"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/httpjson"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleGet serves one review. Public.
//
// Route: GET /api/reviews/{reviewID}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "reviewID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rv, err := reviewstore.New(h.DB).GetByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, rv)
}

// HandleListByUser serves every review a churchgoer has written, newest
// first. Public.
//
// Route: GET /api/users/{userID}/reviews
func (h *Handler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "userID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(userNotFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := userstore.New(h.DB).GetByID(ctx, userID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.Errs.Write(w, r, apierr.NotFound(userNotFoundMsg))
			return
		}
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}

	out, err := reviewstore.New(h.DB).ListByUser(ctx, userID)
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, out)
}

// HandleUpdate replaces a review's rating and body. Author only.
//
// Route: PUT /api/reviews/{reviewID}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "reviewID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	resolver := ownerpolicy.DirectOwner(h.DB, "reviews", oid, notFoundMsg)
	if _, err := policy.AllowOwner(ctx, r, resolver); err != nil {
		h.Errs.Write(w, r, err)
		return
	}

	var p reviewPayload
	if err := httpjson.Decode(r, &p); err != nil {
		h.Errs.Write(w, r, err)
		return
	}
	if err := p.Validate(); err != nil {
		h.Errs.Write(w, r, apierr.Validation(err))
		return
	}

	rv, err := reviewstore.New(h.DB).Update(ctx, oid, bson.M{
		"rating": *p.Rating,
		"body":   htmlsanitize.Sanitize(p.Body),
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, rv)
}

// HandleDelete removes a review. Author only.
//
// Route: DELETE /api/reviews/{reviewID}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "reviewID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	resolver := ownerpolicy.DirectOwner(h.DB, "reviews", oid, notFoundMsg)
	if _, err := policy.AllowOwner(ctx, r, resolver); err != nil {
		h.Errs.Write(w, r, err)
		return
	}

	n, err := reviewstore.New(h.DB).Delete(ctx, oid)
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

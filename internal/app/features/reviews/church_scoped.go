// internal/app/features/reviews/church_scoped.go
package reviews

import (
	"context"
	"errors"
	"net/http"

	churchstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/churches"
	reviewstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/reviews"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/htmlsanitize"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/httpjson"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/timeouts"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleListByChurch serves a church's reviews, newest first. Public.
//
// Route: GET /api/churches/{churchID}/reviews
func (h *Handler) HandleListByChurch(w http.ResponseWriter, r *http.Request) {
	churchID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "churchID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(churchNotFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := churchstore.New(h.DB).GetByID(ctx, churchID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.Errs.Write(w, r, apierr.NotFound(churchNotFoundMsg))
			return
		}
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}

	out, err := reviewstore.New(h.DB).ListByChurch(ctx, churchID)
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, out)
}

// HandleCreate posts a review of a church by the calling churchgoer.
//
// Route: POST /api/churches/{churchID}/reviews
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Role gate first; a representative probing a bogus church ID learns
	// nothing about its existence.
	uid, err := policy.Allow(r)
	if err != nil {
		h.Errs.Write(w, r, err)
		return
	}

	churchID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "churchID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(churchNotFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := churchstore.New(h.DB).GetByID(ctx, churchID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			h.Errs.Write(w, r, apierr.NotFound(churchNotFoundMsg))
			return
		}
		h.Errs.Write(w, r, apierr.Internal(err))
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

	rv := models.Review{
		ChurchID: churchID,
		UserID:   uid,
		Rating:   *p.Rating,
		Body:     htmlsanitize.Sanitize(p.Body),
	}
	if err := reviewstore.New(h.DB).Insert(ctx, &rv); err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusCreated, rv)
}

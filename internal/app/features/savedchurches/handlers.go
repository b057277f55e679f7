// internal/app/features/savedchurches/handlers.go
package savedchurches

import (
	"context"
	"errors"
	"net/http"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/policy/ownerpolicy"
	churchstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/churches"
	savedstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/savedchurches"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/httpjson"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/indexes"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/timeouts"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// savePayload is the create request body.
type savePayload struct {
	ChurchID string `json:"churchId"`
}

func (p savePayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ChurchID, validation.Required),
	)
}

// HandleList serves the calling churchgoer's bookmarks, newest first.
//
// Route: GET /api/saved
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	uid, err := policy.Allow(r)
	if err != nil {
		h.Errs.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	out, err := savedstore.New(h.DB).ListByUser(ctx, uid)
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, out)
}

// HandleCreate bookmarks a church for the calling churchgoer. Saving the
// same church twice is a validation error.
//
// Route: POST /api/saved
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	uid, err := policy.Allow(r)
	if err != nil {
		h.Errs.Write(w, r, err)
		return
	}

	var p savePayload
	if err := httpjson.Decode(r, &p); err != nil {
		h.Errs.Write(w, r, err)
		return
	}
	if err := p.Validate(); err != nil {
		h.Errs.Write(w, r, apierr.Validation(err))
		return
	}
	churchID, err := primitive.ObjectIDFromHex(p.ChurchID)
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

	store := savedstore.New(h.DB)

	// Friendly pre-check; the unique (user_id, church_id) index backstops
	// concurrent saves.
	if _, err := store.FindByUserAndChurch(ctx, uid, churchID); err == nil {
		h.Errs.Write(w, r, apierr.BadRequest("Church is already saved"))
		return
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}

	sc := models.SavedChurch{UserID: uid, ChurchID: churchID}
	if err := store.Insert(ctx, &sc); err != nil {
		if indexes.IsDuplicateKey(err) {
			h.Errs.Write(w, r, apierr.BadRequest("Church is already saved"))
			return
		}
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusCreated, sc)
}

// HandleDelete removes one of the caller's bookmarks.
//
// Route: DELETE /api/saved/{savedID}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "savedID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	resolver := ownerpolicy.DirectOwner(h.DB, "savedchurches", oid, notFoundMsg)
	if _, err := policy.AllowOwner(ctx, r, resolver); err != nil {
		h.Errs.Write(w, r, err)
		return
	}

	n, err := savedstore.New(h.DB).Delete(ctx, oid)
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

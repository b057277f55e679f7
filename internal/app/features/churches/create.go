// internal/app/features/churches/create.go
package churches

import (
	"context"
	"errors"
	"net/http"

	churchstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/churches"
	userstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/users"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/geocode"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/htmlsanitize"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/httpjson"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/indexes"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/normalize"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/timeouts"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleCreate creates a church listing owned by the calling representative.
//
// Route: POST /api/churches
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	uid, err := policy.Allow(r)
	if err != nil {
		h.Errs.Write(w, r, err)
		return
	}

	var p churchPayload
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

	store := churchstore.New(h.DB)

	// Pre-check the (name, address) uniqueness invariant for a friendly
	// message; the unique index still backstops concurrent creates.
	if _, err := store.FindByNameAddress(ctx, normalize.Name(p.Name), normalize.Name(p.Address)); err == nil {
		h.Errs.Write(w, r, apierr.BadRequest("A church with this name and address already exists"))
		return
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}

	ch := models.Church{
		UserID:      uid,
		Name:        normalize.Name(p.Name),
		Address:     normalize.Name(p.Address),
		City:        normalize.Name(p.City),
		State:       normalize.State(p.State),
		Email:       normalize.Email(p.Email),
		Website:     p.Website,
		ImageURL:    p.ImageURL,
		Phone:       p.Phone,
		Description: htmlsanitize.Sanitize(p.Description),
	}
	h.geocodeInto(ctx, &ch)

	if err := store.Insert(ctx, &ch); err != nil {
		if indexes.IsDuplicateKey(err) {
			h.Errs.Write(w, r, apierr.BadRequest("A church with this name and address already exists"))
			return
		}
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}

	if err := userstore.New(h.DB).AddChurch(ctx, uid, ch.ID); err != nil {
		// The listing exists; a failed back-reference update is logged but
		// does not fail the request.
		h.Log.Error("add church back-reference failed",
			zap.String("church_id", ch.ID.Hex()),
			zap.String("user_id", uid.Hex()),
			zap.Error(err))
	}

	h.Errs.JSON(w, http.StatusCreated, ch)
}

// geocodeInto resolves the church's address to coordinates, best-effort.
func (h *Handler) geocodeInto(ctx context.Context, ch *models.Church) {
	pt, err := h.Geo.Forward(ctx, ch.Address, ch.City, ch.State)
	switch {
	case err == nil:
		ch.Latitude = &pt.Latitude
		ch.Longitude = &pt.Longitude
	case errors.Is(err, geocode.ErrDisabled):
		// Not configured; listings simply go without coordinates.
	case errors.Is(err, geocode.ErrNotFound):
		h.Log.Info("address did not geocode",
			zap.String("address", ch.Address),
			zap.String("city", ch.City))
	default:
		h.Log.Warn("geocoding failed", zap.Error(err))
	}
}

// internal/app/features/churches/update.go
package churches

import (
	"context"
	"errors"
	"net/http"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/policy/ownerpolicy"
	churchstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/churches"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/htmlsanitize"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/httpjson"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/indexes"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/normalize"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/timeouts"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleUpdate replaces a church listing's fields. Listings are validated
// full-field on update, same as on create.
//
// Route: PUT /api/churches/{churchID}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "churchID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := policy.AllowOwner(ctx, r, ownerpolicy.ChurchOwner(h.DB, oid)); err != nil {
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

	store := churchstore.New(h.DB)

	name := normalize.Name(p.Name)
	address := normalize.Name(p.Address)

	// Same uniqueness invariant as on create, skipping the listing itself.
	if existing, err := store.FindByNameAddress(ctx, name, address); err == nil {
		if existing.ID != oid {
			h.Errs.Write(w, r, apierr.BadRequest("A church with this name and address already exists"))
			return
		}
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}

	city := normalize.Name(p.City)
	state := normalize.State(p.State)

	set := bson.M{
		"name":        name,
		"name_ci":     text.Fold(name),
		"address":     address,
		"address_ci":  text.Fold(address),
		"city":        city,
		"city_ci":     text.Fold(city),
		"state":       state,
		"state_ci":    text.Fold(state),
		"email":       normalize.Email(p.Email),
		"website":     p.Website,
		"image_url":   p.ImageURL,
		"phone":       p.Phone,
		"description": htmlsanitize.Sanitize(p.Description),
	}

	// Re-geocode the possibly changed address, still best-effort. When the
	// new address does not resolve, drop any stored coordinates rather than
	// leave them pointing at the old address.
	var unset bson.M
	loc := models.Church{Address: address, City: city, State: state}
	h.geocodeInto(ctx, &loc)
	if loc.Latitude != nil {
		set["latitude"] = *loc.Latitude
		set["longitude"] = *loc.Longitude
	} else {
		unset = bson.M{"latitude": "", "longitude": ""}
	}

	ch, err := store.Update(ctx, oid, set, unset)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}
	if err != nil {
		if indexes.IsDuplicateKey(err) {
			h.Errs.Write(w, r, apierr.BadRequest("A church with this name and address already exists"))
			return
		}
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, ch)
}

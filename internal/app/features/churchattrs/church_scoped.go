// internal/app/features/churchattrs/church_scoped.go
package churchattrs

import (
	"context"
	"errors"
	"net/http"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/policy/ownerpolicy"
	attrstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/churchattrs"
	churchstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/churches"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/httpjson"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/timeouts"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleListByChurch serves a church's attribute records. Public.
//
// Route: GET /api/churches/{churchID}/attributes
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

	out, err := attrstore.New(h.DB).ListByChurch(ctx, churchID)
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, out)
}

// HandleCreate publishes an attribute record under a church. Only the
// church's owning representative may create one.
//
// Route: POST /api/churches/{churchID}/attributes
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	churchID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "churchID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(churchNotFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	uid, err := policy.AllowOwner(ctx, r, ownerpolicy.ChurchOwner(h.DB, churchID))
	if err != nil {
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

	a := models.ChurchAttribute{
		ChurchID:      churchID,
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
	if err := attrstore.New(h.DB).Insert(ctx, &a); err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusCreated, a)
}

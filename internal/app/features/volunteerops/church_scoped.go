// internal/app/features/volunteerops/church_scoped.go
package volunteerops

import (
	"context"
	"errors"
	"net/http"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/policy/ownerpolicy"
	churchstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/churches"
	volopstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/volunteerops"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/htmlsanitize"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/httpjson"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/timeouts"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleListByChurch serves a church's volunteer opportunities, newest
// first. Public.
//
// Route: GET /api/churches/{churchID}/volunteer-ops
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

	out, err := volopstore.New(h.DB).ListByChurch(ctx, churchID)
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, out)
}

// HandleCreate lists a volunteer opportunity under a church. Only the
// church's owning representative may create one.
//
// Route: POST /api/churches/{churchID}/volunteer-ops
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	churchID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "churchID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(churchNotFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := policy.AllowOwner(ctx, r, ownerpolicy.ChurchOwner(h.DB, churchID)); err != nil {
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

	op := models.VolunteerOp{
		ChurchID:    churchID,
		Title:       p.Title,
		Description: htmlsanitize.Sanitize(p.Description),
		Active:      *p.Active,
		MembersOnly: *p.MembersOnly,
	}
	if err := volopstore.New(h.DB).Insert(ctx, &op); err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusCreated, op)
}

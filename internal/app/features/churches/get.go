// internal/app/features/churches/get.go
package churches

import (
	"context"
	"errors"
	"net/http"

	churchstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/churches"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleGet serves a single church listing. Public.
//
// Route: GET /api/churches/{churchID}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	// A malformed identifier never matches a listing, so it short-circuits
	// to the same not-found answer without querying the store.
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "churchID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ch, err := churchstore.New(h.DB).GetByID(ctx, oid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, ch)
}

// internal/app/features/churches/delete.go
package churches

import (
	"context"
	"net/http"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/policy/ownerpolicy"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/cascade"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/timeouts"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/txn"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleDelete removes a church and all of its dependent records.
//
// Route: DELETE /api/churches/{churchID}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "churchID"))
	if err != nil {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	uid, err := policy.AllowOwner(ctx, r, ownerpolicy.ChurchOwner(h.DB, oid))
	if err != nil {
		h.Errs.Write(w, r, err)
		return
	}

	err = txn.Run(ctx, h.DB, h.Log, func(ctx context.Context) error {
		return cascade.Church(ctx, h.DB, oid, uid)
	})
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}

	h.Errs.JSON(w, http.StatusOK, map[string]string{"message": "Successfully deleted"})
}

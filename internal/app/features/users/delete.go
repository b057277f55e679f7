// internal/app/features/users/delete.go
package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/cascade"
	userstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/users"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/timeouts"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/txn"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// HandleDelete removes the caller's own account and, depending on role,
// either their personal records or every church they represent with its
// full dependent cascade. Ends the session afterwards.
//
// Route: DELETE /api/users/{userID}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	uid, err := h.self(r)
	if err != nil {
		h.Errs.Write(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	u, err := userstore.New(h.DB).GetByID(ctx, uid)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.Errs.Write(w, r, apierr.NotFound(notFoundMsg))
		return
	}
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}

	err = txn.Run(ctx, h.DB, h.Log, func(ctx context.Context) error {
		if u.Role == models.RoleChurchRep {
			return cascade.ChurchRep(ctx, h.DB, uid)
		}
		return cascade.Churchgoer(ctx, h.DB, uid)
	})
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}

	if err := h.SM.SignOut(w, r); err != nil {
		h.Log.Warn("post-delete sign-out failed",
			zap.String("user_id", uid.Hex()),
			zap.Error(err))
	}
	h.Errs.JSON(w, http.StatusOK, map[string]string{"message": "Successfully deleted"})
}

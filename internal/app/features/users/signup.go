// internal/app/features/users/signup.go
package users

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/users"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/auth"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/httpjson"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/indexes"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/normalize"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/timeouts"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// HandleSignup creates an account and signs the new user in.
//
// Route: POST /api/users
func (h *Handler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var p signupPayload
	if err := httpjson.Decode(r, &p); err != nil {
		h.Errs.Write(w, r, err)
		return
	}
	p.Role = normalize.Role(p.Role)
	if err := p.Validate(); err != nil {
		h.Errs.Write(w, r, apierr.Validation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	store := userstore.New(h.DB)

	// Friendly pre-check; the unique email index backstops concurrent
	// signups.
	if _, err := store.GetByEmail(ctx, p.Email); err == nil {
		h.Errs.Write(w, r, apierr.BadRequest(dupEmailMsg))
		return
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}

	u := models.User{
		Role:           p.Role,
		Email:          normalize.Email(p.Email),
		HashedPassword: hash,
	}
	switch p.Role {
	case models.RoleChurchgoer:
		u.FirstName = &p.FirstName
		u.LastName = &p.LastName
		u.Username = &p.Username
	case models.RoleChurchRep:
		u.ChurchName = &p.ChurchName
	}

	if err := store.Insert(ctx, &u); err != nil {
		if indexes.IsDuplicateKey(err) {
			h.Errs.Write(w, r, apierr.BadRequest(dupEmailMsg))
			return
		}
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}

	if err := h.SM.SignIn(w, r, &auth.SessionUser{ID: u.ID.Hex(), Role: u.Role, Email: u.Email}); err != nil {
		// The account exists; the caller just has to log in explicitly.
		h.Log.Warn("post-signup sign-in failed",
			zap.String("user_id", u.ID.Hex()),
			zap.Error(err))
	}

	h.Errs.JSON(w, http.StatusCreated, u)
}

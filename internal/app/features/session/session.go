// internal/app/features/session/session.go

// Package session serves cookie-session login and logout.
package session

import (
	"context"
	"errors"
	"net/http"

	userstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/users"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/auth"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/httpjson"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Handler is the feature-level entry point for session management.
type Handler struct {
	DB   *mongo.Database
	Errs *apierr.Writer
	SM   *auth.SessionManager
	Log  *zap.Logger
}

// NewHandler constructs a session handler bound to its dependencies.
func NewHandler(db *mongo.Database, errs *apierr.Writer, sm *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Errs: errs, SM: sm, Log: logger}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p loginPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Email, validation.Required, is.EmailFormat),
		validation.Field(&p.Password, validation.Required),
	)
}

// HandleLogin verifies credentials and starts a session.
//
// Route: POST /api/session
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var p loginPayload
	if err := httpjson.Decode(r, &p); err != nil {
		h.Errs.Write(w, r, err)
		return
	}
	if err := p.Validate(); err != nil {
		h.Errs.Write(w, r, apierr.Validation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	// Unknown account and wrong password answer identically.
	u, err := userstore.New(h.DB).GetByEmail(ctx, p.Email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		h.Errs.Write(w, r, apierr.Unauthorized("Invalid credentials"))
		return
	}
	if err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	if bcrypt.CompareHashAndPassword(u.HashedPassword, []byte(p.Password)) != nil {
		h.Errs.Write(w, r, apierr.Unauthorized("Invalid credentials"))
		return
	}

	su := &auth.SessionUser{ID: u.ID.Hex(), Role: u.Role, Email: u.Email}
	if err := h.SM.SignIn(w, r, su); err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, u)
}

// HandleCurrent reports the caller's session identity. Answers user: null
// for anonymous callers so clients can restore state without error noise.
//
// Route: GET /api/session
func (h *Handler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		h.Errs.JSON(w, http.StatusOK, map[string]any{"user": nil})
		return
	}
	h.Errs.JSON(w, http.StatusOK, map[string]any{"user": u})
}

// HandleLogout ends the caller's session. Idempotent.
//
// Route: DELETE /api/session
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SM.SignOut(w, r); err != nil {
		h.Errs.Write(w, r, apierr.Internal(err))
		return
	}
	h.Errs.JSON(w, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// Routes mounts the session surface at /api/session.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleLogin)
	r.Get("/", h.HandleCurrent)
	r.Delete("/", h.HandleLogout)
	return r
}

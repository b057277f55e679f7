// internal/app/features/users/routes.go
package users

import (
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the users surface. The reviews router is the author-scoped
// review listing, mounted here to share the {userID} parameter.
func Routes(h *Handler, sm *auth.SessionManager, reviews chi.Router) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleSignup)
	r.Get("/{userID}", h.HandleGet)

	r.Group(func(r chi.Router) {
		r.Use(sm.RequireSignedIn)
		r.Put("/{userID}", h.HandleUpdate)
		r.Delete("/{userID}", h.HandleDelete)
	})

	r.Mount("/{userID}/reviews", reviews)

	return r
}

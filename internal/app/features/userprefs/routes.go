// internal/app/features/userprefs/routes.go
package userprefs

import (
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the preferences surface at /api/preferences. Everything here
// requires a signed-in caller.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Get("/{preferenceID}", h.HandleGet)
	r.Put("/{preferenceID}", h.HandleUpdate)
	r.Delete("/{preferenceID}", h.HandleDelete)
	return r
}

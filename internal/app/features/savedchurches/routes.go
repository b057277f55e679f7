// internal/app/features/savedchurches/routes.go
package savedchurches

import (
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the saved-churches surface at /api/saved. Everything here
// requires a signed-in caller.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Get("/", h.HandleList)
	r.Post("/", h.HandleCreate)
	r.Delete("/{savedID}", h.HandleDelete)
	return r
}

// internal/app/features/volunteerops/routes.go
package volunteerops

import (
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// ChurchRoutes is the church-scoped sub-surface, mounted under
// /api/churches/{churchID}/volunteer-ops by the churches feature.
func ChurchRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleListByChurch)
	r.Group(func(r chi.Router) {
		r.Use(sm.RequireSignedIn)
		r.Post("/", h.HandleCreate)
	})
	return r
}

// Routes is the item surface, mounted at /api/volunteer-ops.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Get("/{opportunityID}", h.HandleGet)
	r.Group(func(r chi.Router) {
		r.Use(sm.RequireSignedIn)
		r.Put("/{opportunityID}", h.HandleUpdate)
		r.Delete("/{opportunityID}", h.HandleDelete)
	})
	return r
}

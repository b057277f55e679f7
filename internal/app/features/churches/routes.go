// internal/app/features/churches/routes.go
package churches

import (
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the churches surface. The attrs, reviews, and volops routers
// are the church-scoped sub-surfaces of their features; they are mounted here
// so the whole subtree shares the {churchID} parameter.
func Routes(h *Handler, sm *auth.SessionManager, attrs, reviews, volops chi.Router) chi.Router {
	r := chi.NewRouter()

	// Directory browsing is open to visitors.
	r.Get("/", h.HandleList)
	r.Get("/{churchID}", h.HandleGet)

	r.Group(func(r chi.Router) {
		r.Use(sm.RequireSignedIn)
		r.Post("/", h.HandleCreate)
		r.Put("/{churchID}", h.HandleUpdate)
		r.Delete("/{churchID}", h.HandleDelete)
	})

	r.Mount("/{churchID}/attributes", attrs)
	r.Mount("/{churchID}/reviews", reviews)
	r.Mount("/{churchID}/volunteer-ops", volops)

	return r
}

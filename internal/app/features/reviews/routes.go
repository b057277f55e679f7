// internal/app/features/reviews/routes.go
package reviews

import (
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// ChurchRoutes is the church-scoped sub-surface, mounted under
// /api/churches/{churchID}/reviews by the churches feature.
func ChurchRoutes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleListByChurch)
	r.Group(func(r chi.Router) {
		r.Use(sm.RequireSignedIn)
		r.Post("/", h.HandleCreate)
	})
	return r
}

// UserRoutes is the author-scoped sub-surface, mounted under
// /api/users/{userID}/reviews by the users feature.
func UserRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleListByUser)
	return r
}

// Routes is the item surface, mounted at /api/reviews.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Get("/{reviewID}", h.HandleGet)
	r.Group(func(r chi.Router) {
		r.Use(sm.RequireSignedIn)
		r.Put("/{reviewID}", h.HandleUpdate)
		r.Delete("/{reviewID}", h.HandleDelete)
	})
	return r
}

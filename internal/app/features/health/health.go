// internal/app/features/health/health.go

// Package health serves the liveness endpoint.
package health

import (
	"context"
	"net/http"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler answers health checks with a database ping.
type Handler struct {
	DB   *mongo.Database
	Errs *apierr.Writer
	Log  *zap.Logger
}

// NewHandler constructs a health handler bound to its dependencies.
func NewHandler(db *mongo.Database, errs *apierr.Writer, logger *zap.Logger) *Handler {
	return &Handler{DB: db, Errs: errs, Log: logger}
}

// HandleCheck pings the database and reports readiness.
//
// Route: GET /health
func (h *Handler) HandleCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.DB.Client().Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Warn("health ping failed", zap.Error(err))
		h.Errs.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}
	h.Errs.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Routes mounts the health surface.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleCheck)
	return r
}

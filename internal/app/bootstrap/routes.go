// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	attrsfeature "github.com/Six5pAdes/ConGreG8-sub000/internal/app/features/churchattrs"
	churchesfeature "github.com/Six5pAdes/ConGreG8-sub000/internal/app/features/churches"
	healthfeature "github.com/Six5pAdes/ConGreG8-sub000/internal/app/features/health"
	reviewsfeature "github.com/Six5pAdes/ConGreG8-sub000/internal/app/features/reviews"
	savedfeature "github.com/Six5pAdes/ConGreG8-sub000/internal/app/features/savedchurches"
	sessionfeature "github.com/Six5pAdes/ConGreG8-sub000/internal/app/features/session"
	prefsfeature "github.com/Six5pAdes/ConGreG8-sub000/internal/app/features/userprefs"
	usersfeature "github.com/Six5pAdes/ConGreG8-sub000/internal/app/features/users"
	volopsfeature "github.com/Six5pAdes/ConGreG8-sub000/internal/app/features/volunteerops"
	userstore "github.com/Six5pAdes/ConGreG8-sub000/internal/app/store/users"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/apierr"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/auth"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/geocode"
	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/requestlog"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. It creates the session manager, mounts
// each feature's router under /api, and wires the cross-cutting middleware:
// request logging, CORS for the browser frontend, and session loading.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Fetch fresh user data on each request so role changes and account
	// deletions take effect immediately.
	sessionMgr.SetUserFetcher(userstore.NewFetcher(deps.MongoDatabase))

	db := deps.MongoDatabase
	errs := apierr.NewWriter(logger, appCfg.ExposeErrors)
	geo := geocode.New(appCfg.GeocodeBaseURL, appCfg.GeocodeAPIKey)

	r := chi.NewRouter()

	r.Use(requestlog.Middleware(logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   appCfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}).Handler)
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(db, errs, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	attrsHandler := attrsfeature.NewHandler(db, errs, logger)
	reviewsHandler := reviewsfeature.NewHandler(db, errs, logger)
	volopsHandler := volopsfeature.NewHandler(db, errs, logger)

	r.Route("/api", func(r chi.Router) {
		sessionHandler := sessionfeature.NewHandler(db, errs, sessionMgr, logger)
		r.Mount("/session", sessionfeature.Routes(sessionHandler))

		usersHandler := usersfeature.NewHandler(db, errs, sessionMgr, logger)
		r.Mount("/users", usersfeature.Routes(usersHandler, sessionMgr,
			reviewsfeature.UserRoutes(reviewsHandler)))

		churchesHandler := churchesfeature.NewHandler(db, errs, geo, logger)
		r.Mount("/churches", churchesfeature.Routes(churchesHandler, sessionMgr,
			attrsfeature.ChurchRoutes(attrsHandler, sessionMgr),
			reviewsfeature.ChurchRoutes(reviewsHandler, sessionMgr),
			volopsfeature.ChurchRoutes(volopsHandler, sessionMgr)))

		r.Mount("/attributes", attrsfeature.Routes(attrsHandler, sessionMgr))
		r.Mount("/reviews", reviewsfeature.Routes(reviewsHandler, sessionMgr))
		r.Mount("/volunteer-ops", volopsfeature.Routes(volopsHandler, sessionMgr))

		savedHandler := savedfeature.NewHandler(db, errs, logger)
		r.Mount("/saved", savedfeature.Routes(savedHandler, sessionMgr))

		prefsHandler := prefsfeature.NewHandler(db, errs, logger)
		r.Mount("/preferences", prefsfeature.Routes(prefsHandler, sessionMgr))
	})

	return r, nil
}

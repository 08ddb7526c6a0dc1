package server

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/docuvault/authgate-go/internal/audit"
	"github.com/docuvault/authgate-go/internal/authz"
	"github.com/docuvault/authgate-go/internal/handlers"
	"github.com/docuvault/authgate-go/internal/identity"
	mw2 "github.com/docuvault/authgate-go/internal/mw"
	"github.com/docuvault/authgate-go/internal/store"
	"github.com/docuvault/authgate-go/internal/version"
)

type Options struct {
	EnableCORS bool
	DevNoStore bool
}

type Deps struct {
	Docs     store.DocumentStore
	Users    store.UserStore
	Authz    authz.Authorizer
	Filter   *authz.ProfileFilter
	Identity identity.Resolver
	Audit    *audit.Log
}

func BuildRouter(d Deps, opts Options, mw ...func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	if opts.DevNoStore || os.Getenv("AUTHGATE_ENV") == "local" || os.Getenv("AUTHGATE_ENV") == "dev" {
		r.Use(mw2.NoStore)
	}

	// baseline
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	if opts.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:8088", "*"},
			AllowedMethods:   []string{"GET", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	for _, m := range mw {
		r.Use(m)
	}

	// tracing + logger
	r.Use(mw2.Trace())
	r.Use(mw2.Logger(mw2.LogOpts{
		SkipPaths:     []string{"/healthz", "/version"},
		RedactHeaders: []string{"Authorization"},
	}))

	docs := handlers.NewDocumentHandler(d.Docs, d.Authz, d.Audit)
	profile := handlers.NewProfileHandler(d.Users, d.Filter, d.Audit)
	auditH := handlers.NewAuditHandler(d.Audit)

	r.Get("/", statusHandler)
	r.Get("/healthz", healthCheckHandler)
	r.Get("/version", handlers.Version)

	r.Route("/api", func(api chi.Router) {
		api.Use(mw2.Identity(d.Identity))

		api.Get("/documents/{docID}", docs.Get)
		api.Delete("/documents/{docID}", docs.Delete)
		api.Put("/users/me", profile.Update)
	})

	r.Route("/admin", func(adm chi.Router) {
		adm.Use(mw2.Identity(d.Identity))
		adm.Get("/audit", auditH.Recent)
	})

	return r
}

func statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status": "Secure Auth App is running",
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"version": version.Version,
	})
}

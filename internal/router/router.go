package router

import (
	"asset-management-api/internal/config"
	"asset-management-api/internal/handler"
	"asset-management-api/internal/middleware"
	"log"
	"net/http"

	"github.com/gorilla/mux"
)

// Options carries the optional pieces of the router
type Options struct {
	Static  http.Handler
	Metrics *middleware.Metrics
	Logger  *log.Logger
}

// NewRouter creates a new router and sets up the routes with security middleware.
func NewRouter(h handler.APIHandler, cfg *config.Config, opts Options) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(h.NotFoundHandler)
	r.MethodNotAllowedHandler = http.HandlerFunc(h.MethodNotAllowedHandler)

	// Initialize security middleware
	securityMW := middleware.NewSecurityMiddleware(&cfg.Security)

	// Apply global middleware in order
	r.Use(securityMW.RequestID)
	r.Use(securityMW.SecurityHeaders)
	r.Use(securityMW.CORS)
	r.Use(securityMW.TrustedProxy)
	r.Use(securityMW.RateLimit)
	r.Use(middleware.Recovery(opts.Logger))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}
	r.Use(securityMW.RequestTimeout)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/login", h.LoginHandler).Methods("POST")

	// Resource operations
	api.HandleFunc("/assets", h.ListAssetsHandler).Methods("GET")
	api.HandleFunc("/assets", h.CreateAssetHandler).Methods("POST")
	api.HandleFunc("/assets/{id}", h.UpdateAssetHandler).Methods("PUT")
	api.HandleFunc("/workflows", h.ListWorkflowsHandler).Methods("GET")
	api.HandleFunc("/workflows", h.CreateWorkflowHandler).Methods("POST")
	api.HandleFunc("/users", h.ListUsersHandler).Methods("GET")
	api.HandleFunc("/users", h.CreateUserHandler).Methods("POST")

	api.HandleFunc("/upload", h.UploadHandler).Methods("POST")
	api.HandleFunc("/dashboard", h.DashboardHandler).Methods("GET")

	// Unknown API paths get JSON rather than the app shell
	api.PathPrefix("/").HandlerFunc(h.NotFoundHandler)

	// Health check and metrics
	r.HandleFunc("/health", h.HealthHandler).Methods("GET")
	if opts.Metrics != nil && cfg.Server.EnableMetrics {
		r.Handle("/metrics", opts.Metrics.Handler()).Methods("GET")
	}

	if opts.Static != nil {
		r.PathPrefix("/").Handler(opts.Static).Methods("GET", "HEAD")
	}

	return r
}

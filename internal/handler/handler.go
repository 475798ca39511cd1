package handler

import (
	"asset-management-api/internal/auth"
	"asset-management-api/internal/service"
	"asset-management-api/pkg/errors"
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Constants for timeouts
const (
	DefaultTimeout     = 10 * time.Second
	HealthCheckTimeout = 2 * time.Second
)

// DependencyChecker reports whether an outbound dependency answers
type DependencyChecker interface {
	IsHealthy(ctx context.Context) bool
}

// Services groups the collaborators the API handlers call into
type Services struct {
	Assets        *service.AssetService
	Workflows     *service.WorkflowService
	Users         *service.UserService
	Dashboard     *service.DashboardService
	Authenticator auth.Authenticator

	// Notifier is probed by the health check when set
	Notifier DependencyChecker
}

// Handler handles the JSON API requests.
type Handler struct {
	Services
	Logger         *log.Logger
	MaxUploadBytes int64

	ErrorHandler   *ErrorHandler
	ResponseHelper *ResponseHelper
}

// NewHandler creates a new Handler with dependencies and helpers
func NewHandler(services Services, maxUploadBytes int64, logger *log.Logger) *Handler {
	if logger == nil {
		logger = log.Default()
	}

	return &Handler{
		Services:       services,
		Logger:         logger,
		MaxUploadBytes: maxUploadBytes,
		ErrorHandler:   NewErrorHandler(logger),
		ResponseHelper: NewResponseHelper(),
	}
}

// HealthHandler provides a health check endpoint. An unreachable notifier
// degrades the status but the service keeps answering 200.
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	data := h.ResponseHelper.CreateHealthCheckData()

	if h.Notifier != nil {
		ctx, cancel := h.ResponseHelper.CreateRequestContext(r, HealthCheckTimeout)
		defer cancel()

		notifier := "healthy"
		if !h.Notifier.IsHealthy(ctx) {
			notifier = "unreachable"
			data["status"] = "degraded"
		}
		data["notifier"] = notifier
	}

	h.ErrorHandler.SendSuccessResponse(w, data)
}

// NotFoundHandler answers unknown API paths with a JSON 404
func (h *Handler) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	h.ErrorHandler.HandleAppError(w, errors.NewAppError(errors.ErrorCodeNotFound, "Endpoint not found"))
}

// MethodNotAllowedHandler answers a known path hit with the wrong method
func (h *Handler) MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	h.ErrorHandler.HandleAppError(w, errors.NewAppError(errors.ErrorCodeMethod, "Method not allowed"))
}

func pathVar(r *http.Request, name string) string {
	return mux.Vars(r)[name]
}

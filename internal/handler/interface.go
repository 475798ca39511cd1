package handler

import (
	"net/http"
)

// APIHandler defines the contract for the JSON API handlers.
type APIHandler interface {
	// Session stub
	LoginHandler(w http.ResponseWriter, r *http.Request)

	// Resource operations
	ListAssetsHandler(w http.ResponseWriter, r *http.Request)
	CreateAssetHandler(w http.ResponseWriter, r *http.Request)
	UpdateAssetHandler(w http.ResponseWriter, r *http.Request)
	ListWorkflowsHandler(w http.ResponseWriter, r *http.Request)
	CreateWorkflowHandler(w http.ResponseWriter, r *http.Request)
	ListUsersHandler(w http.ResponseWriter, r *http.Request)
	CreateUserHandler(w http.ResponseWriter, r *http.Request)

	UploadHandler(w http.ResponseWriter, r *http.Request)
	DashboardHandler(w http.ResponseWriter, r *http.Request)

	// Health and fallbacks
	HealthHandler(w http.ResponseWriter, r *http.Request)
	NotFoundHandler(w http.ResponseWriter, r *http.Request)
	MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request)
}

// Ensure Handler implements APIHandler at compile time
var _ APIHandler = (*Handler)(nil)

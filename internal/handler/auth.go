package handler

import (
	"asset-management-api/internal/auth"
	"asset-management-api/internal/middleware"
	"asset-management-api/internal/model"
	"asset-management-api/pkg/errors"
	stderrors "errors"
	"net/http"
)

// LoginHandler checks a username and password pair. No session is created.
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	var creds model.Credentials
	if err := h.ResponseHelper.DecodeJSONBody(r, &creds); err != nil {
		h.ErrorHandler.HandleJSONDecodeError(w, err)
		return
	}

	username := creds.Username.Or("")
	principal, err := h.Authenticator.Authenticate(ctx, username, creds.Password.Or(""))
	if err != nil {
		if stderrors.Is(err, auth.ErrInvalidCredentials) {
			h.Logger.Printf("Login rejected for username %q from %s", username, middleware.ClientIPFromContext(r.Context()))
			h.ErrorHandler.HandleAppError(w, errors.UnauthorizedError("Invalid credentials"))
			return
		}
		h.ErrorHandler.HandleAppError(w, errors.WrapError(err, "Login failed"))
		return
	}

	h.ErrorHandler.SendSuccessResponse(w, h.ResponseHelper.CreateResourceData("user", principal, "Login successful"))
}

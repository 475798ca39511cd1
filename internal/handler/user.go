package handler

import (
	"asset-management-api/internal/model"
	"net/http"
)

// ListUsersHandler returns every user.
func (h *Handler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	users := h.Users.ListUsers(ctx)
	h.ErrorHandler.SendSuccessResponse(w, h.ResponseHelper.CreateListResponseData("users", users))
}

// CreateUserHandler creates an active user.
func (h *Handler) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	var input model.UserInput
	if err := h.ResponseHelper.DecodeJSONBody(r, &input); err != nil {
		h.ErrorHandler.HandleJSONDecodeError(w, err)
		return
	}

	user := h.Users.CreateUser(ctx, input)
	h.ErrorHandler.SendSuccessResponse(w, h.ResponseHelper.CreateResourceData("user", user, "User created successfully"))
}

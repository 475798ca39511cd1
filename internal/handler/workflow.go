package handler

import (
	"asset-management-api/internal/model"
	"net/http"
)

// ListWorkflowsHandler returns every workflow.
func (h *Handler) ListWorkflowsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	workflows := h.Workflows.ListWorkflows(ctx)
	h.ErrorHandler.SendSuccessResponse(w, h.ResponseHelper.CreateListResponseData("workflows", workflows))
}

// CreateWorkflowHandler creates a workflow in the Pending state.
func (h *Handler) CreateWorkflowHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	var input model.WorkflowInput
	if err := h.ResponseHelper.DecodeJSONBody(r, &input); err != nil {
		h.ErrorHandler.HandleJSONDecodeError(w, err)
		return
	}

	workflow := h.Workflows.CreateWorkflow(ctx, input)
	h.ErrorHandler.SendSuccessResponse(w, h.ResponseHelper.CreateResourceData("workflow", workflow, "Workflow created successfully"))
}

package handler

import (
	"net/http"
)

// DashboardHandler returns the summary statistics and recent activity feed.
func (h *Handler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.ResponseHelper.CreateRequestContext(r, DefaultTimeout)
	defer cancel()

	summary := h.Dashboard.Summary(ctx)
	h.ErrorHandler.SendSuccessResponse(w, map[string]interface{}{
		"stats":             summary.Stats,
		"recent_activities": summary.RecentActivities,
	})
}

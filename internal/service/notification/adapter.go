package notification

import (
	"asset-management-api/internal/model"
	"asset-management-api/internal/notification"
	"asset-management-api/internal/service"
	"context"
	"fmt"
)

// ServiceAdapter adapts the notification client to the service layer interface
type ServiceAdapter struct {
	client notification.Notifier
}

var _ service.AssignmentNotifier = (*ServiceAdapter)(nil)

// NewServiceAdapter creates a new notification service adapter
func NewServiceAdapter(client notification.Notifier) *ServiceAdapter {
	return &ServiceAdapter{client: client}
}

// NotifyAssignment tells the assignee about a new workflow
func (a *ServiceAdapter) NotifyAssignment(ctx context.Context, workflow model.Workflow) error {
	return a.client.SendNotification(ctx, notification.Notification{
		Level:     levelForPriority(workflow.Priority),
		Recipient: workflow.AssignedTo,
		Subject:   fmt.Sprintf("New workflow %s", workflow.ID),
		Message:   fmt.Sprintf("Workflow %s %q has been assigned to %s", workflow.ID, workflow.Title, workflow.AssignedTo),
		Metadata: map[string]string{
			"workflow_id": workflow.ID,
			"priority":    workflow.Priority,
			"due_date":    workflow.DueDate,
			"status":      workflow.Status,
		},
	})
}

// levelForPriority maps workflow priorities to notification levels
func levelForPriority(priority string) notification.NotificationLevel {
	switch priority {
	case "High", "Urgent", "Critical":
		return notification.LevelWarning
	default:
		return notification.LevelInfo
	}
}

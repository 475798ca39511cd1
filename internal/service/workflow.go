package service

import (
	"asset-management-api/internal/model"
	"asset-management-api/internal/repository"
	"context"
	"fmt"
	"log"
	"time"
)

// WorkflowIDPrefix prefixes generated workflow ids.
const WorkflowIDPrefix = "WF-"

// AssignmentNotificationTimeout bounds a single assignment notice.
const AssignmentNotificationTimeout = 15 * time.Second

// AssignmentNotifier is told about workflows that have an assignee
type AssignmentNotifier interface {
	NotifyAssignment(ctx context.Context, workflow model.Workflow) error
}

// WorkflowService implements create and list for workflows
type WorkflowService struct {
	base
	repo     repository.WorkflowRepository
	notifier AssignmentNotifier
}

// NewWorkflowService creates a new workflow service. notifier may be nil.
func NewWorkflowService(repo repository.WorkflowRepository, notifier AssignmentNotifier, logger *log.Logger) *WorkflowService {
	return &WorkflowService{base: newBase(logger), repo: repo, notifier: notifier}
}

// FormatWorkflowID renders the id of the seq-th workflow.
func FormatWorkflowID(seq int) string {
	return fmt.Sprintf("%s%03d", WorkflowIDPrefix, seq)
}

// ListWorkflows returns every workflow in insertion order
func (s *WorkflowService) ListWorkflows(ctx context.Context) []model.Workflow {
	return s.repo.ListWorkflows()
}

// CreateWorkflow creates a pending workflow. Priority defaults to Medium
// only when the caller left it out.
func (s *WorkflowService) CreateWorkflow(ctx context.Context, input model.WorkflowInput) model.Workflow {
	created := s.today()

	workflow := s.repo.CreateWorkflow(func(seq int) model.Workflow {
		return model.Workflow{
			ID:         FormatWorkflowID(seq),
			Title:      input.Title.Or(""),
			AssignedTo: input.AssignedTo.Or(""),
			Status:     model.WorkflowStatusPending,
			Priority:   input.Priority.Or(model.DefaultWorkflowPriority),
			DueDate:    input.DueDate.Or(""),
			Created:    created,
		}
	})

	s.logger.Printf("Workflow created: ID=%s, AssignedTo=%q, Priority=%s", workflow.ID, workflow.AssignedTo, workflow.Priority)

	if workflow.AssignedTo != "" && s.notifier != nil {
		go s.notifyAssignment(workflow)
	}

	return workflow
}

// notifyAssignment runs detached from the request so a slow webhook never
// delays the response.
func (s *WorkflowService) notifyAssignment(workflow model.Workflow) {
	ctx, cancel := context.WithTimeout(context.Background(), AssignmentNotificationTimeout)
	defer cancel()

	if err := s.notifier.NotifyAssignment(ctx, workflow); err != nil {
		s.logger.Printf("Failed to send assignment notification for workflow %s: %v", workflow.ID, err)
		return
	}
	s.logger.Printf("Assignment notification sent for workflow %s to %s", workflow.ID, workflow.AssignedTo)
}

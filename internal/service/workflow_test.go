package service

import (
	"asset-management-api/internal/model"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateWorkflow_Defaults(t *testing.T) {
	store := newSeededStore(t)
	svc := NewWorkflowService(store, nil, silentLogger())
	svc.SetClock(fixedClock)

	wf := svc.CreateWorkflow(context.Background(), model.WorkflowInput{
		Title: model.Some("Boiler inspection"),
	})

	assert.Equal(t, "WF-004", wf.ID)
	assert.Equal(t, "Boiler inspection", wf.Title)
	assert.Equal(t, model.WorkflowStatusPending, wf.Status)
	assert.Equal(t, "Medium", wf.Priority)
	assert.Equal(t, "", wf.AssignedTo)
	assert.Equal(t, "", wf.DueDate)
	assert.Equal(t, "2024-03-07", wf.Created)
	assert.Len(t, svc.ListWorkflows(context.Background()), 4)
}

func TestCreateWorkflow_PriorityKeptWhenPresent(t *testing.T) {
	svc := NewWorkflowService(newSeededStore(t), nil, silentLogger())

	wf := svc.CreateWorkflow(context.Background(), model.WorkflowInput{Priority: model.Some("High")})
	assert.Equal(t, "High", wf.Priority)

	// present but empty is still present
	wf = svc.CreateWorkflow(context.Background(), model.WorkflowInput{Priority: model.Some("")})
	assert.Equal(t, "", wf.Priority)
	assert.Equal(t, "WF-005", wf.ID)
}

func TestCreateWorkflow_NotifiesAssignee(t *testing.T) {
	notifier := newMockAssignmentNotifier()
	svc := NewWorkflowService(newSeededStore(t), notifier, silentLogger())

	wf := svc.CreateWorkflow(context.Background(), model.WorkflowInput{
		Title:      model.Some("Lift certification"),
		AssignedTo: model.Some("Fatima Al-Zahrani"),
	})

	select {
	case sent := <-notifier.Sent:
		assert.Equal(t, wf, sent)
	case <-time.After(time.Second):
		t.Fatal("expected an assignment notification")
	}
}

func TestCreateWorkflow_NotifierFailureIsNotFatal(t *testing.T) {
	notifier := newMockAssignmentNotifier()
	notifier.NotifyAssignmentFunc = func(ctx context.Context, workflow model.Workflow) error {
		return errors.New("webhook down")
	}
	svc := NewWorkflowService(newSeededStore(t), notifier, silentLogger())

	wf := svc.CreateWorkflow(context.Background(), model.WorkflowInput{AssignedTo: model.Some("ops")})
	require.Equal(t, "WF-004", wf.ID)

	select {
	case <-notifier.Sent:
	case <-time.After(time.Second):
		t.Fatal("expected an assignment notification attempt")
	}
}

func TestCreateWorkflow_NoAssigneeNoNotification(t *testing.T) {
	notifier := newMockAssignmentNotifier()
	svc := NewWorkflowService(newSeededStore(t), notifier, silentLogger())

	svc.CreateWorkflow(context.Background(), model.WorkflowInput{Title: model.Some("Unassigned")})

	select {
	case wf := <-notifier.Sent:
		t.Fatalf("unexpected notification for %s", wf.ID)
	case <-time.After(50 * time.Millisecond):
	}
}

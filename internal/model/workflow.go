package model

// Workflow status and priority values assigned by the service.
const (
	WorkflowStatusPending   = "Pending"
	WorkflowStatusCompleted = "Completed"
	DefaultWorkflowPriority = "Medium"
)

// Workflow represents a review task.
type Workflow struct {
	ID         string `json:"id" yaml:"id"`
	Title      string `json:"title" yaml:"title"`
	AssignedTo string `json:"assigned_to" yaml:"assigned_to"`
	Status     string `json:"status" yaml:"status"`
	Priority   string `json:"priority" yaml:"priority"`
	DueDate    string `json:"due_date" yaml:"due_date"`
	Created    string `json:"created" yaml:"created"`
}

// WorkflowInput is the request body for creating a workflow. Any status
// sent by the caller is ignored.
type WorkflowInput struct {
	Title      OptionalString `json:"title"`
	AssignedTo OptionalString `json:"assigned_to"`
	Priority   OptionalString `json:"priority"`
	DueDate    OptionalString `json:"due_date"`
}

package service

import (
	"asset-management-api/internal/model"
	"asset-management-api/internal/repository"
	"context"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, time.March, 7, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func silentLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newSeededStore(t testing.TB) *repository.Store {
	seed, err := repository.DefaultSeed()
	require.NoError(t, err)
	return repository.NewSeededStore(seed)
}

// MockAssignmentNotifier records assignment notices on a channel.
type MockAssignmentNotifier struct {
	NotifyAssignmentFunc func(ctx context.Context, workflow model.Workflow) error
	Sent                 chan model.Workflow
}

func newMockAssignmentNotifier() *MockAssignmentNotifier {
	return &MockAssignmentNotifier{Sent: make(chan model.Workflow, 8)}
}

func (m *MockAssignmentNotifier) NotifyAssignment(ctx context.Context, workflow model.Workflow) error {
	m.Sent <- workflow
	if m.NotifyAssignmentFunc != nil {
		return m.NotifyAssignmentFunc(ctx, workflow)
	}
	return nil
}

package repository

import (
	"asset-management-api/internal/model"
	"errors"
	"fmt"
)

// Custom errors for better error handling
var (
	ErrAssetNotFound = errors.New("asset not found")
)

// AssetRepository is an interface for interacting with asset data.
type AssetRepository interface {
	ListAssets() []model.Asset
	CreateAsset(build func(seq int) model.Asset) model.Asset
	UpdateAsset(id string, apply func(*model.Asset)) (*model.Asset, error)
	CountAssets() int
}

// WorkflowRepository is an interface for interacting with workflow data.
type WorkflowRepository interface {
	ListWorkflows() []model.Workflow
	CreateWorkflow(build func(seq int) model.Workflow) model.Workflow
	CountWorkflows() int
}

// UserRepository is an interface for interacting with user data.
type UserRepository interface {
	ListUsers() []model.User
	CreateUser(build func(seq int) model.User) model.User
	CountUsers() int
}

// ActivityRepository exposes the dashboard activity feed.
type ActivityRepository interface {
	RecentActivities() []model.Activity
}

// Store is the process-wide in-memory resource store. Each kind is
// sequenced independently.
type Store struct {
	Assets     *Collection[model.Asset, string]
	Workflows  *Collection[model.Workflow, string]
	Users      *Collection[model.User, int]
	activities []model.Activity
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		Assets:    NewCollection(func(a model.Asset) string { return a.ID }),
		Workflows: NewCollection(func(w model.Workflow) string { return w.ID }),
		Users:     NewCollection(func(u model.User) int { return u.ID }),
	}
}

var (
	_ AssetRepository    = (*Store)(nil)
	_ WorkflowRepository = (*Store)(nil)
	_ UserRepository     = (*Store)(nil)
	_ ActivityRepository = (*Store)(nil)
)

// ListAssets returns all assets in insertion order.
func (s *Store) ListAssets() []model.Asset {
	return s.Assets.List()
}

// CreateAsset appends the asset produced by build.
func (s *Store) CreateAsset(build func(seq int) model.Asset) model.Asset {
	return s.Assets.Insert(build)
}

// UpdateAsset applies apply to the stored asset. Nothing is touched when
// the id is unknown.
func (s *Store) UpdateAsset(id string, apply func(*model.Asset)) (*model.Asset, error) {
	asset, ok := s.Assets.Mutate(id, apply)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, id)
	}
	return &asset, nil
}

// CountAssets returns the number of assets.
func (s *Store) CountAssets() int {
	return s.Assets.Len()
}

// ListWorkflows returns all workflows in insertion order.
func (s *Store) ListWorkflows() []model.Workflow {
	return s.Workflows.List()
}

// CreateWorkflow appends the workflow produced by build.
func (s *Store) CreateWorkflow(build func(seq int) model.Workflow) model.Workflow {
	return s.Workflows.Insert(build)
}

// CountWorkflows returns the number of workflows.
func (s *Store) CountWorkflows() int {
	return s.Workflows.Len()
}

// ListUsers returns all users in insertion order.
func (s *Store) ListUsers() []model.User {
	return s.Users.List()
}

// CreateUser appends the user produced by build.
func (s *Store) CreateUser(build func(seq int) model.User) model.User {
	return s.Users.Insert(build)
}

// CountUsers returns the number of users.
func (s *Store) CountUsers() int {
	return s.Users.Len()
}

// RecentActivities returns the static activity feed loaded with the seed.
func (s *Store) RecentActivities() []model.Activity {
	out := make([]model.Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

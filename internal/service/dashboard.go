package service

import (
	"asset-management-api/internal/model"
	"asset-management-api/internal/repository"
	"context"
)

// DashboardSource is everything the dashboard reads.
type DashboardSource interface {
	repository.AssetRepository
	repository.WorkflowRepository
	repository.UserRepository
	repository.ActivityRepository
}

// DashboardService computes the dashboard summary on demand
type DashboardService struct {
	source DashboardSource
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(source DashboardSource) *DashboardService {
	return &DashboardService{source: source}
}

// Summary derives the dashboard statistics from the current store content.
// A workflow counts as active until it is Completed.
func (s *DashboardService) Summary(ctx context.Context) model.Dashboard {
	assets := s.source.ListAssets()

	regions := make(map[string]struct{}, len(assets))
	for _, a := range assets {
		regions[a.Region] = struct{}{}
	}

	active := 0
	for _, w := range s.source.ListWorkflows() {
		if w.Status != model.WorkflowStatusCompleted {
			active++
		}
	}

	return model.Dashboard{
		Stats: model.DashboardStats{
			TotalAssets:     len(assets),
			ActiveWorkflows: active,
			TotalRegions:    len(regions),
			TotalUsers:      s.source.CountUsers(),
		},
		RecentActivities: s.source.RecentActivities(),
	}
}

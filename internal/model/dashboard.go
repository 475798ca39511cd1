package model

// DashboardStats holds the counters derived from the store.
type DashboardStats struct {
	TotalAssets     int `json:"total_assets"`
	ActiveWorkflows int `json:"active_workflows"`
	TotalRegions    int `json:"total_regions"`
	TotalUsers      int `json:"total_users"`
}

// Activity is an entry in the dashboard's recent activity feed.
type Activity struct {
	ID      int    `json:"id" yaml:"id"`
	Type    string `json:"type" yaml:"type"`
	Message string `json:"message" yaml:"message"`
	User    string `json:"user" yaml:"user"`
	Time    string `json:"time" yaml:"time"`
}

// Dashboard is the full dashboard summary.
type Dashboard struct {
	Stats            DashboardStats `json:"stats"`
	RecentActivities []Activity     `json:"recent_activities"`
}

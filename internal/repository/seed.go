package repository

import (
	"asset-management-api/internal/model"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the initial content of a Store.
type Seed struct {
	Assets           []model.Asset    `yaml:"assets"`
	Workflows        []model.Workflow `yaml:"workflows"`
	Users            []model.User     `yaml:"users"`
	RecentActivities []model.Activity `yaml:"recent_activities"`
}

// DefaultSeed returns the built-in sample data.
func DefaultSeed() (*Seed, error) {
	return ParseSeed(defaultSeed)
}

// ParseSeed decodes a YAML seed document.
func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed document: %w", err)
	}
	return &seed, nil
}

// LoadSeedFile reads a seed document from disk. An empty path selects the
// built-in sample data.
func LoadSeedFile(path string) (*Seed, error) {
	if path == "" {
		return DefaultSeed()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}
	return ParseSeed(data)
}

// NewSeededStore creates a store holding the records of seed, in order.
func NewSeededStore(seed *Seed) *Store {
	s := NewStore()
	if seed == nil {
		return s
	}

	for _, a := range seed.Assets {
		s.Assets.Append(a)
	}
	for _, w := range seed.Workflows {
		s.Workflows.Append(w)
	}
	for _, u := range seed.Users {
		s.Users.Append(u)
	}
	s.activities = append(s.activities, seed.RecentActivities...)
	return s
}

package service

import (
	"asset-management-api/internal/model"
	"asset-management-api/internal/repository"
	"context"
	"log"
)

// UserService implements create and list for users
type UserService struct {
	base
	repo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepository, logger *log.Logger) *UserService {
	return &UserService{base: newBase(logger), repo: repo}
}

// ListUsers returns every user in insertion order
func (s *UserService) ListUsers(ctx context.Context) []model.User {
	return s.repo.ListUsers()
}

// CreateUser creates an active user with the next integer id
func (s *UserService) CreateUser(ctx context.Context, input model.UserInput) model.User {
	user := s.repo.CreateUser(func(seq int) model.User {
		return model.User{
			ID:         seq,
			Username:   input.Username.Or(""),
			Name:       input.Name.Or(""),
			Role:       input.Role.Or(""),
			Department: input.Department.Or(""),
			Region:     input.Region.Or(""),
			Status:     model.UserStatusActive,
		}
	})

	s.logger.Printf("User created: ID=%d, Username=%q", user.ID, user.Username)
	return user
}

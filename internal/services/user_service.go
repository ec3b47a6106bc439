package services

import (
	"katalog/internal/models"
	"katalog/internal/repositories"
)

// UserService exposes read access to the authenticated user's own record.
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
	}
}

// Me returns the user the session resolved to. A valid token for a user that
// no longer exists propagates repositories.ErrNotFound; the boundary treats
// that as an authentication failure, not a 404.
func (s *UserService) Me(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

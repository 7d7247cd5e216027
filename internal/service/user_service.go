package service

import (
	"errors"
	"fmt"

	"clinic-management-backend/internal/models"
	"clinic-management-backend/internal/repository"

	"go.uber.org/zap"
)

type UserService struct {
	userRepo    *repository.UserRepository
	sessionRepo *repository.SessionRepository
	logger      *zap.Logger
}

func NewUserService(
	userRepo *repository.UserRepository,
	sessionRepo *repository.SessionRepository,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// List retrieves all users for the admin overview
func (s *UserService) List() ([]models.User, error) {
	return s.userRepo.List()
}

// ListNonAdmins retrieves the regular staff users
func (s *UserService) ListNonAdmins() ([]models.User, error) {
	return s.userRepo.ListNonAdmins()
}

// Get retrieves a user by id
func (s *UserService) Get(id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateCredits sets a user's credit balance to an already-parsed integer
func (s *UserService) UpdateCredits(id uint, credits int) error {
	if err := s.userRepo.UpdateCredits(id, credits); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update credits: %w", err)
	}

	s.logger.Info("credits updated", zap.Uint("user_id", id), zap.Int("credits", credits))
	return nil
}

// Delete physically removes a user, its patient assignments and its sessions
func (s *UserService) Delete(id uint) error {
	if err := s.userRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if err := s.sessionRepo.RevokeAllForUser(id); err != nil {
		s.logger.Warn("failed to revoke sessions of deleted user", zap.Uint("user_id", id), zap.Error(err))
	}

	s.logger.Info("user deleted", zap.Uint("user_id", id))
	return nil
}

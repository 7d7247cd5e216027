package service

import (
	"errors"
	"fmt"

	"clinic-management-backend/internal/models"
	"clinic-management-backend/internal/repository"

	"go.uber.org/zap"
)

type ClinicService struct {
	clinicRepo *repository.ClinicRepository
	userRepo   *repository.UserRepository
	logger     *zap.Logger
}

func NewClinicService(
	clinicRepo *repository.ClinicRepository,
	userRepo *repository.UserRepository,
	logger *zap.Logger,
) *ClinicService {
	return &ClinicService{
		clinicRepo: clinicRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// Create registers a new clinic with a globally unique name
func (s *ClinicService) Create(name string) (*models.Clinic, error) {
	clinic := &models.Clinic{Name: name}
	if err := s.clinicRepo.Create(clinic); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateClinic
		}
		return nil, fmt.Errorf("failed to create clinic: %w", err)
	}

	s.logger.Info("clinic created", zap.String("name", name))
	return clinic, nil
}

// List retrieves all clinics
func (s *ClinicService) List() ([]models.Clinic, error) {
	return s.clinicRepo.List()
}

// AssignStaff reassigns a user to a clinic, overwriting any prior assignment.
// No assignment history is kept.
func (s *ClinicService) AssignStaff(userID, clinicID uint) error {
	if _, err := s.clinicRepo.FindByID(clinicID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnknownClinic
		}
		return err
	}

	if err := s.userRepo.AssignClinic(userID, clinicID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to assign user to clinic: %w", err)
	}

	s.logger.Info("staff assigned to clinic",
		zap.Uint("user_id", userID),
		zap.Uint("clinic_id", clinicID),
	)
	return nil
}

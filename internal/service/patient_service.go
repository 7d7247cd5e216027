package service

import (
	"errors"
	"fmt"

	"clinic-management-backend/internal/models"
	"clinic-management-backend/internal/repository"

	"go.uber.org/zap"
)

// PatientInput carries the already-validated form fields for a patient
// create or update. Ids arrive here typed, never as raw strings.
type PatientInput struct {
	Name            string
	Age             int
	Guardian        string
	ClinicID        uint
	ProfessionalIDs []uint
}

type PatientService struct {
	patientRepo *repository.PatientRepository
	clinicRepo  *repository.ClinicRepository
	logger      *zap.Logger
}

func NewPatientService(
	patientRepo *repository.PatientRepository,
	clinicRepo *repository.ClinicRepository,
	logger *zap.Logger,
) *PatientService {
	return &PatientService{
		patientRepo: patientRepo,
		clinicRepo:  clinicRepo,
		logger:      logger,
	}
}

// Create registers a patient in a clinic with an initial professional set
func (s *PatientService) Create(input PatientInput) (*models.Patient, error) {
	if _, err := s.clinicRepo.FindByID(input.ClinicID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownClinic
		}
		return nil, err
	}

	patient := &models.Patient{
		Name:     input.Name,
		Age:      input.Age,
		Guardian: input.Guardian,
		ClinicID: input.ClinicID,
	}
	if err := s.patientRepo.Create(patient, input.ProfessionalIDs); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}

	s.logger.Info("patient created",
		zap.String("name", input.Name),
		zap.Uint("clinic_id", input.ClinicID),
	)
	return patient, nil
}

// Update rewrites all patient fields; the professional assignment is a full
// replace, committed in the same transaction as the field updates.
func (s *PatientService) Update(id uint, input PatientInput) (*models.Patient, error) {
	if _, err := s.clinicRepo.FindByID(input.ClinicID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnknownClinic
		}
		return nil, err
	}

	patient, err := s.patientRepo.Update(id, input.Name, input.Age, input.Guardian, input.ClinicID, input.ProfessionalIDs)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}

	s.logger.Info("patient updated", zap.Uint("patient_id", id))
	return patient, nil
}

// Delete physically removes a patient. Deleting twice fails with ErrNotFound.
func (s *PatientService) Delete(id uint) error {
	if err := s.patientRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete patient: %w", err)
	}

	s.logger.Info("patient deleted", zap.Uint("patient_id", id))
	return nil
}

// Get retrieves a patient with clinic and professionals loaded
func (s *PatientService) Get(id uint) (*models.Patient, error) {
	patient, err := s.patientRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return patient, nil
}

// List retrieves all patients across clinics (admin listing)
func (s *PatientService) List() ([]models.Patient, error) {
	return s.patientRepo.List()
}

// ListByProfessional retrieves the patients assigned to a staff user
func (s *PatientService) ListByProfessional(userID uint) ([]models.Patient, error) {
	return s.patientRepo.ListByProfessional(userID)
}

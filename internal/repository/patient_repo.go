package repository

import (
	"errors"

	"clinic-management-backend/internal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// Create persists a patient together with its professional assignments in a
// single transaction. A failure leaves no partial state.
func (r *PatientRepository) Create(patient *models.Patient, professionalIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		professionals, err := findUsers(tx, professionalIDs)
		if err != nil {
			return err
		}
		patient.Professionals = professionals
		return tx.Create(patient).Error
	})
}

// Update rewrites all patient fields and replaces the professional assignment
// set atomically with the rest of the update.
func (r *PatientRepository) Update(id uint, name string, age int, guardian string, clinicID uint, professionalIDs []uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&patient, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		patient.Name = name
		patient.Age = age
		patient.Guardian = guardian
		patient.ClinicID = clinicID
		if err := tx.Save(&patient).Error; err != nil {
			return err
		}

		professionals, err := findUsers(tx, professionalIDs)
		if err != nil {
			return err
		}
		return tx.Model(&patient).Association("Professionals").Replace(professionals)
	})
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// Delete physically removes a patient and its assignment rows
func (r *PatientRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var patient models.Patient
		if err := tx.First(&patient, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Model(&patient).Association("Professionals").Clear(); err != nil {
			return err
		}
		return tx.Delete(&patient).Error
	})
}

// List retrieves all patients with clinic and professionals preloaded
func (r *PatientRepository) List() ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.Preload("Clinic").Preload("Professionals").Order("name ASC").Find(&patients).Error
	return patients, err
}

// FindByID retrieves a patient by primary key with relationships preloaded
func (r *PatientRepository) FindByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.Preload("Clinic").Preload("Professionals").First(&patient, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &patient, nil
}

// ListByProfessional retrieves the patients assigned to a given staff user
func (r *PatientRepository) ListByProfessional(userID uint) ([]models.Patient, error) {
	var patients []models.Patient
	err := r.db.
		Joins("INNER JOIN patient_professionals ON patient_professionals.patient_id = patients.id").
		Where("patient_professionals.user_id = ?", userID).
		Preload("Clinic").
		Order("patients.name ASC").
		Find(&patients).Error
	return patients, err
}

// findUsers resolves assignment ids to user rows inside the caller's
// transaction. An id that matches no user fails the whole transaction with
// ErrNotFound rather than being silently dropped.
func findUsers(tx *gorm.DB, ids []uint) ([]models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []models.User
	if err := tx.Find(&users, ids).Error; err != nil {
		return nil, err
	}
	if len(users) != len(ids) {
		return nil, ErrNotFound
	}
	return users, nil
}

package repository

import (
	"errors"

	"clinic-management-backend/internal/models"

	"gorm.io/gorm"
)

type ClinicRepository struct {
	db *gorm.DB
}

func NewClinicRepo(db *gorm.DB) *ClinicRepository {
	return &ClinicRepository{db: db}
}

// Create persists a new clinic, mapping unique-name violations to ErrDuplicate
func (r *ClinicRepository) Create(clinic *models.Clinic) error {
	if err := r.db.Create(clinic).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// List retrieves all clinics
func (r *ClinicRepository) List() ([]models.Clinic, error) {
	var clinics []models.Clinic
	err := r.db.Order("name ASC").Find(&clinics).Error
	return clinics, err
}

// FindByID retrieves a clinic by primary key
func (r *ClinicRepository) FindByID(id uint) (*models.Clinic, error) {
	var clinic models.Clinic
	err := r.db.First(&clinic, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &clinic, nil
}

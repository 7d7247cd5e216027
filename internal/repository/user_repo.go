package repository

import (
	"errors"

	"clinic-management-backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists a new user, mapping unique-key violations to ErrDuplicate
func (r *UserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// FindByUsername finds a user by username
func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID finds a user by primary key
func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// List retrieves all users with their clinic preloaded
func (r *UserRepository) List() ([]models.User, error) {
	var users []models.User
	err := r.db.Preload("Clinic").Order("username ASC").Find(&users).Error
	return users, err
}

// ListNonAdmins retrieves all regular staff users
func (r *UserRepository) ListNonAdmins() ([]models.User, error) {
	var users []models.User
	err := r.db.Where("is_admin = ?", false).Order("username ASC").Find(&users).Error
	return users, err
}

// UpdateCredits sets the credit balance of a user
func (r *UserRepository) UpdateCredits(id uint, credits int) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Update("credits", credits)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish "no such user" from "value unchanged"
		var count int64
		if err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
	}
	return nil
}

// AssignClinic reassigns a user to a clinic, overwriting any prior assignment
func (r *UserRepository) AssignClinic(userID, clinicID uint) error {
	user, err := r.FindByID(userID)
	if err != nil {
		return err
	}
	return r.db.Model(user).Update("clinic_id", clinicID).Error
}

// Delete physically removes a user and its patient assignments
func (r *UserRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Model(&user).Association("Patients").Clear(); err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

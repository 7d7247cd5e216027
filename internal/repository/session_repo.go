package repository

import (
	"errors"

	"clinic-management-backend/internal/models"

	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepo(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create persists a new session
func (r *SessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

// FindByTokenHash finds an active session by its token hash
func (r *SessionRepository) FindByTokenHash(hash string) (*models.Session, error) {
	var session models.Session
	err := r.db.Where("token_hash = ? AND revoked = ?", hash, false).
		Preload("User").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

// RevokeByTokenHash marks a session as revoked by its token hash
func (r *SessionRepository) RevokeByTokenHash(hash string) error {
	return r.db.Model(&models.Session{}).
		Where("token_hash = ?", hash).
		Update("revoked", true).Error
}

// RevokeAllForUser revokes every session of a user, used on account deletion
func (r *SessionRepository) RevokeAllForUser(userID uint) error {
	return r.db.Model(&models.Session{}).
		Where("user_id = ?", userID).
		Update("revoked", true).Error
}

package models

import "time"

// User represents the users table (clinic staff and administrators).
// Credits gate access to the tools area; IsAdmin unlocks the admin surfaces.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null;size:150" json:"username"`
	PasswordHash string    `gorm:"not null;size:255" json:"-"`
	Credits      int       `gorm:"not null;default:0" json:"credits"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	ClinicID     *uint     `gorm:"index" json:"clinic_id"`
	CreatedAt    time.Time `json:"created_at"`

	// Relationships
	Clinic   *Clinic   `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
	Patients []Patient `gorm:"many2many:patient_professionals" json:"patients,omitempty"`
}

// TableName specifies the table name for User model
func (User) TableName() string {
	return "users"
}

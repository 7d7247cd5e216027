package models

// Patient represents the patients table. Every patient belongs to exactly one
// clinic and carries a set of assigned professionals (staff users).
type Patient struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:150;not null" json:"name"`
	Age      int    `gorm:"not null" json:"age"`
	Guardian string `gorm:"size:150;not null" json:"guardian"`
	ClinicID uint   `gorm:"not null;index" json:"clinic_id"`

	// Relationships
	Clinic        Clinic `gorm:"foreignKey:ClinicID" json:"clinic,omitempty"`
	Professionals []User `gorm:"many2many:patient_professionals" json:"professionals,omitempty"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}

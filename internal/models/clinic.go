package models

// Clinic represents the clinics table. A clinic owns staff users and patients.
type Clinic struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:150;not null;uniqueIndex" json:"name"`

	// Relationships
	Users    []User    `gorm:"foreignKey:ClinicID" json:"users,omitempty"`
	Patients []Patient `gorm:"foreignKey:ClinicID" json:"patients,omitempty"`
}

// TableName specifies the table name for Clinic model
func (Clinic) TableName() string {
	return "clinics"
}

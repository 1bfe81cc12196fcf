package models

import "time"

// Assignment links one doctor to one hospital where they practice.
// A hospital can carry any number of assignments.
type Assignment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	HospitalID uint      `gorm:"not null;index" json:"hospital_id"`
	DoctorID   uint      `gorm:"not null;index" json:"doctor_id"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	Hospital Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
	Doctor   Doctor   `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for Assignment model
func (Assignment) TableName() string {
	return "assignments"
}

package models

import "time"

// Appointment represents the appointments table. Appointments are created by
// the booking service; this backend reads, aggregates and deletes them.
// Rating is null until the user reviews the visit.
type Appointment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	AssignID   uint      `gorm:"not null;index" json:"assign_id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	HospitalID uint      `gorm:"index" json:"hospital_id"`
	Rating     *float64  `json:"rating"`
	CreatedAt  time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	Assignment Assignment `gorm:"foreignKey:AssignID" json:"assignment,omitempty"`
	User       User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// TableName specifies the table name for Appointment model
func (Appointment) TableName() string {
	return "appointments"
}

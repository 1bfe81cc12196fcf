package models

import "time"

// Hospital represents a hospital/medical facility in the system
type Hospital struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Address   string    `gorm:"type:text" json:"address"`
	Picture   string    `gorm:"size:255" json:"picture,omitempty"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName specifies the table name for Hospital model
func (Hospital) TableName() string {
	return "hospitals"
}

// HospitalDetail is the aggregate hospital view returned to the mobile app.
// Doctor fields come from the hospital's assignment with the lowest id and
// are explicit nulls when the hospital has no assignments. The statistic
// fields are only populated by the detail query; the hospital listing leaves
// them at zero on purpose so it stays a single query.
type HospitalDetail struct {
	Hospital
	AssignID          *uint   `json:"assign_id"`
	DoctorID          *uint   `json:"doctor_id"`
	DoctorName        *string `json:"doctor_name"`
	DoctorPicture     *string `json:"doctor_picture"`
	DoctorEmail       *string `json:"doctor_email"`
	TotalAppointments int     `json:"total_appointments"`
	TotalReviews      int     `json:"total_reviews"`
	Rating            float64 `json:"rating"`
}

package repository

import (
	"healthcare-appointment-backend/internal/models"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepo(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// ListByAssignmentIDs retrieves all appointments booked under the given
// assignments. Callers resolve the assignment set first; an empty set must
// be short-circuited by the caller.
func (r *AppointmentRepository) ListByAssignmentIDs(assignIDs []uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("assign_id IN ?", assignIDs).
		Order("id ASC").
		Find(&appointments).Error
	return appointments, err
}

// ListByAssignmentIDsAndUsers retrieves appointments under the given
// assignments that belong to one of the given users
func (r *AppointmentRepository) ListByAssignmentIDsAndUsers(assignIDs []uint, userIDs []uint) ([]models.Appointment, error) {
	var appointments []models.Appointment
	err := r.db.Where("assign_id IN ? AND user_id IN ?", assignIDs, userIDs).
		Order("id ASC").
		Find(&appointments).Error
	return appointments, err
}

package repository

import (
	"healthcare-appointment-backend/internal/models"

	"gorm.io/gorm"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepo(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// CreateAssignment creates a new doctor-hospital assignment
func (r *AssignmentRepository) CreateAssignment(assignment *models.Assignment) error {
	return r.db.Create(assignment).Error
}

// ListAssignmentsForHospital retrieves a hospital's assignments with doctor data
func (r *AssignmentRepository) ListAssignmentsForHospital(hospitalID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.Where("hospital_id = ?", hospitalID).
		Preload("Doctor").
		Order("id ASC").
		Find(&assignments).Error
	return assignments, err
}

// ListAssignmentIDs resolves the set of assignment ids belonging to a hospital
func (r *AssignmentRepository) ListAssignmentIDs(hospitalID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Assignment{}).
		Where("hospital_id = ?", hospitalID).
		Order("id ASC").
		Pluck("id", &ids).Error
	return ids, err
}

// DeleteAssignmentCascade removes one assignment together with the
// appointments booked under it, in one transaction. Reports how many
// assignment rows matched; zero is a no-op success.
func (r *AssignmentRepository) DeleteAssignmentCascade(id uint) (int64, error) {
	var assignmentRows int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("assign_id = ?", id).
			Delete(&models.Appointment{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&models.Assignment{})
		if res.Error != nil {
			return res.Error
		}
		assignmentRows = res.RowsAffected
		return nil
	})
	return assignmentRows, err
}

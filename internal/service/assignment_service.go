package service

import (
	"fmt"

	"healthcare-appointment-backend/internal/models"
	"healthcare-appointment-backend/internal/repository"

	"go.uber.org/zap"
)

// AssignmentStore is the persistence surface the assignment service depends on
type AssignmentStore interface {
	CreateAssignment(assignment *models.Assignment) error
	ListAssignmentsForHospital(hospitalID uint) ([]models.Assignment, error)
	DeleteAssignmentCascade(id uint) (int64, error)
}

// HospitalChecker verifies a hospital referent exists before linking to it
type HospitalChecker interface {
	HospitalExists(id uint) (bool, error)
}

// DoctorStore reads doctor records
type DoctorStore interface {
	ListDoctors() ([]models.Doctor, error)
	GetDoctorByID(id uint) (*models.Doctor, error)
}

type AssignmentService struct {
	assignments AssignmentStore
	hospitals   HospitalChecker
	doctors     DoctorStore
	logger      *zap.Logger
}

func NewAssignmentService(assignments AssignmentStore, hospitals HospitalChecker, doctors DoctorStore, logger *zap.Logger) *AssignmentService {
	return &AssignmentService{
		assignments: assignments,
		hospitals:   hospitals,
		doctors:     doctors,
		logger:      logger,
	}
}

// CreateAssignment links a doctor to a hospital. Both referents must exist:
// assignments are never allowed to dangle.
func (s *AssignmentService) CreateAssignment(hospitalID, doctorID uint) (*models.Assignment, error) {
	exists, err := s.hospitals.HospitalExists(hospitalID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, repository.ErrNotFound
	}

	if _, err := s.doctors.GetDoctorByID(doctorID); err != nil {
		return nil, err
	}

	assignment := &models.Assignment{
		HospitalID: hospitalID,
		DoctorID:   doctorID,
	}
	if err := s.assignments.CreateAssignment(assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	s.logger.Info("doctor assigned to hospital",
		zap.Uint("assign_id", assignment.ID),
		zap.Uint("hospital_id", hospitalID),
		zap.Uint("doctor_id", doctorID),
	)
	return assignment, nil
}

// ListAssignmentsForHospital returns a hospital's assignments with doctor data
func (s *AssignmentService) ListAssignmentsForHospital(hospitalID uint) ([]models.Assignment, error) {
	return s.assignments.ListAssignmentsForHospital(hospitalID)
}

// DeleteAssignment removes an assignment together with its appointments, as
// one atomic unit. Deleting an unknown id succeeds.
func (s *AssignmentService) DeleteAssignment(id uint) error {
	rows, err := s.assignments.DeleteAssignmentCascade(id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	s.logger.Info("assignment deleted",
		zap.Uint("assign_id", id),
		zap.Int64("rows_matched", rows),
	)
	return nil
}

// ListDoctors returns all doctors for the mobile app's pickers
func (s *AssignmentService) ListDoctors() ([]models.Doctor, error) {
	return s.doctors.ListDoctors()
}

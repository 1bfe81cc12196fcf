package service

import (
	"healthcare-appointment-backend/internal/models"

	"go.uber.org/zap"
)

// AssignmentResolver resolves which assignments belong to a hospital
type AssignmentResolver interface {
	ListAssignmentIDs(hospitalID uint) ([]uint, error)
}

// AppointmentStore reads appointments by assignment and user sets
type AppointmentStore interface {
	ListByAssignmentIDs(assignIDs []uint) ([]models.Appointment, error)
	ListByAssignmentIDsAndUsers(assignIDs []uint, userIDs []uint) ([]models.Appointment, error)
}

type AppointmentService struct {
	assignments  AssignmentResolver
	appointments AppointmentStore
	logger       *zap.Logger
}

func NewAppointmentService(assignments AssignmentResolver, appointments AppointmentStore, logger *zap.Logger) *AppointmentService {
	return &AppointmentService{
		assignments:  assignments,
		appointments: appointments,
		logger:       logger,
	}
}

// ListAppointmentsForHospital returns every appointment reachable from the
// hospital via its assignments. A hospital without assignments yields an
// empty list, not an error.
func (s *AppointmentService) ListAppointmentsForHospital(hospitalID uint) ([]models.Appointment, error) {
	assignIDs, err := s.assignments.ListAssignmentIDs(hospitalID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("resolved hospital assignments",
		zap.Uint("hospital_id", hospitalID),
		zap.Uints("assign_ids", assignIDs),
	)

	if len(assignIDs) == 0 {
		return []models.Appointment{}, nil
	}
	return s.appointments.ListByAssignmentIDs(assignIDs)
}

// SelectAppointments returns the hospital's appointments belonging to any of
// the given users. The user set is deduplicated here so the boundary can
// pass a single id or a repeated list.
func (s *AppointmentService) SelectAppointments(hospitalID uint, userIDs []uint) ([]models.Appointment, error) {
	users := dedupe(userIDs)
	if len(users) == 0 {
		return []models.Appointment{}, nil
	}

	assignIDs, err := s.assignments.ListAssignmentIDs(hospitalID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("selecting appointments",
		zap.Uint("hospital_id", hospitalID),
		zap.Uints("assign_ids", assignIDs),
		zap.Uints("user_ids", users),
	)

	if len(assignIDs) == 0 {
		return []models.Appointment{}, nil
	}
	return s.appointments.ListByAssignmentIDsAndUsers(assignIDs, users)
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

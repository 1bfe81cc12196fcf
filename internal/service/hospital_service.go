package service

import (
	"fmt"
	"io"

	"healthcare-appointment-backend/internal/models"

	"go.uber.org/zap"
)

// HospitalStore is the persistence surface the hospital service depends on
type HospitalStore interface {
	GetHospitalDetail(id uint) (*models.HospitalDetail, error)
	ListHospitalsWithPrimaryDoctor() ([]models.HospitalDetail, error)
	CreateHospital(hospital *models.Hospital) error
	UpdateHospital(id uint, fields map[string]interface{}) (int64, error)
	UpdateHospitalPicture(id uint, path string) error
	DeleteHospitalCascade(id uint) (int64, error)
}

// PictureStore persists uploaded hospital pictures and returns the stored path
type PictureStore interface {
	Save(hospitalID uint, originalName string, src io.Reader) (string, error)
}

type HospitalService struct {
	hospitals HospitalStore
	pictures  PictureStore
	logger    *zap.Logger
}

func NewHospitalService(hospitals HospitalStore, pictures PictureStore, logger *zap.Logger) *HospitalService {
	return &HospitalService{
		hospitals: hospitals,
		pictures:  pictures,
		logger:    logger,
	}
}

// GetHospitalDetail returns the aggregate view for one hospital
func (s *HospitalService) GetHospitalDetail(id uint) (*models.HospitalDetail, error) {
	return s.hospitals.GetHospitalDetail(id)
}

// ListHospitals returns all hospitals with their primary doctor attached.
// Statistics are not aggregated in the listing; clients needing them fetch
// the detail view.
func (s *HospitalService) ListHospitals() ([]models.HospitalDetail, error) {
	return s.hospitals.ListHospitalsWithPrimaryDoctor()
}

// RegisterHospital creates a hospital and, when a picture was uploaded,
// stores it and records the stored path on the row
func (s *HospitalService) RegisterHospital(hospital *models.Hospital, pictureName string, picture io.Reader) error {
	if err := s.hospitals.CreateHospital(hospital); err != nil {
		return fmt.Errorf("failed to create hospital: %w", err)
	}

	if picture != nil {
		path, err := s.pictures.Save(hospital.ID, pictureName, picture)
		if err != nil {
			return fmt.Errorf("failed to store hospital picture: %w", err)
		}
		if err := s.hospitals.UpdateHospitalPicture(hospital.ID, path); err != nil {
			return fmt.Errorf("failed to record hospital picture: %w", err)
		}
		hospital.Picture = path
	}

	s.logger.Info("hospital registered",
		zap.Uint("hospital_id", hospital.ID),
		zap.String("name", hospital.Name),
	)
	return nil
}

// UpdateHospital replaces the mutable hospital fields in full. The picture
// is managed separately and never touched here. Updating an unknown id is a
// no-op success; the matched-row count is returned so callers can tell.
func (s *HospitalService) UpdateHospital(id uint, name string, latitude, longitude float64, address string) (int64, error) {
	fields := map[string]interface{}{
		"name":      name,
		"latitude":  latitude,
		"longitude": longitude,
		"address":   address,
	}

	rows, err := s.hospitals.UpdateHospital(id, fields)
	if err != nil {
		return 0, fmt.Errorf("failed to update hospital: %w", err)
	}
	if rows == 0 {
		s.logger.Info("hospital update matched no rows", zap.Uint("hospital_id", id))
	}
	return rows, nil
}

// DeleteHospital removes a hospital and everything reachable from it:
// its assignments and the appointments booked under them, as one atomic
// unit. Deleting an unknown or already-deleted hospital succeeds.
func (s *HospitalService) DeleteHospital(id uint) error {
	rows, err := s.hospitals.DeleteHospitalCascade(id)
	if err != nil {
		return fmt.Errorf("failed to delete hospital: %w", err)
	}

	s.logger.Info("hospital deleted",
		zap.Uint("hospital_id", id),
		zap.Int64("rows_matched", rows),
	)
	return nil
}

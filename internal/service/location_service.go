package service

import (
	"fmt"

	"healthcare-appointment-backend/internal/models"
)

// LocationStore is the persistence surface the location service depends on
type LocationStore interface {
	CreateLocation(location *models.Location) error
	ListLocations() ([]models.Location, error)
	ListLocationsByUserID(userID uint) ([]models.Location, error)
	UpdateLocation(id uint, fields map[string]interface{}) (int64, error)
	DeleteLocation(id uint) (int64, error)
}

type LocationService struct {
	locations LocationStore
}

func NewLocationService(locations LocationStore) *LocationService {
	return &LocationService{locations: locations}
}

// SaveLocation stores a new location for a user
func (s *LocationService) SaveLocation(location *models.Location) error {
	if err := s.locations.CreateLocation(location); err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}
	return nil
}

// ListLocations returns all saved locations
func (s *LocationService) ListLocations() ([]models.Location, error) {
	return s.locations.ListLocations()
}

// ListLocationsForUser returns the locations one user saved
func (s *LocationService) ListLocationsForUser(userID uint) ([]models.Location, error) {
	return s.locations.ListLocationsByUserID(userID)
}

// UpdateLocation replaces the mutable location fields; unknown ids are a
// no-op success with a zero count
func (s *LocationService) UpdateLocation(id uint, name string, latitude, longitude float64, address string, userID uint) (int64, error) {
	fields := map[string]interface{}{
		"name":      name,
		"latitude":  latitude,
		"longitude": longitude,
		"address":   address,
		"user_id":   userID,
	}

	rows, err := s.locations.UpdateLocation(id, fields)
	if err != nil {
		return 0, fmt.Errorf("failed to update location: %w", err)
	}
	return rows, nil
}

// DeleteLocation removes a saved location; unknown ids are a no-op success
func (s *LocationService) DeleteLocation(id uint) (int64, error) {
	rows, err := s.locations.DeleteLocation(id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete location: %w", err)
	}
	return rows, nil
}

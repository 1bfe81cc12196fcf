package repository

import (
	"healthcare-appointment-backend/internal/models"

	"gorm.io/gorm"
)

type LocationRepository struct {
	db *gorm.DB
}

func NewLocationRepo(db *gorm.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// CreateLocation creates a new saved location
func (r *LocationRepository) CreateLocation(location *models.Location) error {
	return r.db.Create(location).Error
}

// ListLocations retrieves all saved locations
func (r *LocationRepository) ListLocations() ([]models.Location, error) {
	var locations []models.Location
	err := r.db.Order("id ASC").Find(&locations).Error
	return locations, err
}

// ListLocationsByUserID retrieves the locations one user saved
func (r *LocationRepository) ListLocationsByUserID(userID uint) ([]models.Location, error) {
	var locations []models.Location
	err := r.db.Where("user_id = ?", userID).
		Order("id ASC").
		Find(&locations).Error
	return locations, err
}

// UpdateLocation replaces the mutable location fields and reports how many
// rows matched
func (r *LocationRepository) UpdateLocation(id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.Location{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// DeleteLocation removes a saved location and reports how many rows matched
func (r *LocationRepository) DeleteLocation(id uint) (int64, error) {
	res := r.db.Where("id = ?", id).Delete(&models.Location{})
	return res.RowsAffected, res.Error
}

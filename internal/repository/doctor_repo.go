package repository

import (
	"errors"

	"healthcare-appointment-backend/internal/models"

	"gorm.io/gorm"
)

type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepo(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// ListDoctors retrieves all doctors
func (r *DoctorRepository) ListDoctors() ([]models.Doctor, error) {
	var doctors []models.Doctor
	err := r.db.Order("name ASC").Find(&doctors).Error
	return doctors, err
}

// GetDoctorByID retrieves a doctor by id
func (r *DoctorRepository) GetDoctorByID(id uint) (*models.Doctor, error) {
	var doctor models.Doctor
	err := r.db.First(&doctor, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

package repository

import (
	"errors"

	"healthcare-appointment-backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindUserByEmail finds a user by their normalized email address
func (r *UserRepository) FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByID finds a user by id
func (r *UserRepository) FindUserByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a new user
func (r *UserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

// UpdateUser replaces the mutable user fields and reports how many rows
// matched. Zero matched rows is not an error.
func (r *UserRepository) UpdateUser(id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.User{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// DeleteUser removes a user and reports how many rows matched
func (r *UserRepository) DeleteUser(id uint) (int64, error) {
	res := r.db.Where("id = ?", id).Delete(&models.User{})
	return res.RowsAffected, res.Error
}

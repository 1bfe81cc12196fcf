package service

import (
	"errors"
	"fmt"
	"strings"

	"healthcare-appointment-backend/internal/models"
	"healthcare-appointment-backend/internal/repository"
	"healthcare-appointment-backend/pkg/utils"

	"go.uber.org/zap"
)

// UserStore is the persistence surface the user service depends on
type UserStore interface {
	FindUserByEmail(email string) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(id uint, fields map[string]interface{}) (int64, error)
	DeleteUser(id uint) (int64, error)
}

type UserService struct {
	users  UserStore
	logger *zap.Logger
}

func NewUserService(users UserStore, logger *zap.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

// Register creates a new user account. Emails are lowercased before storage
// and lookup so the unique index is effectively case-insensitive.
func (s *UserService) Register(name, email, password string) (*models.User, error) {
	email = normalizeEmail(email)

	_, err := s.users.FindUserByEmail(email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.users.CreateUser(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", zap.Uint("user_id", user.ID))
	return user, nil
}

// Login checks the credentials and returns the user row on success.
// Unknown email and wrong password stay distinguishable for the caller.
func (s *UserService) Login(email, password string) (*models.User, error) {
	user, err := s.users.FindUserByEmail(normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, ErrWrongPassword
	}
	return user, nil
}

// UpdateUser replaces name and email, and the password when a new one is
// provided. Updating an unknown id is a no-op success; the matched-row
// count is returned so callers can tell.
func (s *UserService) UpdateUser(id uint, name, email, password string) (int64, error) {
	fields := map[string]interface{}{
		"name":  name,
		"email": normalizeEmail(email),
	}
	if password != "" {
		passwordHash, err := utils.HashPassword(password)
		if err != nil {
			return 0, fmt.Errorf("failed to hash password: %w", err)
		}
		fields["password_hash"] = passwordHash
	}

	rows, err := s.users.UpdateUser(id, fields)
	if err != nil {
		return 0, fmt.Errorf("failed to update user: %w", err)
	}
	return rows, nil
}

// DeleteUser removes a user account; deleting an unknown id succeeds
func (s *UserService) DeleteUser(id uint) (int64, error) {
	rows, err := s.users.DeleteUser(id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user: %w", err)
	}
	return rows, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

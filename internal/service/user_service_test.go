package service

import (
	"testing"

	"healthcare-appointment-backend/internal/models"
	"healthcare-appointment-backend/internal/repository"
	"healthcare-appointment-backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUserStore struct {
	byEmail    map[string]*models.User
	nextID     uint
	lastFields map[string]interface{}
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]*models.User), nextID: 1}
}

func (f *fakeUserStore) FindUserByEmail(email string) (*models.User, error) {
	if user, ok := f.byEmail[email]; ok {
		return user, nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) CreateUser(user *models.User) error {
	user.ID = f.nextID
	f.nextID++
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserStore) UpdateUser(id uint, fields map[string]interface{}) (int64, error) {
	f.lastFields = fields
	for _, user := range f.byEmail {
		if user.ID == id {
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeUserStore) DeleteUser(id uint) (int64, error) {
	for email, user := range f.byEmail {
		if user.ID == id {
			delete(f.byEmail, email)
			return 1, nil
		}
	}
	return 0, nil
}

func TestRegisterNormalizesEmailAndHashesPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, zap.NewNop())

	user, err := svc.Register("Ana", "  Ana@Example.COM ", "s3cretpw")
	require.NoError(t, err)

	assert.Equal(t, "ana@example.com", user.Email)
	assert.NotEqual(t, "s3cretpw", user.PasswordHash)
	assert.True(t, utils.ComparePassword(user.PasswordHash, "s3cretpw"))
}

func TestRegisterRejectsTakenEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, zap.NewNop())

	_, err := svc.Register("Ana", "ana@example.com", "s3cretpw")
	require.NoError(t, err)

	// Same address in different casing is still taken
	_, err = svc.Register("Other Ana", "ANA@example.com", "otherpw")
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginDistinguishesUnknownEmailFromWrongPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, zap.NewNop())

	_, err := svc.Register("Ana", "ana@example.com", "s3cretpw")
	require.NoError(t, err)

	_, err = svc.Login("nobody@example.com", "s3cretpw")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Login("ana@example.com", "wrongpw")
	assert.ErrorIs(t, err, ErrWrongPassword)

	user, err := svc.Login("Ana@Example.com", "s3cretpw")
	require.NoError(t, err)
	assert.Equal(t, "Ana", user.Name)
}

func TestUpdateUserSkipsPasswordWhenEmpty(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, zap.NewNop())

	_, err := svc.Register("Ana", "ana@example.com", "s3cretpw")
	require.NoError(t, err)

	rows, err := svc.UpdateUser(1, "Ana Maria", "ana@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.NotContains(t, store.lastFields, "password_hash")

	rows, err = svc.UpdateUser(1, "Ana Maria", "ana@example.com", "newsecret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	assert.Contains(t, store.lastFields, "password_hash")
}

func TestUpdateUserUnknownIDIsNoOp(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store, zap.NewNop())

	rows, err := svc.UpdateUser(404, "Ghost", "ghost@example.com", "")
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
}

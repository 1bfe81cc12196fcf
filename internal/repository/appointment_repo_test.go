package repository

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var appointmentColumns = []string{"id", "assign_id", "user_id", "hospital_id", "rating"}

func TestListByAssignmentIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM `appointments` WHERE assign_id IN (.+) ORDER BY id ASC").
		WithArgs(3, 4).
		WillReturnRows(sqlmock.NewRows(appointmentColumns).
			AddRow(1, 3, 10, 7, 4.0).
			AddRow(2, 4, 11, 7, nil))

	appointments, err := repo.ListByAssignmentIDs([]uint{3, 4})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	require.Len(t, appointments, 2)

	assert.Equal(t, uint(3), appointments[0].AssignID)
	require.NotNil(t, appointments[0].Rating)
	assert.Equal(t, 4.0, *appointments[0].Rating)
	assert.Nil(t, appointments[1].Rating)
}

func TestListByAssignmentIDsAndUsersFiltersBothSets(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAppointmentRepo(db)

	mock.ExpectQuery("SELECT (.+) FROM `appointments` WHERE assign_id IN (.+) AND user_id IN (.+) ORDER BY id ASC").
		WithArgs(3, 4, 1, 3).
		WillReturnRows(sqlmock.NewRows(appointmentColumns).
			AddRow(1, 3, 1, 7, nil).
			AddRow(5, 4, 3, 7, 5.0))

	appointments, err := repo.ListByAssignmentIDsAndUsers([]uint{3, 4}, []uint{1, 3})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	require.Len(t, appointments, 2)

	for _, a := range appointments {
		assert.Contains(t, []uint{3, 4}, a.AssignID)
		assert.Contains(t, []uint{1, 3}, a.UserID)
	}
}

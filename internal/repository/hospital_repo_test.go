package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hospitalDetailColumns = []string{
	"id", "name", "latitude", "longitude", "address", "picture",
	"created_at", "updated_at",
	"assign_id", "doctor_id", "doctor_name", "doctor_picture", "doctor_email",
}

var statsColumns = []string{"total_appointments", "total_reviews", "rating"}

func TestGetHospitalDetailAggregates(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHospitalRepo(db)

	now := time.Now()
	mock.ExpectQuery("(?s)SELECT (.+) FROM `hospitals` LEFT JOIN assignments (.+) LEFT JOIN doctors (.+)").
		WillReturnRows(sqlmock.NewRows(hospitalDetailColumns).
			AddRow(7, "Mercy General", -6.2, 106.8, "Jl. Sudirman 12", "uploads/hospital/7_a.jpg",
				now, now,
				3, 11, "dr. Sari", "doctors/11.jpg", "sari@mercy.example"))

	// Appointments rated [4, 5, null, 3] by four distinct users
	mock.ExpectQuery("(?s)SELECT COUNT\\(DISTINCT appointments.user_id\\)(.+)FROM `appointments` INNER JOIN assignments(.+)").
		WillReturnRows(sqlmock.NewRows(statsColumns).AddRow(4, 3, 4.0))

	detail, err := repo.GetHospitalDetail(7)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, uint(7), detail.ID)
	assert.Equal(t, "Mercy General", detail.Name)
	require.NotNil(t, detail.AssignID)
	assert.Equal(t, uint(3), *detail.AssignID)
	require.NotNil(t, detail.DoctorName)
	assert.Equal(t, "dr. Sari", *detail.DoctorName)
	assert.Equal(t, 4, detail.TotalAppointments)
	assert.Equal(t, 3, detail.TotalReviews)
	assert.Equal(t, 4.0, detail.Rating)
}

func TestGetHospitalDetailNoAssignments(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHospitalRepo(db)

	now := time.Now()
	mock.ExpectQuery("(?s)SELECT (.+) FROM `hospitals` LEFT JOIN assignments (.+)").
		WillReturnRows(sqlmock.NewRows(hospitalDetailColumns).
			AddRow(2, "New Clinic", 0.5, 101.4, "Jl. Melati 3", "",
				now, now,
				nil, nil, nil, nil, nil))

	mock.ExpectQuery("(?s)SELECT COUNT\\(DISTINCT appointments.user_id\\)(.+)").
		WillReturnRows(sqlmock.NewRows(statsColumns).AddRow(0, 0, 0))

	detail, err := repo.GetHospitalDetail(2)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Nil(t, detail.AssignID)
	assert.Nil(t, detail.DoctorID)
	assert.Nil(t, detail.DoctorName)
	assert.Nil(t, detail.DoctorPicture)
	assert.Nil(t, detail.DoctorEmail)
	assert.Zero(t, detail.TotalAppointments)
	assert.Zero(t, detail.TotalReviews)
	assert.Zero(t, detail.Rating)
}

func TestGetHospitalDetailNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHospitalRepo(db)

	mock.ExpectQuery("(?s)SELECT (.+) FROM `hospitals` LEFT JOIN assignments (.+)").
		WillReturnRows(sqlmock.NewRows(hospitalDetailColumns))

	_, err := repo.GetHospitalDetail(99)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListHospitalsWithPrimaryDoctorLeavesStatsZero(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHospitalRepo(db)

	now := time.Now()
	mock.ExpectQuery("(?s)SELECT (.+) FROM `hospitals` LEFT JOIN assignments (.+) ORDER BY hospitals.id ASC").
		WillReturnRows(sqlmock.NewRows(hospitalDetailColumns).
			AddRow(1, "Mercy General", -6.2, 106.8, "Jl. Sudirman 12", "",
				now, now, 3, 11, "dr. Sari", "doctors/11.jpg", "sari@mercy.example").
			AddRow(2, "New Clinic", 0.5, 101.4, "Jl. Melati 3", "",
				now, now, nil, nil, nil, nil, nil))

	hospitals, err := repo.ListHospitalsWithPrimaryDoctor()
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
	require.Len(t, hospitals, 2)

	require.NotNil(t, hospitals[0].DoctorName)
	assert.Equal(t, "dr. Sari", *hospitals[0].DoctorName)
	assert.Nil(t, hospitals[1].DoctorName)

	// The listing never aggregates; statistics stay zero even for hospitals
	// with appointments.
	for _, h := range hospitals {
		assert.Zero(t, h.TotalAppointments)
		assert.Zero(t, h.TotalReviews)
		assert.Zero(t, h.Rating)
	}
}

func TestDeleteHospitalCascadeCommitsAllThree(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHospitalRepo(db)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `appointments` WHERE assign_id IN \\(SELECT(.+)").
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec("DELETE FROM `assignments` WHERE hospital_id = (.+)").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM `hospitals` WHERE id = (.+)").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rows, err := repo.DeleteHospitalCascade(7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteHospitalCascadeRollsBackOnFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHospitalRepo(db)

	// The second step fails: the appointment deletions from the first step
	// must be rolled back, never committed.
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `appointments`(.+)").
		WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec("DELETE FROM `assignments`(.+)").
		WillReturnError(errors.New("store unavailable"))
	mock.ExpectRollback()

	_, err := repo.DeleteHospitalCascade(7)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteHospitalCascadeIsIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHospitalRepo(db)

	// Second delete of the same hospital matches nothing and still succeeds
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `appointments`(.+)").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `assignments`(.+)").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM `hospitals`(.+)").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	rows, err := repo.DeleteHospitalCascade(7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateHospitalReportsZeroRowsForUnknownID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHospitalRepo(db)

	mock.ExpectExec("UPDATE `hospitals` SET (.+) WHERE id = (.+)").
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.UpdateHospital(404, map[string]interface{}{
		"name":      "Ghost Hospital",
		"latitude":  1.0,
		"longitude": 2.0,
		"address":   "Nowhere",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)
	require.NoError(t, mock.ExpectationsWereMet())
}

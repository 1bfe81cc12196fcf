package repository

import (
	"errors"

	"healthcare-appointment-backend/internal/models"

	"gorm.io/gorm"
)

type HospitalRepository struct {
	db *gorm.DB
}

func NewHospitalRepo(db *gorm.DB) *HospitalRepository {
	return &HospitalRepository{db: db}
}

// primaryDoctorJoin attaches each hospital's assignment with the lowest id
// and that assignment's doctor. The lowest id is the documented tie-break
// when a hospital has several assignments.
func (r *HospitalRepository) primaryDoctorJoin() *gorm.DB {
	return r.db.Table("hospitals").
		Select(`hospitals.*,
			assignments.id AS assign_id,
			doctors.id AS doctor_id,
			doctors.name AS doctor_name,
			doctors.picture AS doctor_picture,
			doctors.email AS doctor_email`).
		Joins(`LEFT JOIN assignments ON assignments.hospital_id = hospitals.id
			AND assignments.id = (SELECT MIN(a2.id) FROM assignments a2 WHERE a2.hospital_id = hospitals.id)`).
		Joins("LEFT JOIN doctors ON doctors.id = assignments.doctor_id")
}

type hospitalStats struct {
	TotalAppointments int
	TotalReviews      int
	Rating            float64
}

// GetHospitalDetail returns the aggregate view for one hospital: its fields,
// its primary doctor (nulls when unassigned) and statistics computed across
// all of the hospital's assignments.
//
// TotalAppointments counts distinct users with an appointment at the
// hospital; TotalReviews counts distinct users whose appointment carries a
// rating; Rating is the mean of non-null ratings rounded to one decimal.
func (r *HospitalRepository) GetHospitalDetail(id uint) (*models.HospitalDetail, error) {
	var detail models.HospitalDetail
	err := r.primaryDoctorJoin().
		Where("hospitals.id = ?", id).
		Take(&detail).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var stats hospitalStats
	err = r.db.Table("appointments").
		Select(`COUNT(DISTINCT appointments.user_id) AS total_appointments,
			COUNT(DISTINCT CASE WHEN appointments.rating IS NOT NULL THEN appointments.user_id END) AS total_reviews,
			COALESCE(ROUND(AVG(appointments.rating), 1), 0) AS rating`).
		Joins("INNER JOIN assignments ON assignments.id = appointments.assign_id").
		Where("assignments.hospital_id = ?", id).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}

	detail.TotalAppointments = stats.TotalAppointments
	detail.TotalReviews = stats.TotalReviews
	detail.Rating = stats.Rating

	return &detail, nil
}

// ListHospitalsWithPrimaryDoctor returns every hospital with its primary
// doctor attached. The statistic fields stay zero here: computing them would
// cost one aggregate query per hospital, so the listing deliberately skips
// them and only the detail view aggregates.
func (r *HospitalRepository) ListHospitalsWithPrimaryDoctor() ([]models.HospitalDetail, error) {
	var hospitals []models.HospitalDetail
	err := r.primaryDoctorJoin().
		Order("hospitals.id ASC").
		Find(&hospitals).Error
	return hospitals, err
}

// CreateHospital creates a new hospital
func (r *HospitalRepository) CreateHospital(hospital *models.Hospital) error {
	return r.db.Create(hospital).Error
}

// HospitalExists reports whether a hospital row with the given id exists
func (r *HospitalRepository) HospitalExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Hospital{}).
		Where("id = ?", id).
		Count(&count).Error
	return count > 0, err
}

// UpdateHospital replaces the mutable hospital fields and reports how many
// rows matched. The picture column is never touched here. Zero matched rows
// is not an error.
func (r *HospitalRepository) UpdateHospital(id uint, fields map[string]interface{}) (int64, error) {
	res := r.db.Model(&models.Hospital{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// UpdateHospitalPicture stores the path of an uploaded picture on the row
func (r *HospitalRepository) UpdateHospitalPicture(id uint, path string) error {
	return r.db.Model(&models.Hospital{}).
		Where("id = ?", id).
		Update("picture", path).Error
}

// DeleteHospitalCascade removes a hospital together with its assignments and
// the appointments booked under them. The three deletions run in one
// transaction so a failure part-way leaves no orphaned rows behind. Deleting
// a hospital that does not exist is a no-op success.
func (r *HospitalRepository) DeleteHospitalCascade(id uint) (int64, error) {
	var hospitalRows int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		assignIDs := tx.Model(&models.Assignment{}).
			Select("id").
			Where("hospital_id = ?", id)

		if err := tx.Where("assign_id IN (?)", assignIDs).
			Delete(&models.Appointment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("hospital_id = ?", id).
			Delete(&models.Assignment{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&models.Hospital{})
		if res.Error != nil {
			return res.Error
		}
		hospitalRows = res.RowsAffected
		return nil
	})
	return hospitalRows, err
}

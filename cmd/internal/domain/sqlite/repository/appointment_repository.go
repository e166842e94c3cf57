package repository

import (
	"clinic/cmd/internal/domain/entity"
	"errors"
	"gorm.io/gorm"
	"time"
)

var (
	ErrSlotFull      = errors.New("doctor slot is at capacity")
	ErrDuplicateSlot = errors.New("patient already booked at this time")
)

type DefaultAppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *DefaultAppointmentRepository {
	return &DefaultAppointmentRepository{db: db}
}

func (a *DefaultAppointmentRepository) FindByID(id int) (*entity.Appointment, error) {
	var appt entity.Appointment
	err := a.db.First(&appt, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &appt, err
}

func (a *DefaultAppointmentRepository) CountByDoctorAndPatient(doctorID, patientID int) (int64, error) {
	var count int64
	err := a.db.Model(&entity.Appointment{}).
		Where("doctor_id = ?", doctorID).
		Where("patient_id = ?", patientID).
		Count(&count).Error
	return count, err
}

func (a *DefaultAppointmentRepository) ExistsByPatientAt(patientID int, at time.Time) (bool, error) {
	var count int64
	err := a.db.Model(&entity.Appointment{}).
		Where("patient_id = ?", patientID).
		Where("date_time = ?", at).
		Count(&count).Error
	return count > 0, err
}

// FindByDoctorBetween returns the doctor's appointments in [from, to),
// joined with the booking patient.
func (a *DefaultAppointmentRepository) FindByDoctorBetween(doctorID int, from, to time.Time) ([]*entity.AppointmentWithPatient, error) {
	var results []*entity.AppointmentWithPatient

	err := a.db.Model(&entity.Appointment{}).
		Select("appointments.id, patients.first_name AS patient_first_name, patients.last_name AS patient_last_name, "+
			"patients.email, appointments.date_time, appointments.kind").
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Where("appointments.doctor_id = ?", doctorID).
		Where("appointments.date_time >= ?", from).
		Where("appointments.date_time < ?", to).
		Order("appointments.date_time asc, appointments.id asc").
		Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}

// CreateWithinCapacity inserts the appointment only if its doctor has fewer
// than capacity appointments at the same date_time. The count and the insert
// share one transaction.
func (a *DefaultAppointmentRepository) CreateWithinCapacity(appointment *entity.Appointment, capacity int64) error {
	return a.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&entity.Appointment{}).
			Where("doctor_id = ?", appointment.DoctorID).
			Where("date_time = ?", appointment.DateTime).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count >= capacity {
			return ErrSlotFull
		}

		err = tx.Create(appointment).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateSlot
		}
		return err
	})
}

func (a *DefaultAppointmentRepository) Delete(appointment *entity.Appointment) error {
	return a.db.Delete(appointment).Error
}

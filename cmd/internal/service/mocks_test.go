package service

import (
	"clinic/cmd/internal/domain/entity"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockDoctorRepository struct {
	mock.Mock
}

func (m *MockDoctorRepository) FindByID(id int) (*entity.Doctor, error) {
	args := m.Called(id)
	doctor, _ := args.Get(0).(*entity.Doctor)
	return doctor, args.Error(1)
}

func (m *MockDoctorRepository) FindAll() ([]*entity.Doctor, error) {
	args := m.Called()
	doctors, _ := args.Get(0).([]*entity.Doctor)
	return doctors, args.Error(1)
}

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) FindByEmail(email string) (*entity.Patient, error) {
	args := m.Called(email)
	patient, _ := args.Get(0).(*entity.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientRepository) Save(patient *entity.Patient) error {
	args := m.Called(patient)
	return args.Error(0)
}

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) FindByID(id int) (*entity.Appointment, error) {
	args := m.Called(id)
	appt, _ := args.Get(0).(*entity.Appointment)
	return appt, args.Error(1)
}

func (m *MockAppointmentRepository) CountByDoctorAndPatient(doctorID, patientID int) (int64, error) {
	args := m.Called(doctorID, patientID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) ExistsByPatientAt(patientID int, at time.Time) (bool, error) {
	args := m.Called(patientID, at)
	return args.Bool(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindByDoctorBetween(doctorID int, from, to time.Time) ([]*entity.AppointmentWithPatient, error) {
	args := m.Called(doctorID, from, to)
	appts, _ := args.Get(0).([]*entity.AppointmentWithPatient)
	return appts, args.Error(1)
}

func (m *MockAppointmentRepository) CreateWithinCapacity(appointment *entity.Appointment, capacity int64) error {
	args := m.Called(appointment, capacity)
	return args.Error(0)
}

func (m *MockAppointmentRepository) Delete(appointment *entity.Appointment) error {
	args := m.Called(appointment)
	return args.Error(0)
}

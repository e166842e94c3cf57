package service

import (
	"clinic/cmd/internal/domain/entity"
	"clinic/cmd/internal/domain/sqlite/repository"
	"clinic/cmd/internal/utils"
	"clinic/cmd/internal/utils/apierror"
	"errors"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
	"time"
)

// MaxAppointmentsPerSlot caps how many patients a doctor sees at one date_time.
const MaxAppointmentsPerSlot = 3

type AppointmentRepository interface {
	FindByID(id int) (*entity.Appointment, error)
	CountByDoctorAndPatient(doctorID, patientID int) (int64, error)
	ExistsByPatientAt(patientID int, at time.Time) (bool, error)
	FindByDoctorBetween(doctorID int, from, to time.Time) ([]*entity.AppointmentWithPatient, error)
	CreateWithinCapacity(appointment *entity.Appointment, capacity int64) error
	Delete(appointment *entity.Appointment) error
}

type PatientRepository interface {
	FindByEmail(email string) (*entity.Patient, error)
	Save(patient *entity.Patient) error
}

type AppointmentRequest struct {
	DoctorID         int    `json:"doctor_id"`
	PatientFirstName string `json:"patient_first_name"`
	PatientLastName  string `json:"patient_last_name"`
	Email            string `json:"email"`
	DateTime         string `json:"date_time"`
}

type AppointmentResponse struct {
	ID               int    `json:"id"`
	PatientFirstName string `json:"patient_first_name"`
	PatientLastName  string `json:"patient_last_name"`
	Email            string `json:"email"`
	DateTime         string `json:"date_time"`
	Kind             string `json:"kind"`
}

type DefaultAppointmentService struct {
	AppointmentRepo AppointmentRepository
	DoctorRepo      DoctorRepository
	PatientRepo     PatientRepository
	Validate        *validator.Validate
	Now             func() time.Time
}

// NewAppointmentService builds the service; "now" is read in loc, the
// clinic's time zone, when checking that bookings are not in the past.
func NewAppointmentService(apptRepo AppointmentRepository, doctorRepo DoctorRepository, patientRepo PatientRepository,
	validate *validator.Validate, loc *time.Location) *DefaultAppointmentService {
	return &DefaultAppointmentService{
		AppointmentRepo: apptRepo,
		DoctorRepo:      doctorRepo,
		PatientRepo:     patientRepo,
		Validate:        validate,
		Now:             func() time.Time { return time.Now().In(loc) },
	}
}

func (a *DefaultAppointmentService) GetAppointments(doctorID int, date string) ([]*AppointmentResponse, apierror.ErrorResponse) {
	from, to, err := utils.ParseDay(date)
	if err != nil {
		return nil, apierror.InvalidDateError
	}

	doctor, err := a.DoctorRepo.FindByID(doctorID)
	if err != nil {
		log.Errorf("failed to fetch doctor by id %d: %v", doctorID, err)
		return nil, apierror.InternalServerError
	}
	if doctor == nil {
		return nil, apierror.DoctorNotFoundError
	}

	appts, err := a.AppointmentRepo.FindByDoctorBetween(doctorID, from, to)
	if err != nil {
		log.Errorf("failed to fetch appointments of doctor %d on %s: %v", doctorID, date, err)
		return nil, apierror.InternalServerError
	}

	response := make([]*AppointmentResponse, len(appts))
	for i, appt := range appts {
		response[i] = toAppointmentResponse(appt)
	}
	return response, nil
}

// CreateAppointment books a patient with a doctor. Checks run in a fixed
// order and the first failing one is returned. A patient created while
// booking is kept even if a later check rejects the appointment.
func (a *DefaultAppointmentService) CreateAppointment(req *AppointmentRequest) apierror.ErrorResponse {
	doctor, err := a.DoctorRepo.FindByID(req.DoctorID)
	if err != nil {
		log.Errorf("failed to fetch doctor by id %d: %v", req.DoctorID, err)
		return apierror.InternalServerError
	}
	if doctor == nil {
		return apierror.DoctorIDNotExistError
	}

	dateTime, err := utils.ParseDateTime(req.DateTime)
	if err != nil {
		return apierror.InvalidDateTimeError
	}

	if valerr := a.Validate.Var(req.Email, "clinicemail"); valerr != nil {
		return apierror.InvalidEmailError
	}

	if dateTime.Before(utils.WallClock(a.Now())) {
		return apierror.AppointmentInPastError
	}

	patient, kind, apierr := a.resolvePatient(req)
	if apierr != nil {
		return apierr
	}

	booked, err := a.AppointmentRepo.ExistsByPatientAt(patient.ID, dateTime)
	if err != nil {
		log.Errorf("failed to check bookings of patient %d at %s: %v", patient.ID, req.DateTime, err)
		return apierror.InternalServerError
	}
	if booked {
		return apierror.PatientDoubleBookedError
	}

	if !utils.IsQuarterHour(dateTime) {
		return apierror.SlotNotAlignedError
	}

	appointment := &entity.Appointment{
		DoctorID:  doctor.ID,
		PatientID: patient.ID,
		DateTime:  dateTime,
		Kind:      kind,
	}

	err = a.AppointmentRepo.CreateWithinCapacity(appointment, MaxAppointmentsPerSlot)
	switch {
	case errors.Is(err, repository.ErrSlotFull):
		return apierror.DoctorSlotFullError
	case errors.Is(err, repository.ErrDuplicateSlot):
		return apierror.PatientDoubleBookedError
	case err != nil:
		log.Errorf("failed to save appointment: %v", err)
		return apierror.InternalServerError
	}
	return nil
}

func (a *DefaultAppointmentService) DeleteAppointment(id int) apierror.ErrorResponse {
	appt, err := a.AppointmentRepo.FindByID(id)
	if err != nil {
		log.Errorf("failed to fetch appointment by id %d: %v", id, err)
		return apierror.InternalServerError
	}

	if appt == nil {
		return apierror.AppointmentNotFoundError
	}

	err = a.AppointmentRepo.Delete(appt)
	if err != nil {
		log.Errorf("failed to delete appointment by id %d: %v", id, err)
		return apierror.InternalServerError
	}
	return nil
}

// resolvePatient finds the patient by email, or registers a new one, and
// classifies the booking against the patient's history with the doctor.
func (a *DefaultAppointmentService) resolvePatient(req *AppointmentRequest) (*entity.Patient, string, apierror.ErrorResponse) {
	patient, err := a.PatientRepo.FindByEmail(req.Email)
	if err != nil {
		log.Errorf("failed to fetch patient by email %s: %v", req.Email, err)
		return nil, "", apierror.InternalServerError
	}

	if patient != nil {
		previous, err := a.AppointmentRepo.CountByDoctorAndPatient(req.DoctorID, patient.ID)
		if err != nil {
			log.Errorf("failed to count appointments of patient %d with doctor %d: %v", patient.ID, req.DoctorID, err)
			return nil, "", apierror.InternalServerError
		}
		if previous > 0 {
			return patient, entity.KindFollowUp, nil
		}
		return patient, entity.KindNewPatient, nil
	}

	patient = &entity.Patient{
		FirstName: req.PatientFirstName,
		LastName:  req.PatientLastName,
		Email:     req.Email,
	}
	if err := a.PatientRepo.Save(patient); err != nil {
		log.Errorf("failed to create patient %s: %v", req.Email, err)
		return nil, "", apierror.InternalServerError
	}
	return patient, entity.KindNewPatient, nil
}

func toAppointmentResponse(appt *entity.AppointmentWithPatient) *AppointmentResponse {
	return &AppointmentResponse{
		ID:               appt.ID,
		PatientFirstName: appt.PatientFirstName,
		PatientLastName:  appt.PatientLastName,
		Email:            appt.Email,
		DateTime:         utils.FormatDateTime(appt.DateTime),
		Kind:             appt.Kind,
	}
}

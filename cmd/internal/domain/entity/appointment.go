package entity

import "time"

const (
	KindNewPatient = "New patient"
	KindFollowUp   = "Follow up"
)

type Appointment struct {
	ID        int       `gorm:"primaryKey"`
	DoctorID  int       `gorm:"not null;index:idx_doctor_slot"`                              // References: doctors(id)
	PatientID int       `gorm:"not null;uniqueIndex:idx_patient_slot"`                       // References: patients(id)
	DateTime  time.Time `gorm:"not null;index:idx_doctor_slot;uniqueIndex:idx_patient_slot"` // Wall clock, stored as UTC
	Kind      string    `gorm:"not null"`
}

// AppointmentWithPatient is an appointment row joined with its patient.
type AppointmentWithPatient struct {
	ID               int
	PatientFirstName string
	PatientLastName  string
	Email            string
	DateTime         time.Time
	Kind             string
}

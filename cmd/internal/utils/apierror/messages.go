package apierror

// Booking and lookup failures.
var (
	DoctorIDNotExistError    = NewBadRequest("Doctor ID does not exist.")
	InvalidDateTimeError     = NewBadRequest("Invalid date_time format. Please use YYYY-MM-DD HH:MM:SS.")
	InvalidEmailError        = NewBadRequest("Invalid email format.")
	AppointmentInPastError   = NewBadRequest("Appointment date cannot be before the current date.")
	PatientDoubleBookedError = NewBadRequest("Patient already has an appointment at the same time.")
	SlotNotAlignedError      = NewBadRequest("Start time must be at 15-minute intervals")
	DoctorSlotFullError      = NewBadRequest("Doctor already has 3 appointments at the same time")
	InvalidDateError         = NewBadRequest("Invalid date format. Please use YYYY-MM-DD.")
	DoctorNotFoundError      = NewNotFound("Doctor not found.")
	AppointmentNotFoundError = NewNotFound("Appointment not found")
)

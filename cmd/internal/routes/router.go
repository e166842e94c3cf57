package routes

import "github.com/labstack/echo/v4"

func Register(e *echo.Echo, doctors *DefaultDoctorRoute, appts *DefaultAppointmentRoute) {
	// Doctors
	e.GET("/doctors", doctors.GetDoctors)

	// Appointments
	e.GET("/appointments/:doctor_id/:date", appts.GetAppointments)
	e.POST("/appointments", appts.CreateAppointment)
	e.DELETE("/appointments/:appointment_id", appts.DeleteAppointment)
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// Appointment references a doctor and a patient that must belong to the same
// clinic as the appointment itself. The schema does not declare that
// constraint; the appointment service enforces it before writing.
type Appointment struct {
	Base
	ClinicID  uuid.UUID `db:"clinic_id" json:"clinic_id"`
	DoctorID  uuid.UUID `db:"doctor_id" json:"doctor_id"`
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	Date      time.Time `db:"appointment_date" json:"appointment_date"`
}

type CreateAppointmentRequest struct {
	DoctorID  string    `json:"doctor_id" binding:"required,uuid"`
	PatientID string    `json:"patient_id" binding:"required,uuid"`
	Date      time.Time `json:"appointment_date" binding:"required"`
}

type UpdateAppointmentRequest struct {
	Date *time.Time `json:"appointment_date"`
}

// AppointmentFilters narrows appointment listings.
type AppointmentFilters struct {
	DoctorID  uuid.UUID
	PatientID uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

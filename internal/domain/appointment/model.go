package appointment

import (
	"errors"
	"time"
)

// Status is an appointment's lifecycle state.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

var ErrNotFound = errors.New("appointment not found")

// Appointment maps to the appointments table. PatientID and DoctorID are
// informational references; the store never checks that they name existing
// users, and overlapping appointments for the same doctor or patient are
// allowed.
type Appointment struct {
	ID              int64     `db:"id" json:"id"`
	PatientID       int64     `db:"patient_id" json:"patientId"`
	DoctorID        int64     `db:"doctor_id" json:"doctorId"`
	AppointmentDate time.Time `db:"appointment_date" json:"appointmentDate"`
	Duration        int       `db:"duration" json:"duration"`
	Status          Status    `db:"status" json:"status"`
	Type            string    `db:"type" json:"type"`
	Notes           *string   `db:"notes" json:"notes,omitempty"`
}

// Patch carries a partial update. Nil fields are preserved; non-nil fields
// overwrite (shallow merge).
type Patch struct {
	PatientID       *int64     `json:"patientId,omitempty"`
	DoctorID        *int64     `json:"doctorId,omitempty"`
	AppointmentDate *time.Time `json:"appointmentDate,omitempty"`
	Duration        *int       `json:"duration,omitempty"`
	Status          *Status    `json:"status,omitempty"`
	Type            *string    `json:"type,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

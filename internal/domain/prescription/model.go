package prescription

import (
	"errors"
	"time"
)

// Status is a prescription's lifecycle state.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusCompleted
}

var ErrNotFound = errors.New("prescription not found")

// Prescription maps to the prescriptions table. FileData holds an optional
// attachment inline as base64 text; no size limit is enforced server-side.
// Prescriptions are never deleted.
type Prescription struct {
	ID               int64     `db:"id" json:"id"`
	PatientID        int64     `db:"patient_id" json:"patientId"`
	DoctorID         int64     `db:"doctor_id" json:"doctorId"`
	PrescriptionDate time.Time `db:"prescription_date" json:"prescriptionDate"`
	Status           Status    `db:"status" json:"status"`
	Notes            *string   `db:"notes" json:"notes,omitempty"`
	FileData         *string   `db:"file_data" json:"fileData,omitempty"`
	FileName         *string   `db:"file_name" json:"fileName,omitempty"`
}

// Patch carries a partial update. Nil fields are preserved; non-nil fields
// overwrite. DoctorID is not patchable: ownership is fixed at creation.
type Patch struct {
	PatientID        *int64     `json:"patientId,omitempty"`
	PrescriptionDate *time.Time `json:"prescriptionDate,omitempty"`
	Status           *Status    `json:"status,omitempty"`
	Notes            *string    `json:"notes,omitempty"`
	FileData         *string    `json:"fileData,omitempty"`
	FileName         *string    `json:"fileName,omitempty"`
}

package bed

import "errors"

// Ward is the hospital ward a bed belongs to.
type Ward string

const (
	WardGeneral   Ward = "general"
	WardICU       Ward = "icu"
	WardPediatric Ward = "pediatric"
	WardMaternity Ward = "maternity"
)

func (w Ward) Valid() bool {
	switch w {
	case WardGeneral, WardICU, WardPediatric, WardMaternity:
		return true
	}
	return false
}

// Status is a bed's occupancy state.
type Status string

const (
	StatusAvailable   Status = "available"
	StatusOccupied    Status = "occupied"
	StatusReserved    Status = "reserved"
	StatusMaintenance Status = "maintenance"
)

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusReserved, StatusMaintenance:
		return true
	}
	return false
}

var ErrNotFound = errors.New("bed not found")

// Bed maps to the beds table. PatientID is meaningful only while the bed is
// occupied, but the store does not enforce that pairing. There is no delete
// operation for beds.
type Bed struct {
	ID        int64  `db:"id" json:"id"`
	BedNumber string `db:"bed_number" json:"bedNumber"`
	Ward      Ward   `db:"ward" json:"ward"`
	Status    Status `db:"status" json:"status"`
	PatientID *int64 `db:"patient_id" json:"patientId,omitempty"`
}

// Patch carries a partial update. Nil fields are preserved; non-nil fields
// overwrite. An absent patientId leaves the current assignment in place.
type Patch struct {
	BedNumber *string `json:"bedNumber,omitempty"`
	Ward      *Ward   `json:"ward,omitempty"`
	Status    *Status `json:"status,omitempty"`
	PatientID *int64  `json:"patientId,omitempty"`
}

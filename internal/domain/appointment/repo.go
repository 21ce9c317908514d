package appointment

import (
	"context"
	"time"
)

// Repository defines the persistence interface for appointments. List
// methods return records in ascending id order.
type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id int64) (*Appointment, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*Appointment, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]*Appointment, error)
	// ListByDay returns appointments whose date falls within the half-open
	// UTC day interval [day, day+24h).
	ListByDay(ctx context.Context, day time.Time) ([]*Appointment, error)
	Update(ctx context.Context, id int64, patch Patch) (*Appointment, error)
	Delete(ctx context.Context, id int64) error
}

package prescription

import "context"

// Repository defines the persistence interface for prescriptions. There is
// no delete operation; list methods return records in ascending id order.
type Repository interface {
	Create(ctx context.Context, p *Prescription) error
	GetByID(ctx context.Context, id int64) (*Prescription, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*Prescription, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]*Prescription, error)
	Update(ctx context.Context, id int64, patch Patch) (*Prescription, error)
}

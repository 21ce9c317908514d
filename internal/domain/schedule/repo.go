package schedule

import "context"

// Repository is the storage contract for doctor timetable entries.
type Repository interface {
	Create(ctx context.Context, s *Schedule) error
	GetByID(ctx context.Context, id int64) (*Schedule, error)
	ListByDoctor(ctx context.Context, doctorID int64) ([]*Schedule, error)
	Update(ctx context.Context, id int64, patch Patch) (*Schedule, error)
	Delete(ctx context.Context, id int64) error
}

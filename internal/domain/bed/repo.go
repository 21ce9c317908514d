package bed

import "context"

// Repository defines the persistence interface for beds. Beds are never
// deleted; list methods return records in ascending id order. Bed numbers
// are unique by seed construction only, never checked here.
type Repository interface {
	Create(ctx context.Context, b *Bed) error
	GetByID(ctx context.Context, id int64) (*Bed, error)
	List(ctx context.Context) ([]*Bed, error)
	ListByWard(ctx context.Context, ward Ward) ([]*Bed, error)
	ListByStatus(ctx context.Context, status Status) ([]*Bed, error)
	Update(ctx context.Context, id int64, patch Patch) (*Bed, error)
}

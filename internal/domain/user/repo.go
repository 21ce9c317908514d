package user

import "context"

// Repository defines the persistence interface for users. The store itself is
// permissive: uniqueness of usernames and emails is checked by the service at
// registration time, not here.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListByRole(ctx context.Context, role Role) ([]*User, error)
	Update(ctx context.Context, id int64, patch Patch) (*User, error)
}

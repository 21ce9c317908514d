package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/hms/hms/internal/platform/auth"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RegisterInput is the accepted shape for account creation. Extraneous
// payload fields are ignored by construction.
type RegisterInput struct {
	Username       string  `json:"username"`
	Password       string  `json:"password"`
	Email          string  `json:"email"`
	FullName       string  `json:"fullName"`
	Role           Role    `json:"role"`
	Specialization *string `json:"specialization,omitempty"`
	ContactNumber  *string `json:"contactNumber,omitempty"`
	Address        *string `json:"address,omitempty"`
}

// Register creates an account. Username and email must be unused; this is
// the one place uniqueness is checked, so that login stays deterministic.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	if in.Username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if in.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if in.Email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if in.FullName == "" {
		return nil, fmt.Errorf("fullName is required")
	}
	if !in.Role.Valid() {
		return nil, fmt.Errorf("role must be patient, doctor, or nurse")
	}

	if _, err := s.repo.GetByUsername(ctx, in.Username); err == nil {
		return nil, ErrConflict
	}
	if _, err := s.repo.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrConflict
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Username:       in.Username,
		Password:       hash,
		Email:          in.Email,
		FullName:       in.FullName,
		Role:           in.Role,
		Specialization: in.Specialization,
		ContactNumber:  in.ContactNumber,
		Address:        in.Address,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate verifies credentials and returns the matching user.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*User, error) {
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListDoctors(ctx context.Context) ([]*User, error) {
	return s.repo.ListByRole(ctx, RoleDoctor)
}

func (s *Service) ListPatients(ctx context.Context) ([]*User, error) {
	return s.repo.ListByRole(ctx, RolePatient)
}

// ListDoctorIDs returns all doctor ids in ascending id order. List fan-out
// endpoints in other packages aggregate per-doctor records in this order.
func (s *Service) ListDoctorIDs(ctx context.Context) ([]int64, error) {
	doctors, err := s.repo.ListByRole(ctx, RoleDoctor)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(doctors))
	for _, d := range doctors {
		ids = append(ids, d.ID)
	}
	return ids, nil
}

func (s *Service) UpdateProfile(ctx context.Context, id int64, patch Patch) (*User, error) {
	return s.repo.Update(ctx, id, patch)
}

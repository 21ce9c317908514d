package bed

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput is the accepted payload shape for bed creation.
type CreateInput struct {
	BedNumber string  `json:"bedNumber"`
	Ward      Ward    `json:"ward"`
	Status    Status  `json:"status"`
	PatientID *int64  `json:"patientId,omitempty"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Bed, error) {
	if in.BedNumber == "" {
		return nil, fmt.Errorf("bedNumber is required")
	}
	if !in.Ward.Valid() {
		return nil, fmt.Errorf("ward must be general, icu, pediatric, or maternity")
	}
	if in.Status == "" {
		in.Status = StatusAvailable
	}
	if !in.Status.Valid() {
		return nil, fmt.Errorf("status must be available, occupied, reserved, or maintenance")
	}

	b := &Bed{
		BedNumber: in.BedNumber,
		Ward:      in.Ward,
		Status:    in.Status,
		PatientID: in.PatientID,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Bed, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Bed, error) {
	return s.repo.List(ctx)
}

// ListByWard and ListByStatus are plain filters: an unknown ward or status
// value matches nothing and yields an empty list, not an error.
func (s *Service) ListByWard(ctx context.Context, ward Ward) ([]*Bed, error) {
	return s.repo.ListByWard(ctx, ward)
}

func (s *Service) ListByStatus(ctx context.Context, status Status) ([]*Bed, error) {
	return s.repo.ListByStatus(ctx, status)
}

func (s *Service) Update(ctx context.Context, id int64, patch Patch) (*Bed, error) {
	if patch.Ward != nil && !patch.Ward.Valid() {
		return nil, fmt.Errorf("ward must be general, icu, pediatric, or maternity")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("status must be available, occupied, reserved, or maintenance")
	}
	return s.repo.Update(ctx, id, patch)
}

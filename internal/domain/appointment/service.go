package appointment

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateInput is the accepted payload shape for appointment creation.
// Extraneous fields are ignored by construction. Referenced patient/doctor
// ids are not checked against the user store.
type CreateInput struct {
	PatientID       int64     `json:"patientId"`
	DoctorID        int64     `json:"doctorId"`
	AppointmentDate time.Time `json:"appointmentDate"`
	Duration        int       `json:"duration"`
	Status          Status    `json:"status"`
	Type            string    `json:"type"`
	Notes           *string   `json:"notes,omitempty"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Appointment, error) {
	if in.PatientID <= 0 {
		return nil, fmt.Errorf("patientId is required")
	}
	if in.DoctorID <= 0 {
		return nil, fmt.Errorf("doctorId is required")
	}
	if in.AppointmentDate.IsZero() {
		return nil, fmt.Errorf("appointmentDate is required")
	}
	if in.Duration <= 0 {
		return nil, fmt.Errorf("duration must be a positive number of minutes")
	}
	if in.Status == "" {
		in.Status = StatusScheduled
	}
	if !in.Status.Valid() {
		return nil, fmt.Errorf("status must be scheduled, completed, or cancelled")
	}
	if in.Type == "" {
		return nil, fmt.Errorf("type is required")
	}

	a := &Appointment{
		PatientID:       in.PatientID,
		DoctorID:        in.DoctorID,
		AppointmentDate: in.AppointmentDate,
		Duration:        in.Duration,
		Status:          in.Status,
		Type:            in.Type,
		Notes:           in.Notes,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Appointment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*Appointment, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID int64) ([]*Appointment, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

func (s *Service) ListByDay(ctx context.Context, day time.Time) ([]*Appointment, error) {
	return s.repo.ListByDay(ctx, day)
}

func (s *Service) Update(ctx context.Context, id int64, patch Patch) (*Appointment, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("status must be scheduled, completed, or cancelled")
	}
	if patch.Duration != nil && *patch.Duration <= 0 {
		return nil, fmt.Errorf("duration must be a positive number of minutes")
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

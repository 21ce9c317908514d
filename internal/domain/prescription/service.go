package prescription

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

// CreateInput is the accepted payload shape for prescription creation. An
// omitted prescriptionDate means "written now" and defaults to the current
// UTC time, the same way an omitted status defaults to active.
type CreateInput struct {
	PatientID        int64     `json:"patientId"`
	DoctorID         int64     `json:"doctorId"`
	PrescriptionDate time.Time `json:"prescriptionDate"`
	Status           Status    `json:"status"`
	Notes            *string   `json:"notes,omitempty"`
	FileData         *string   `json:"fileData,omitempty"`
	FileName         *string   `json:"fileName,omitempty"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Prescription, error) {
	if in.PatientID <= 0 {
		return nil, fmt.Errorf("patientId is required")
	}
	if in.DoctorID <= 0 {
		return nil, fmt.Errorf("doctorId is required")
	}
	if in.PrescriptionDate.IsZero() {
		in.PrescriptionDate = time.Now().UTC()
	}
	if in.Status == "" {
		in.Status = StatusActive
	}
	if !in.Status.Valid() {
		return nil, fmt.Errorf("status must be active or completed")
	}

	p := &Prescription{
		PatientID:        in.PatientID,
		DoctorID:         in.DoctorID,
		PrescriptionDate: in.PrescriptionDate,
		Status:           in.Status,
		Notes:            in.Notes,
		FileData:         in.FileData,
		FileName:         in.FileName,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Prescription, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*Prescription, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID int64) ([]*Prescription, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

func (s *Service) Update(ctx context.Context, id int64, patch Patch) (*Prescription, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("status must be active or completed")
	}
	return s.repo.Update(ctx, id, patch)
}

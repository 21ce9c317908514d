package schedule

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

// CreateInput is the accepted payload shape for schedule creation.
type CreateInput struct {
	DoctorID     int64  `json:"doctorId"`
	Day          Day    `json:"day"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	ActivityType string `json:"activityType"`
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Schedule, error) {
	if in.DoctorID <= 0 {
		return nil, fmt.Errorf("doctorId is required")
	}
	if !in.Day.Valid() {
		return nil, fmt.Errorf("day must be a lowercase weekday name")
	}
	if err := validClock(in.StartTime); err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}
	if err := validClock(in.EndTime); err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}
	if in.ActivityType == "" {
		return nil, fmt.Errorf("activityType is required")
	}

	entry := &Schedule{
		DoctorID:     in.DoctorID,
		Day:          in.Day,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		ActivityType: in.ActivityType,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Schedule, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByDoctor(ctx context.Context, doctorID int64) ([]*Schedule, error) {
	return s.repo.ListByDoctor(ctx, doctorID)
}

func (s *Service) Update(ctx context.Context, id int64, patch Patch) (*Schedule, error) {
	if patch.Day != nil && !patch.Day.Valid() {
		return nil, fmt.Errorf("day must be a lowercase weekday name")
	}
	if patch.StartTime != nil {
		if err := validClock(*patch.StartTime); err != nil {
			return nil, fmt.Errorf("startTime: %w", err)
		}
	}
	if patch.EndTime != nil {
		if err := validClock(*patch.EndTime); err != nil {
			return nil, fmt.Errorf("endTime: %w", err)
		}
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

// validClock checks the "HH:MM" wall-clock format. Start and end are not
// compared against each other; inverted ranges are stored as given.
func validClock(v string) error {
	if _, err := time.Parse("15:04", v); err != nil {
		return fmt.Errorf("must be HH:MM")
	}
	return nil
}

package appointment

import (
	"context"
	"errors"
	"testing"
	"time"
)

func mustCreate(t *testing.T, svc *Service, patientID, doctorID int64, date time.Time) *Appointment {
	t.Helper()
	a, err := svc.Create(context.Background(), CreateInput{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: date,
		Duration:        30,
		Type:            "consultation",
	})
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	return a
}

func TestCreate_DefaultsAndIDs(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	date := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	a := mustCreate(t, svc, 1, 2, date)
	if a.ID != 1 {
		t.Errorf("expected id 1, got %d", a.ID)
	}
	if a.Status != StatusScheduled {
		t.Errorf("expected default status scheduled, got %s", a.Status)
	}

	b := mustCreate(t, svc, 1, 2, date)
	if b.ID != 2 {
		t.Errorf("expected id 2, got %d", b.ID)
	}

	got, err := svc.Get(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.PatientID != 1 || got.DoctorID != 2 || !got.AppointmentDate.Equal(date) {
		t.Errorf("stored record differs from input: %+v", got)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	date := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	cases := []CreateInput{
		{DoctorID: 2, AppointmentDate: date, Duration: 30, Type: "checkup"},
		{PatientID: 1, AppointmentDate: date, Duration: 30, Type: "checkup"},
		{PatientID: 1, DoctorID: 2, Duration: 30, Type: "checkup"},
		{PatientID: 1, DoctorID: 2, AppointmentDate: date, Type: "checkup"},
		{PatientID: 1, DoctorID: 2, AppointmentDate: date, Duration: 30},
		{PatientID: 1, DoctorID: 2, AppointmentDate: date, Duration: 30, Type: "checkup", Status: "unknown"},
	}
	for i, in := range cases {
		if _, err := svc.Create(context.Background(), in); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestCreate_AllowsDoubleBooking(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	date := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	mustCreate(t, svc, 1, 2, date)
	// Same doctor, same time slot: permitted, no overlap detection.
	mustCreate(t, svc, 3, 2, date)

	appts, _ := svc.ListByDoctor(context.Background(), 2)
	if len(appts) != 2 {
		t.Errorf("expected 2 overlapping appointments, got %d", len(appts))
	}
}

func TestUpdate_PartialMerge(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	date := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	a := mustCreate(t, svc, 1, 2, date)

	newStatus := StatusCompleted
	notes := "patient recovered"
	updated, err := svc.Update(context.Background(), a.ID, Patch{
		Status: &newStatus,
		Notes:  &notes,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != StatusCompleted {
		t.Errorf("expected status overwritten, got %s", updated.Status)
	}
	if updated.Notes == nil || *updated.Notes != "patient recovered" {
		t.Errorf("expected notes set, got %v", updated.Notes)
	}
	if updated.PatientID != 1 || updated.DoctorID != 2 || updated.Duration != 30 {
		t.Error("expected untouched fields preserved")
	}
	if !updated.AppointmentDate.Equal(date) {
		t.Error("expected appointmentDate preserved")
	}
}

func TestServiceUpdate_NotFound(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	d := 45
	_, err := svc.Update(context.Background(), 99, Patch{Duration: &d})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdate_InvalidStatus(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	a := mustCreate(t, svc, 1, 2, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))

	bad := Status("postponed")
	if _, err := svc.Update(context.Background(), a.ID, Patch{Status: &bad}); err == nil {
		t.Error("expected error for invalid status")
	}
}

func TestDelete(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	a := mustCreate(t, svc, 1, 2, time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC))

	if err := svc.Delete(context.Background(), a.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for repeated delete, got %v", err)
	}
}

func TestDelete_DoesNotReuseIDs(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	date := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	a := mustCreate(t, svc, 1, 2, date)
	svc.Delete(context.Background(), a.ID)

	b := mustCreate(t, svc, 1, 2, date)
	if b.ID != a.ID+1 {
		t.Errorf("expected id %d after delete, got %d", a.ID+1, b.ID)
	}
}

func TestListByDay_HalfOpenInterval(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	mustCreate(t, svc, 1, 2, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))  // inclusive start
	mustCreate(t, svc, 1, 2, time.Date(2024, 3, 15, 23, 59, 59, 0, time.UTC))
	mustCreate(t, svc, 1, 2, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC))  // exclusive end
	mustCreate(t, svc, 1, 2, time.Date(2024, 3, 14, 23, 59, 59, 0, time.UTC))

	appts, err := svc.ListByDay(context.Background(), time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(appts) != 2 {
		t.Fatalf("expected 2 appointments on 2024-03-15, got %d", len(appts))
	}
	if appts[0].ID != 1 || appts[1].ID != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", appts[0].ID, appts[1].ID)
	}
}

func TestListByPatient_ScopesToPatient(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	date := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

	mustCreate(t, svc, 1, 2, date)
	mustCreate(t, svc, 3, 2, date)
	mustCreate(t, svc, 1, 4, date)

	appts, _ := svc.ListByPatient(context.Background(), 1)
	if len(appts) != 2 {
		t.Fatalf("expected 2 appointments for patient 1, got %d", len(appts))
	}
	for _, a := range appts {
		if a.PatientID != 1 {
			t.Errorf("patient list leaked record for patient %d", a.PatientID)
		}
	}
}

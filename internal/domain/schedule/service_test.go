package schedule

import (
	"context"
	"errors"
	"testing"
)

func mustCreate(t *testing.T, svc *Service, doctorID int64, day Day) *Schedule {
	t.Helper()
	s, err := svc.Create(context.Background(), CreateInput{
		DoctorID:     doctorID,
		Day:          day,
		StartTime:    "09:00",
		EndTime:      "12:00",
		ActivityType: "consultation",
	})
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	return s
}

func TestCreate_AssignsMonotonicIDs(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	a := mustCreate(t, svc, 1, Monday)
	b := mustCreate(t, svc, 1, Tuesday)
	if a.ID != 1 || b.ID != 2 {
		t.Errorf("expected ids 1 and 2, got %d and %d", a.ID, b.ID)
	}

	if err := svc.Delete(context.Background(), b.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	c := mustCreate(t, svc, 1, Wednesday)
	if c.ID != 3 {
		t.Errorf("expected id 3 after delete (ids never reused), got %d", c.ID)
	}
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	cases := []CreateInput{
		{Day: Monday, StartTime: "09:00", EndTime: "12:00", ActivityType: "rounds"},
		{DoctorID: 1, Day: "someday", StartTime: "09:00", EndTime: "12:00", ActivityType: "rounds"},
		{DoctorID: 1, Day: Monday, StartTime: "9am", EndTime: "12:00", ActivityType: "rounds"},
		{DoctorID: 1, Day: Monday, StartTime: "09:00", EndTime: "25:00", ActivityType: "rounds"},
		{DoctorID: 1, Day: Monday, StartTime: "09:00", EndTime: "12:00"},
	}
	for i, in := range cases {
		if _, err := svc.Create(context.Background(), in); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}

func TestCreate_InvertedRangeAccepted(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	// End before start is stored as given; ranges are not compared.
	s, err := svc.Create(context.Background(), CreateInput{
		DoctorID:     1,
		Day:          Friday,
		StartTime:    "14:00",
		EndTime:      "09:00",
		ActivityType: "surgery",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.StartTime != "14:00" || s.EndTime != "09:00" {
		t.Errorf("expected times preserved verbatim, got %s-%s", s.StartTime, s.EndTime)
	}
}

func TestListByDoctor_IDOrder(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	a := mustCreate(t, svc, 1, Monday)
	mustCreate(t, svc, 2, Monday)
	b := mustCreate(t, svc, 1, Thursday)

	entries, err := svc.ListByDoctor(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 || entries[0].ID != a.ID || entries[1].ID != b.ID {
		t.Errorf("expected doctor 1's entries in id order, got %+v", entries)
	}
}

func TestUpdate_PartialMerge(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	s := mustCreate(t, svc, 1, Monday)

	end := "17:30"
	updated, err := svc.Update(context.Background(), s.ID, Patch{EndTime: &end})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.EndTime != "17:30" {
		t.Errorf("expected end time 17:30, got %s", updated.EndTime)
	}
	if updated.Day != Monday || updated.StartTime != "09:00" || updated.ActivityType != "consultation" {
		t.Error("expected untouched fields preserved")
	}
}

func TestUpdate_RejectsBadValues(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	s := mustCreate(t, svc, 1, Monday)

	badDay := Day("funday")
	if _, err := svc.Update(context.Background(), s.ID, Patch{Day: &badDay}); err == nil {
		t.Error("expected error for invalid day")
	}
	badTime := "noonish"
	if _, err := svc.Update(context.Background(), s.ID, Patch{StartTime: &badTime}); err == nil {
		t.Error("expected error for invalid start time")
	}
}

func TestDelete(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	s := mustCreate(t, svc, 1, Monday)

	if err := svc.Delete(context.Background(), s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

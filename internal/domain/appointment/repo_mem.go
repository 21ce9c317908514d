package appointment

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*Appointment
}

// NewMemoryRepo returns the in-memory appointment store. Ids are monotonic
// per collection and never reused, including after deletes.
func NewMemoryRepo() Repository {
	return &memRepo{items: make(map[int64]*Appointment)}
}

func (r *memRepo) Create(_ context.Context, a *Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	a.ID = r.seq
	cp := *a
	r.items[a.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id int64) (*Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *memRepo) ListByPatient(_ context.Context, patientID int64) ([]*Appointment, error) {
	return r.filter(func(a *Appointment) bool { return a.PatientID == patientID }), nil
}

func (r *memRepo) ListByDoctor(_ context.Context, doctorID int64) ([]*Appointment, error) {
	return r.filter(func(a *Appointment) bool { return a.DoctorID == doctorID }), nil
}

func (r *memRepo) ListByDay(_ context.Context, day time.Time) ([]*Appointment, error) {
	start := day.UTC().Truncate(24 * time.Hour)
	end := start.Add(24 * time.Hour)
	return r.filter(func(a *Appointment) bool {
		d := a.AppointmentDate.UTC()
		return !d.Before(start) && d.Before(end)
	}), nil
}

func (r *memRepo) Update(_ context.Context, id int64, patch Patch) (*Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.PatientID != nil {
		a.PatientID = *patch.PatientID
	}
	if patch.DoctorID != nil {
		a.DoctorID = *patch.DoctorID
	}
	if patch.AppointmentDate != nil {
		a.AppointmentDate = *patch.AppointmentDate
	}
	if patch.Duration != nil {
		a.Duration = *patch.Duration
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.Type != nil {
		a.Type = *patch.Type
	}
	if patch.Notes != nil {
		a.Notes = patch.Notes
	}
	cp := *a
	return &cp, nil
}

func (r *memRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memRepo) filter(keep func(*Appointment) bool) []*Appointment {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []*Appointment
	for _, id := range ids {
		if keep(r.items[id]) {
			cp := *r.items[id]
			out = append(out, &cp)
		}
	}
	return out
}

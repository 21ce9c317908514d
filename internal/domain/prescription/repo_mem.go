package prescription

import (
	"context"
	"sort"
	"sync"
)

type memRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*Prescription
}

func NewMemoryRepo() Repository {
	return &memRepo{items: make(map[int64]*Prescription)}
}

func (r *memRepo) Create(_ context.Context, p *Prescription) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	p.ID = r.seq
	cp := *p
	r.items[p.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id int64) (*Prescription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memRepo) ListByPatient(_ context.Context, patientID int64) ([]*Prescription, error) {
	return r.filter(func(p *Prescription) bool { return p.PatientID == patientID }), nil
}

func (r *memRepo) ListByDoctor(_ context.Context, doctorID int64) ([]*Prescription, error) {
	return r.filter(func(p *Prescription) bool { return p.DoctorID == doctorID }), nil
}

func (r *memRepo) Update(_ context.Context, id int64, patch Patch) (*Prescription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.PatientID != nil {
		p.PatientID = *patch.PatientID
	}
	if patch.PrescriptionDate != nil {
		p.PrescriptionDate = *patch.PrescriptionDate
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Notes != nil {
		p.Notes = patch.Notes
	}
	if patch.FileData != nil {
		p.FileData = patch.FileData
	}
	if patch.FileName != nil {
		p.FileName = patch.FileName
	}
	cp := *p
	return &cp, nil
}

func (r *memRepo) filter(keep func(*Prescription) bool) []*Prescription {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []*Prescription
	for _, id := range ids {
		if keep(r.items[id]) {
			cp := *r.items[id]
			out = append(out, &cp)
		}
	}
	return out
}

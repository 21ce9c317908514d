package bed

import (
	"context"
	"sort"
	"sync"
)

type memRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*Bed
}

func NewMemoryRepo() Repository {
	return &memRepo{items: make(map[int64]*Bed)}
}

func (r *memRepo) Create(_ context.Context, b *Bed) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	b.ID = r.seq
	cp := *b
	r.items[b.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id int64) (*Bed, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *memRepo) List(_ context.Context) ([]*Bed, error) {
	return r.filter(func(*Bed) bool { return true }), nil
}

func (r *memRepo) ListByWard(_ context.Context, ward Ward) ([]*Bed, error) {
	return r.filter(func(b *Bed) bool { return b.Ward == ward }), nil
}

func (r *memRepo) ListByStatus(_ context.Context, status Status) ([]*Bed, error) {
	return r.filter(func(b *Bed) bool { return b.Status == status }), nil
}

func (r *memRepo) Update(_ context.Context, id int64, patch Patch) (*Bed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.BedNumber != nil {
		b.BedNumber = *patch.BedNumber
	}
	if patch.Ward != nil {
		b.Ward = *patch.Ward
	}
	if patch.Status != nil {
		b.Status = *patch.Status
	}
	if patch.PatientID != nil {
		b.PatientID = patch.PatientID
	}
	cp := *b
	return &cp, nil
}

func (r *memRepo) filter(keep func(*Bed) bool) []*Bed {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []*Bed
	for _, id := range ids {
		if keep(r.items[id]) {
			cp := *r.items[id]
			out = append(out, &cp)
		}
	}
	return out
}

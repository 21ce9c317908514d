package schedule

import (
	"context"
	"sort"
	"sync"
)

type memRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*Schedule
}

func NewMemoryRepo() Repository {
	return &memRepo{items: make(map[int64]*Schedule)}
}

func (r *memRepo) Create(_ context.Context, s *Schedule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	s.ID = r.seq
	cp := *s
	r.items[s.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id int64) (*Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *memRepo) ListByDoctor(_ context.Context, doctorID int64) ([]*Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []*Schedule
	for _, id := range ids {
		if r.items[id].DoctorID == doctorID {
			cp := *r.items[id]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memRepo) Update(_ context.Context, id int64, patch Patch) (*Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.DoctorID != nil {
		s.DoctorID = *patch.DoctorID
	}
	if patch.Day != nil {
		s.Day = *patch.Day
	}
	if patch.StartTime != nil {
		s.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		s.EndTime = *patch.EndTime
	}
	if patch.ActivityType != nil {
		s.ActivityType = *patch.ActivityType
	}
	cp := *s
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

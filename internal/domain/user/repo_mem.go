package user

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memRepo is the in-memory store. A single RWMutex serializes mutations so
// concurrent requests keep the effectively-serial semantics of a
// single-threaded runtime. Ids are monotonic and never reused.
type memRepo struct {
	mu    sync.RWMutex
	seq   int64
	users map[int64]*User
}

func NewMemoryRepo() Repository {
	return &memRepo{users: make(map[int64]*User)}
}

func (r *memRepo) Create(_ context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	u.ID = r.seq
	u.CreatedAt = time.Now().UTC()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memRepo) GetByID(_ context.Context, id int64) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memRepo) GetByUsername(_ context.Context, username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.sortedIDs() {
		if r.users[id].Username == username {
			cp := *r.users[id]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepo) GetByEmail(_ context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.sortedIDs() {
		if r.users[id].Email == email {
			cp := *r.users[id]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memRepo) ListByRole(_ context.Context, role Role) ([]*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*User
	for _, id := range r.sortedIDs() {
		if r.users[id].Role == role {
			cp := *r.users[id]
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memRepo) Update(_ context.Context, id int64, patch Patch) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.FullName != nil {
		u.FullName = *patch.FullName
	}
	if patch.Specialization != nil {
		u.Specialization = patch.Specialization
	}
	if patch.ContactNumber != nil {
		u.ContactNumber = patch.ContactNumber
	}
	if patch.Address != nil {
		u.Address = patch.Address
	}
	cp := *u
	return &cp, nil
}

// sortedIDs returns ids in ascending order. Ids are monotonic, so this is
// also insertion order; list responses depend on it being stable.
func (r *memRepo) sortedIDs() []int64 {
	ids := make([]int64, 0, len(r.users))
	for id := range r.users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

package appointment

import (
	"context"
	"sync"
)

// memRepo keeps the collection in process memory. Used for tests and for
// STORAGE_DRIVER=memory, where history is allowed to vanish on restart.
type memRepo struct {
	mu    sync.Mutex
	appts []Appointment
}

// NewMemRepo creates an empty in-memory Repository.
func NewMemRepo() Repository {
	return &memRepo{}
}

func (r *memRepo) List(_ context.Context) ([]Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Appointment, len(r.appts))
	copy(out, r.appts)
	return out, nil
}

func (r *memRepo) Save(_ context.Context, appt Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.appts = append(r.appts, appt)
	return nil
}

func (r *memRepo) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.appts[:0]
	for _, a := range r.appts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	r.appts = kept
	return nil
}

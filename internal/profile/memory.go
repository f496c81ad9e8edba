package profile

import (
	"context"
	"sync"
)

// MemoryRepo is an in-process Repo used by tests and by the TUI when no
// database is configured.
type MemoryRepo struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryRepo returns an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Load(_ context.Context) (*Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Decode(r.data)
}

func (r *MemoryRepo) Update(_ context.Context, fn func(*Profile) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := Decode(r.data)
	if err != nil {
		return err
	}
	if err := fn(p); err != nil {
		return err
	}
	b, err := Encode(p)
	if err != nil {
		return err
	}
	r.data = b
	return nil
}

func (r *MemoryRepo) Reset(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = nil
	return nil
}

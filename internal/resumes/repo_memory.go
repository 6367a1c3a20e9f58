package resumes

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used when no database
// is configured and by tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Resume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Resume),
	}
}

// Create stores a record, enforcing public ID uniqueness like the database
// constraint does.
func (r *MemoryRepo) Create(ctx context.Context, rec Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.data[rec.PublicID]; exists {
		return ErrDuplicateID
	}
	rec.Skills = append([]string(nil), rec.Skills...)
	r.data[rec.PublicID] = rec
	return nil
}

// GetByPublicID returns the record for a public ID, or ErrNotFound.
func (r *MemoryRepo) GetByPublicID(ctx context.Context, publicID string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.data[publicID]
	if !ok {
		return Resume{}, ErrNotFound
	}
	rec.Skills = append([]string(nil), rec.Skills...)
	return rec, nil
}

var _ Repo = (*MemoryRepo)(nil)

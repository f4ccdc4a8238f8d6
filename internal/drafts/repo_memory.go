package drafts

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used when no database
// is configured.
type MemoryRepo struct {
	mu    sync.RWMutex
	byID  map[string]Draft
	order []string // newest last
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Draft)}
}

// Create stores a draft.
func (r *MemoryRepo) Create(ctx context.Context, d Draft) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[d.ID]; !exists {
		r.order = append(r.order, d.ID)
	}
	r.byID[d.ID] = d
	return nil
}

// GetByID returns a draft by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Draft, error) {
	if err := ctx.Err(); err != nil {
		return Draft{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	if !ok {
		return Draft{}, ErrNotFound
	}
	return d, nil
}

// ListRecent returns up to limit drafts, newest first.
func (r *MemoryRepo) ListRecent(ctx context.Context, limit int) ([]Draft, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Draft, 0, limit)
	for i := len(r.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.byID[r.order[i]])
	}
	return out, nil
}

package record

import (
	"context"
	"sync"
)

// MemoryRepository keeps records in process memory. Used by the "memory"
// store driver and by tests.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[string]string
}

var _ RecordRepository = (*MemoryRepository)(nil)

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[string]string)}
}

func (r *MemoryRepository) Get(ctx context.Context, key string) (string, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.records[key]
	return v, ok, nil
}

func (r *MemoryRepository) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[key] = value
	return nil
}

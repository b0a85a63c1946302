package counters

import (
	"context"
	"sync"
)

type MemoryRepository struct {
	mu   sync.Mutex
	seqs map[string]int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{seqs: make(map[string]int64)}
}

func (r *MemoryRepository) Next(ctx context.Context, name string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seqs[name]++
	return r.seqs[name], nil
}

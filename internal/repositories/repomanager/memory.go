package repomanager

import (
	"context"
	"sync"

	"github.com/mzaytsev/taskmirror/internal/repositories/counters"
	"github.com/mzaytsev/taskmirror/internal/repositories/tasks"
	"github.com/mzaytsev/taskmirror/internal/repositories/users"
)

type MemoryRepositoryManager struct {
	mu       sync.Mutex
	users    *users.MemoryRepository
	tasks    *tasks.MemoryRepository
	counters *counters.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:    users.NewMemoryRepository(),
		tasks:    tasks.NewMemoryRepository(),
		counters: counters.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }

func (m *MemoryRepositoryManager) Users() users.Repository       { return m.users }
func (m *MemoryRepositoryManager) Tasks() tasks.Repository       { return m.tasks }
func (m *MemoryRepositoryManager) Counters() counters.Repository { return m.counters }

// InTx serializes multi-entity changes behind one mutex. The memory backend
// has no rollback; fn must not leave partial state behind on error.
func (m *MemoryRepositoryManager) InTx(ctx context.Context, fn func(u users.Repository, t tasks.Repository) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(m.users, m.tasks)
}

func (m *MemoryRepositoryManager) Close() error { return nil }

package tasks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mzaytsev/taskmirror/internal/domain"
	"github.com/mzaytsev/taskmirror/internal/models"
)

// MemoryRepository keeps tasks in a mutex-protected map, mirroring the
// Postgres implementation's semantics for tests and the equivalence harness.
type MemoryRepository struct {
	mu    sync.RWMutex
	tasks map[string]*models.Task
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{tasks: make(map[string]*models.Task)}
}

func cloneTask(t *models.Task) *models.Task {
	c := *t
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	return &c
}

func (r *MemoryRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[task.ID] = cloneTask(task)
	return task, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return cloneTask(task), nil
}

func (r *MemoryRepository) GetBySeq(ctx context.Context, seq int64) (*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, task := range r.tasks {
		if task.Seq == seq {
			return cloneTask(task), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID string) ([]*models.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.Task
	for _, task := range r.tasks {
		if task.UserID == userID {
			result = append(result, cloneTask(task))
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Seq < result[j].Seq })
	return result, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Priority != nil {
		task.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		d := *patch.DueDate
		task.DueDate = &d
	}
	task.UpdatedAt = time.Now().UTC()
	return cloneTask(task), nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *MemoryRepository) DeleteByUser(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, task := range r.tasks {
		if task.UserID == userID {
			delete(r.tasks, id)
		}
	}
	return nil
}

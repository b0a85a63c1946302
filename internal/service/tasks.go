package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mzaytsev/taskmirror/internal/domain"
	"github.com/mzaytsev/taskmirror/internal/models"
)

// CreateTaskInput carries the fields a caller may set at creation time.
// Status and Priority default to TO_DO and MEDIUM when empty.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	DueDate     *time.Time
}

func (s *Service) CreateTask(ctx context.Context, caller *models.User, input CreateTaskInput) (*models.Task, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	status := input.Status
	if status == "" {
		status = domain.StatusToDo
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, status)
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidInput, priority)
	}

	seq, err := s.rm.Counters().Next(ctx, taskCounter)
	if err != nil {
		s.logger.Error(ctx, "counter allocation failed", "counter", taskCounter, "error", err)
		return nil, domain.ErrInternal
	}

	now := time.Now().UTC()
	task := &models.Task{
		ID:          uuid.NewString(),
		Seq:         seq,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Status:      status,
		Priority:    priority,
		DueDate:     input.DueDate,
		UserID:      caller.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.rm.Tasks().Create(ctx, task)
	if err != nil {
		s.logger.Error(ctx, "task create failed", "error", err)
		return nil, domain.ErrInternal
	}
	return created, nil
}

// ListTasks is owner-scoped: the caller only ever sees their own tasks.
func (s *Service) ListTasks(ctx context.Context, caller *models.User) ([]*models.Task, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	list, err := s.rm.Tasks().ListByUser(ctx, caller.ID)
	if err != nil {
		s.logger.Error(ctx, "task list failed", "error", err)
		return nil, domain.ErrInternal
	}
	return list, nil
}

// getOwnedTask resolves a task id and enforces ownership. A task that exists
// but belongs to someone else yields ErrNotFound, identical to a task that
// does not exist, so non-owners can never probe for existence.
func (s *Service) getOwnedTask(ctx context.Context, caller *models.User, id string) (*models.Task, error) {
	task, err := s.resolveTaskID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		s.logger.Error(ctx, "task lookup failed", "error", err)
		return nil, domain.ErrInternal
	}
	if task.UserID != caller.ID {
		return nil, domain.ErrNotFound
	}
	return task, nil
}

func (s *Service) GetTask(ctx context.Context, caller *models.User, id string) (*models.Task, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.getOwnedTask(ctx, caller, id)
}

func (s *Service) UpdateTask(ctx context.Context, caller *models.User, id string, patch models.TaskPatch) (*models.Task, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	task, err := s.getOwnedTask(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if patch.Title != nil {
		trimmed := strings.TrimSpace(*patch.Title)
		if trimmed == "" {
			return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
		}
		patch.Title = &trimmed
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, *patch.Status)
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidInput, *patch.Priority)
	}

	updated, err := s.rm.Tasks().Update(ctx, task.ID, patch)
	if err != nil {
		s.logger.Error(ctx, "task update failed", "error", err)
		return nil, domain.ErrInternal
	}
	return updated, nil
}

func (s *Service) DeleteTask(ctx context.Context, caller *models.User, id string) error {
	if caller == nil {
		return domain.ErrUnauthenticated
	}
	task, err := s.getOwnedTask(ctx, caller, id)
	if err != nil {
		return err
	}
	if err := s.rm.Tasks().Delete(ctx, task.ID); err != nil {
		s.logger.Error(ctx, "task delete failed", "error", err)
		return domain.ErrInternal
	}
	return nil
}

// TasksOwnedBy backs the GraphQL User.tasks relation. The owner-scoped policy
// holds here too: a caller asking about anyone else gets an empty list, not
// an error, so relation traversal cannot leak other users' tasks.
func (s *Service) TasksOwnedBy(ctx context.Context, caller *models.User, ownerID string) ([]*models.Task, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	if ownerID != caller.ID {
		return []*models.Task{}, nil
	}
	return s.ListTasks(ctx, caller)
}

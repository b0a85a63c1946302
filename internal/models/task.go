package models

import (
	"time"

	"github.com/mzaytsev/taskmirror/internal/domain"
)

// Task is a unit of work owned by exactly one user. UserID must always
// resolve to a live User; deleting the owner deletes the task.
type Task struct {
	ID          string
	Seq         int64
	Title       string
	Description string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	DueDate     *time.Time
	UserID      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskPatch carries partial updates. Nil fields are left unchanged.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
	Priority    *domain.TaskPriority
	DueDate     *time.Time
}

// Package tasks provides storage for task records behind a narrow Repository
// interface with PostgreSQL and in-memory implementations.
package tasks

import (
	"context"

	"github.com/mzaytsev/taskmirror/internal/models"
)

type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	GetByID(ctx context.Context, id string) (*models.Task, error)
	GetBySeq(ctx context.Context, seq int64) (*models.Task, error)
	// ListByUser returns the tasks owned by userID. Task listing is
	// owner-scoped everywhere; there is deliberately no List-all.
	ListByUser(ctx context.Context, userID string) ([]*models.Task, error)
	// Update applies the non-nil patch fields in one atomic update-by-id and
	// returns the fresh record.
	Update(ctx context.Context, id string, patch models.TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, id string) error
	// DeleteByUser removes every task owned by userID. Used by the user
	// cascade delete inside a transaction.
	DeleteByUser(ctx context.Context, userID string) error
}

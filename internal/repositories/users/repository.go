// Package users provides storage for user identity records behind a narrow
// Repository interface with PostgreSQL and in-memory implementations.
package users

import (
	"context"

	"github.com/mzaytsev/taskmirror/internal/models"
)

type Repository interface {
	// Create persists a fully populated user. Returns
	// domain.ErrDuplicateIdentity when the email or username is taken.
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetBySeq(ctx context.Context, seq int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	// UpdatePassword atomically replaces the credential hash and bumps
	// updated_at, returning the fresh record.
	UpdatePassword(ctx context.Context, id string, passwordHash string) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// Package repomanager wires repository implementations to a storage backend.
// Two backends exist: PostgreSQL (production) and in-memory (tests and the
// equivalence harness).
package repomanager

import (
	"context"

	"github.com/mzaytsev/taskmirror/internal/repositories/counters"
	"github.com/mzaytsev/taskmirror/internal/repositories/tasks"
	"github.com/mzaytsev/taskmirror/internal/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Users() users.Repository
	Tasks() tasks.Repository
	Counters() counters.Repository
	// InTx runs fn with user and task repositories bound to one transaction,
	// so multi-entity changes (the user cascade delete) are atomic relative
	// to observers.
	InTx(ctx context.Context, fn func(u users.Repository, t tasks.Repository) error) error
	Close() error
}

package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/mzaytsev/taskmirror/internal/dbx"
	"github.com/mzaytsev/taskmirror/internal/migrations"
	"github.com/mzaytsev/taskmirror/internal/repositories/counters"
	"github.com/mzaytsev/taskmirror/internal/repositories/tasks"
	"github.com/mzaytsev/taskmirror/internal/repositories/users"
)

type PostgresRepositoryManager struct {
	db       *sql.DB
	users    users.Repository
	tasks    tasks.Repository
	counters counters.Repository
}

func NewPostgresRepositoryManager(dsn string) (*PostgresRepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	return &PostgresRepositoryManager{
		db:       db,
		users:    users.NewPostgresRepository(db),
		tasks:    tasks.NewPostgresRepository(db),
		counters: counters.NewPostgresRepository(db),
	}, nil
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

func (m *PostgresRepositoryManager) Users() users.Repository       { return m.users }
func (m *PostgresRepositoryManager) Tasks() tasks.Repository       { return m.tasks }
func (m *PostgresRepositoryManager) Counters() counters.Repository { return m.counters }

func (m *PostgresRepositoryManager) InTx(ctx context.Context, fn func(u users.Repository, t tasks.Repository) error) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(users.NewPostgresRepository(tx), tasks.NewPostgresRepository(tx))
	})
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

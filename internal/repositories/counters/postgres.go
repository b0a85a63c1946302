package counters

import (
	"context"
	"fmt"

	"github.com/mzaytsev/taskmirror/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Next upserts the counter row and increments it in one statement, so
// concurrent callers always observe distinct, monotonically increasing values.
func (r *PostgresRepository) Next(ctx context.Context, name string) (int64, error) {
	query := `
		INSERT INTO counters (name, seq) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET seq = counters.seq + 1
		RETURNING seq
	`
	var seq int64
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&seq); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return seq, nil
}

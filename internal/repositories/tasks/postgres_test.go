package tasks

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mzaytsev/taskmirror/internal/domain"
	"github.com/mzaytsev/taskmirror/internal/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func sampleTask() *models.Task {
	now := time.Now().UTC()
	return &models.Task{
		ID: "t-1", Seq: 1, Title: "T", Description: "d",
		Status: domain.StatusToDo, Priority: domain.PriorityMedium,
		UserID: "u-1", CreatedAt: now, UpdatedAt: now,
	}
}

func taskRows(ts ...*models.Task) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "seq", "title", "description", "status",
		"priority", "due_date", "user_id", "created_at", "updated_at"})
	for _, task := range ts {
		rows.AddRow(task.ID, task.Seq, task.Title, task.Description, string(task.Status),
			string(task.Priority), task.DueDate, task.UserID, task.CreatedAt, task.UpdatedAt)
	}
	return rows
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^\s*INSERT\s+INTO\s+tasks`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), sampleTask())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.Title != "T" {
		t.Fatalf("unexpected task: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+.*\s+FROM\s+tasks\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListByUser_Scoped(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+.*\s+FROM\s+tasks\s+WHERE\s+user_id\s*=\s*\$1`).
		WithArgs("u-1").
		WillReturnRows(taskRows(sampleTask()))

	got, err := repo.ListByUser(context.Background(), "u-1")
	if err != nil {
		t.Fatalf("ListByUser error: %v", err)
	}
	if len(got) != 1 || got[0].UserID != "u-1" {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestUpdate_PatchApplied(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	updated := sampleTask()
	updated.Status = domain.StatusDone

	mock.ExpectQuery(`(?s)^\s*UPDATE\s+tasks\s+SET`).
		WillReturnRows(taskRows(updated))

	status := domain.StatusDone
	got, err := repo.Update(context.Background(), "t-1", models.TaskPatch{Status: &status})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Status != domain.StatusDone {
		t.Fatalf("unexpected task: %+v", got)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^\s*UPDATE\s+tasks\s+SET`).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Update(context.Background(), "ghost", models.TaskPatch{})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete_NoRows(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+tasks\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteByUser(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+tasks\s+WHERE\s+user_id\s*=\s*\$1`).
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := repo.DeleteByUser(context.Background(), "u-1"); err != nil {
		t.Fatalf("DeleteByUser error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

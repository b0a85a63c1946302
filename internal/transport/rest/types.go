package rest

import (
	"time"

	"github.com/mzaytsev/taskmirror/internal/domain"
	"github.com/mzaytsev/taskmirror/internal/models"
)

// REST identifies entities by their numeric id. Timestamps are UTC RFC 3339.

type userResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type taskResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate,omitempty"`
	UserID      int64   `json:"userId"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type createUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateUserRequest struct {
	Password string `json:"password"`
}

type createTaskRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate,omitempty"`
}

type updateTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.Seq,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: domain.FormatTime(u.CreatedAt),
		UpdatedAt: domain.FormatTime(u.UpdatedAt),
	}
}

// toTaskResponse serializes a task. ownerSeq is the numeric id of the task's
// owner; task endpoints are owner-scoped so this is always the caller.
func toTaskResponse(t *models.Task, ownerSeq int64) taskResponse {
	resp := taskResponse{
		ID:          t.Seq,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		UserID:      ownerSeq,
		CreatedAt:   domain.FormatTime(t.CreatedAt),
		UpdatedAt:   domain.FormatTime(t.UpdatedAt),
	}
	if t.DueDate != nil {
		due := domain.FormatTime(*t.DueDate)
		resp.DueDate = &due
	}
	return resp
}

// parseDueDate turns an optional RFC 3339 string into a timestamp.
func parseDueDate(raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, *raw)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	return &parsed, nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mzaytsev/taskmirror/internal/auth"
	"github.com/mzaytsev/taskmirror/internal/domain"
	"github.com/mzaytsev/taskmirror/internal/models"
	"github.com/mzaytsev/taskmirror/internal/repositories/tasks"
	"github.com/mzaytsev/taskmirror/internal/repositories/users"
)

// CreateUser registers a new account. It is the only unauthenticated write.
func (s *Service) CreateUser(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, domain.ErrInternal
	}

	seq, err := s.rm.Counters().Next(ctx, userCounter)
	if err != nil {
		s.logger.Error(ctx, "counter allocation failed", "counter", userCounter, "error", err)
		return nil, domain.ErrInternal
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.NewString(),
		Seq:          seq,
		Username:     usernameFromEmail(email),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.rm.Users().Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateIdentity) {
			return nil, domain.ErrDuplicateIdentity
		}
		s.logger.Error(ctx, "user create failed", "error", err)
		return nil, domain.ErrInternal
	}
	return created, nil
}

// Login verifies credentials and mints a session token. The error is the same
// for an unknown email and a wrong password.
func (s *Service) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.rm.Users().GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return "", nil, domain.ErrInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		s.logger.Error(ctx, "token generation failed", "error", err)
		return "", nil, domain.ErrInternal
	}
	return token, user, nil
}

// Authenticate resolves a bearer token into a live user. Every failure mode,
// including a valid token whose subject was deleted, is ErrUnauthenticated.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := auth.GetUserIDFromToken(token, s.jwtSecret)
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.rm.Users().GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Outstanding tokens of a deleted user are inert.
			return nil, domain.ErrUnauthenticated
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return nil, domain.ErrInternal
	}
	return user, nil
}

// Logout confirms the caller is authenticated and reports success. The real
// state change is the client discarding its token; there is no server-side
// revocation list.
func (s *Service) Logout(ctx context.Context, caller *models.User) error {
	if caller == nil {
		return domain.ErrUnauthenticated
	}
	return nil
}

// ListUsers returns the user directory. It is not ownership-scoped.
func (s *Service) ListUsers(ctx context.Context, caller *models.User) ([]*models.User, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	list, err := s.rm.Users().List(ctx)
	if err != nil {
		s.logger.Error(ctx, "user list failed", "error", err)
		return nil, domain.ErrInternal
	}
	return list, nil
}

// GetUser looks a user up by either transport's native identifier.
func (s *Service) GetUser(ctx context.Context, caller *models.User, id string) (*models.User, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	user, err := s.resolveUserID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return nil, domain.ErrInternal
	}
	return user, nil
}

// UpdateUser replaces the caller's password. Self-service only.
func (s *Service) UpdateUser(ctx context.Context, caller *models.User, id, newPassword string) (*models.User, error) {
	if caller == nil {
		return nil, domain.ErrUnauthenticated
	}
	target, err := s.resolveUserID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return nil, domain.ErrInternal
	}
	if target.ID != caller.ID {
		return nil, domain.ErrForbidden
	}
	if len(newPassword) < minPasswordLength {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLength)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, domain.ErrInternal
	}

	updated, err := s.rm.Users().UpdatePassword(ctx, target.ID, hash)
	if err != nil {
		s.logger.Error(ctx, "password update failed", "error", err)
		return nil, domain.ErrInternal
	}
	return updated, nil
}

// DeleteUser removes the caller's account and cascades to all owned tasks in
// one transaction; no observer sees a task referencing a deleted owner.
func (s *Service) DeleteUser(ctx context.Context, caller *models.User, id string) error {
	if caller == nil {
		return domain.ErrUnauthenticated
	}
	target, err := s.resolveUserID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return domain.ErrInternal
	}
	if target.ID != caller.ID {
		return domain.ErrForbidden
	}

	err = s.rm.InTx(ctx, func(u users.Repository, t tasks.Repository) error {
		if err := t.DeleteByUser(ctx, target.ID); err != nil {
			return err
		}
		return u.Delete(ctx, target.ID)
	})
	if err != nil {
		s.logger.Error(ctx, "user cascade delete failed", "error", err)
		return domain.ErrInternal
	}
	return nil
}

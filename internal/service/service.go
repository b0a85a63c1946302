// Package service contains the transport-independent domain operations for
// users and tasks, plus the authorization guard. Both transport adapters call
// into this package; no business rule lives anywhere else.
package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/mzaytsev/taskmirror/internal/config"
	"github.com/mzaytsev/taskmirror/internal/logging"
	"github.com/mzaytsev/taskmirror/internal/models"
	"github.com/mzaytsev/taskmirror/internal/repositories/repomanager"
)

const minPasswordLength = 6

// Counter names for sequential id allocation.
const (
	userCounter = "users"
	taskCounter = "tasks"
)

type Service struct {
	rm            repomanager.RepositoryManager
	logger        logging.Logger
	jwtSecret     []byte
	tokenValidity time.Duration
	bcryptCost    int
}

func New(rm repomanager.RepositoryManager, logger logging.Logger, cfg *config.Config) *Service {
	return &Service{
		rm:            rm,
		logger:        logger.With("module", "service"),
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
		bcryptCost:    cfg.BcryptCost,
	}
}

// resolveUserID finds a user by either identifier scheme: the opaque id
// (GraphQL) or the decimal sequence number (REST). The two domains never
// collide because sequence numbers are all digits and opaque ids are not.
func (s *Service) resolveUserID(ctx context.Context, id string) (*models.User, error) {
	if seq, err := strconv.ParseInt(id, 10, 64); err == nil {
		return s.rm.Users().GetBySeq(ctx, seq)
	}
	return s.rm.Users().GetByID(ctx, id)
}

func (s *Service) resolveTaskID(ctx context.Context, id string) (*models.Task, error) {
	if seq, err := strconv.ParseInt(id, 10, 64); err == nil {
		return s.rm.Tasks().GetBySeq(ctx, seq)
	}
	return s.rm.Tasks().GetByID(ctx, id)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// usernameFromEmail derives the handle: the local part of the email,
// lowercased.
func usernameFromEmail(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}

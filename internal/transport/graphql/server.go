// Package graphql is the GraphQL transport adapter: one POST /graphql
// endpoint executing queries and mutations against the shared service layer.
package graphql

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/graphql-go/graphql"

	"github.com/mzaytsev/taskmirror/internal/domain"
	"github.com/mzaytsev/taskmirror/internal/logging"
	"github.com/mzaytsev/taskmirror/internal/models"
	"github.com/mzaytsev/taskmirror/internal/service"
)

type contextKey int

const callerKey contextKey = iota

type Server struct {
	svc    *service.Service
	logger logging.Logger
	schema graphql.Schema
}

func New(svc *service.Service, logger logging.Logger) (*Server, error) {
	s := &Server{
		svc:    svc,
		logger: logger.With("transport", "graphql"),
	}
	schema, err := newSchema(s)
	if err != nil {
		return nil, err
	}
	s.schema = schema
	return s, nil
}

type request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// ServeHTTP executes one GraphQL request. Authentication is resolved lazily:
// a missing or bad token leaves the caller unset and only fields that demand
// auth raise UNAUTHENTICATED, so public operations work without a token.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"errors": []map[string]any{{"message": "malformed request body"}},
		})
		return
	}

	ctx := r.Context()
	if token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); found {
		if caller, err := s.svc.Authenticate(ctx, token); err == nil {
			ctx = context.WithValue(ctx, callerKey, caller)
		}
	}

	result := graphql.Do(graphql.Params{
		Schema:         s.schema,
		RequestString:  req.Query,
		OperationName:  req.OperationName,
		VariableValues: req.Variables,
		Context:        ctx,
	})

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

func callerFrom(ctx context.Context) *models.User {
	caller, _ := ctx.Value(callerKey).(*models.User)
	return caller
}

func (s *Server) requireAuth(ctx context.Context) (*models.User, error) {
	caller := callerFrom(ctx)
	if caller == nil {
		return nil, &apiError{err: domain.ErrUnauthenticated, code: codeUnauthenticated}
	}
	return caller, nil
}

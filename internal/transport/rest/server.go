// Package rest is the REST transport adapter. One route per domain
// operation; every handler translates the wire request, calls the shared
// service layer, and serializes the result. No business logic lives here.
package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/mzaytsev/taskmirror/internal/domain"
	"github.com/mzaytsev/taskmirror/internal/logging"
	"github.com/mzaytsev/taskmirror/internal/models"
	"github.com/mzaytsev/taskmirror/internal/service"
)

type Server struct {
	svc    *service.Service
	logger logging.Logger
}

func New(svc *service.Service, logger logging.Logger) *Server {
	return &Server{
		svc:    svc,
		logger: logger.With("transport", "rest"),
	}
}

// Handler returns the route table. Method+pattern matching comes from the
// standard mux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /users", s.createUser)
	mux.HandleFunc("GET /users", s.authenticated(s.listUsers))
	mux.HandleFunc("GET /users/{id}", s.authenticated(s.getUser))
	mux.HandleFunc("PATCH /users/{id}", s.authenticated(s.updateUser))
	mux.HandleFunc("DELETE /users/{id}", s.authenticated(s.deleteUser))

	mux.HandleFunc("POST /sessions", s.login)
	mux.HandleFunc("DELETE /sessions", s.authenticated(s.logout))

	mux.HandleFunc("GET /tasks", s.authenticated(s.listTasks))
	mux.HandleFunc("POST /tasks", s.authenticated(s.createTask))
	mux.HandleFunc("GET /tasks/{id}", s.authenticated(s.getTask))
	mux.HandleFunc("PATCH /tasks/{id}", s.authenticated(s.updateTask))
	mux.HandleFunc("DELETE /tasks/{id}", s.authenticated(s.deleteTask))

	return s.requestLogging(mux)
}

// bearerToken extracts the token from the Authorization header, or "".
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// authenticated resolves the bearer token into a live user before invoking
// next. Missing, invalid and orphaned tokens are all 401.
func (s *Server) authenticated(next func(http.ResponseWriter, *http.Request, *models.User)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			s.writeError(r.Context(), w, domain.ErrUnauthenticated)
			return
		}
		caller, err := s.svc.Authenticate(r.Context(), token)
		if err != nil {
			s.writeError(r.Context(), w, err)
			return
		}
		next(w, r, caller)
	}
}

func (s *Server) requestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		defer func() {
			s.logger.Info(r.Context(), "request",
				"method", r.Method, "url", r.URL.String(), "duration", time.Since(start).String())
		}()
		next.ServeHTTP(w, r)
	})
}

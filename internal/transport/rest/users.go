package rest

import (
	"net/http"

	"github.com/mzaytsev/taskmirror/internal/models"
)

func (s *Server) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	user, err := s.svc.CreateUser(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(user))
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request, caller *models.User) {
	users, err := s.svc.ListUsers(r.Context(), caller)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	resp := make([]userResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, toUserResponse(u))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) getUser(w http.ResponseWriter, r *http.Request, caller *models.User) {
	user, err := s.svc.GetUser(r.Context(), caller, r.PathValue("id"))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (s *Server) updateUser(w http.ResponseWriter, r *http.Request, caller *models.User) {
	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	user, err := s.svc.UpdateUser(r.Context(), caller, r.PathValue("id"), req.Password)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(user))
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request, caller *models.User) {
	if err := s.svc.DeleteUser(r.Context(), caller, r.PathValue("id")); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	token, user, err := s.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Token: token, User: toUserResponse(user)})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request, caller *models.User) {
	if err := s.svc.Logout(r.Context(), caller); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package rest

import (
	"net/http"

	"github.com/mzaytsev/taskmirror/internal/domain"
	"github.com/mzaytsev/taskmirror/internal/models"
	"github.com/mzaytsev/taskmirror/internal/service"
)

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request, caller *models.User) {
	tasks, err := s.svc.ListTasks(r.Context(), caller)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	resp := make([]taskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, toTaskResponse(t, caller.Seq))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request, caller *models.User) {
	var req createTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	due, err := parseDueDate(req.DueDate)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	task, err := s.svc.CreateTask(r.Context(), caller, service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
		DueDate:     due,
	})
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTaskResponse(task, caller.Seq))
}

func (s *Server) getTask(w http.ResponseWriter, r *http.Request, caller *models.User) {
	task, err := s.svc.GetTask(r.Context(), caller, r.PathValue("id"))
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(task, caller.Seq))
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request, caller *models.User) {
	var req updateTaskRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	due, err := parseDueDate(req.DueDate)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	patch := models.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     due,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		patch.Status = &status
	}
	if req.Priority != nil {
		priority := domain.TaskPriority(*req.Priority)
		patch.Priority = &priority
	}

	task, err := s.svc.UpdateTask(r.Context(), caller, r.PathValue("id"), patch)
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	writeJSON(w, http.StatusOK, toTaskResponse(task, caller.Seq))
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request, caller *models.User) {
	if err := s.svc.DeleteTask(r.Context(), caller, r.PathValue("id")); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

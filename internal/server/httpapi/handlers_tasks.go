package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
)

type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (s *HTTPServer) handleTaskCreate(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, "Missing required fields", nil)
		return
	}

	_, err := s.tasks.Create(r.Context(), userIDFromContext(r.Context()), req.Title, req.Description)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, "Task created", nil)
	case errors.Is(err, common.ErrorValidation):
		writeJSON(w, http.StatusBadRequest, "Missing required fields", nil)
	default:
		s.logger.Error(r.Context(), "task create failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func (s *HTTPServer) handleTaskUpdate(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeJSON(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, "Missing required fields", nil)
		return
	}

	err := s.tasks.Update(r.Context(), userIDFromContext(r.Context()), mux.Vars(r)["id"], req.Title, req.Description)
	switch {
	case err == nil:
		writeJSON(w, http.StatusCreated, "Task updated", nil)
	case errors.Is(err, common.ErrorValidation):
		writeJSON(w, http.StatusBadRequest, "Missing required fields", nil)
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, "Task not found", nil)
	default:
		s.logger.Error(r.Context(), "task update failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func (s *HTTPServer) handleTaskDelete(w http.ResponseWriter, r *http.Request) {
	err := s.tasks.Delete(r.Context(), userIDFromContext(r.Context()), mux.Vars(r)["id"])
	switch {
	case err == nil:
		writeJSON(w, http.StatusNoContent, "Task deleted", nil)
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, "Task not found", nil)
	default:
		s.logger.Error(r.Context(), "task delete failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func (s *HTTPServer) handleTaskChangeStatus(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	completeRaw := r.URL.Query().Get("complete")
	if id == "" || completeRaw == "" {
		writeJSON(w, http.StatusBadRequest, "Missing required values", nil)
		return
	}
	complete, err := strconv.ParseBool(completeRaw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, "Missing required values", nil)
		return
	}

	err = s.tasks.ChangeStatus(r.Context(), userIDFromContext(r.Context()), id, complete)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, "Task status updated", nil)
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, "Task not found", nil)
	default:
		s.logger.Error(r.Context(), "task status change failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func (s *HTTPServer) handleTaskGet(w http.ResponseWriter, r *http.Request) {
	task, err := s.tasks.GetByID(r.Context(), userIDFromContext(r.Context()), mux.Vars(r)["id"])
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, "Task found", task)
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, "Task not found", nil)
	default:
		s.logger.Error(r.Context(), "task fetch failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}

func (s *HTTPServer) handleTaskList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := &models.TaskFilter{
		UserID: userIDFromContext(r.Context()),
		Search: q.Get("search"),
	}
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil {
		filter.Limit = limit
	}
	switch q.Get("isComplete") {
	case "true":
		v := true
		filter.Completed = &v
	case "false":
		v := false
		filter.Completed = &v
	}

	page, err := s.tasks.List(r.Context(), filter)
	if err != nil {
		s.logger.Error(r.Context(), "task list failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	writeJSON(w, http.StatusOK, "Tasks fetched successfully", page)
}

func (s *HTTPServer) handleTaskStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.tasks.Stats(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		s.logger.Error(r.Context(), "task stats failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	writeJSON(w, http.StatusOK, "Task stats fetched successfully", stats)
}

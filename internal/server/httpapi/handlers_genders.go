package httpapi

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

func (s *HTTPServer) handleGenderList(w http.ResponseWriter, r *http.Request) {
	result, err := s.genders.List(r.Context())
	if err != nil {
		s.logger.Error(r.Context(), "gender list failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	writeJSON(w, http.StatusOK, "Genders fetched successfully", result)
}

func (s *HTTPServer) handleGenderGet(w http.ResponseWriter, r *http.Request) {
	g, err := s.genders.GetByID(r.Context(), mux.Vars(r)["id"])
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, "Gender fetched successfully", g)
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, "Gender not found", nil)
	default:
		s.logger.Error(r.Context(), "gender fetch failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}

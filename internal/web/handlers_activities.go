package web

import (
	"encoding/json"
	"net/http"

	"github.com/focustrack/focustrack/internal/domain"
)

func (s *Server) handleAddActivity(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.AppName == "" || req.WindowTitle == "" {
		writeError(w, http.StatusBadRequest, "appName and windowTitle are required")
		return
	}
	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	activity, err := s.sessions.AddActivity(
		r.Context(),
		r.PathValue("sessionId"),
		req.AppName,
		req.WindowTitle,
		category,
	)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActivityResponse(activity))
}

func (s *Server) handleListActivities(w http.ResponseWriter, r *http.Request) {
	activities, err := s.sessions.ActivitiesBySession(r.Context(), r.PathValue("sessionId"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]activityResponse, len(activities))
	for i, activity := range activities {
		out[i] = toActivityResponse(activity)
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleEndActivity(w http.ResponseWriter, r *http.Request) {
	activity, err := s.sessions.EndActivity(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityResponse(activity))
}

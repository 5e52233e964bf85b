package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

func (s *Server) handlePomodoroStart(w http.ResponseWriter, r *http.Request) {
	var req pomodoroStartRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := s.pomodoros.StartWork(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

func (s *Server) handlePomodoroBreak(w http.ResponseWriter, r *http.Request) {
	var req pomodoroBreakRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := s.pomodoros.StartBreak(r.Context(), req.LongBreak)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

func (s *Server) handlePomodoroDurations(w http.ResponseWriter, r *http.Request) {
	d := s.pomodoros.GetDurations()
	writeJSON(w, http.StatusOK, durationsResponse{
		WorkDuration:      d.WorkSeconds,
		BreakDuration:     d.BreakSeconds,
		LongBreakDuration: d.LongBreakSeconds,
	})
}

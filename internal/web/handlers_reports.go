package web

import (
	"net/http"
	"time"
)

const dateLayout = "2006-01-02"

func (s *Server) handleDailyReport(w http.ResponseWriter, r *http.Request) {
	date := time.Now().UTC()
	if param := r.URL.Query().Get("date"); param != "" {
		parsed, err := time.Parse(dateLayout, param)
		if err != nil {
			writeError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	report, err := s.reports.Daily(r.Context(), date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(report))
}

func (s *Server) handleWeeklyReport(w http.ResponseWriter, r *http.Request) {
	// Default window starts a week ago so it covers the last seven days.
	startDate := time.Now().UTC().AddDate(0, 0, -7)
	if param := r.URL.Query().Get("startDate"); param != "" {
		parsed, err := time.Parse(dateLayout, param)
		if err != nil {
			writeError(w, http.StatusBadRequest, "startDate must be YYYY-MM-DD")
			return
		}
		startDate = parsed
	}

	report, err := s.reports.Weekly(r.Context(), startDate)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(report))
}

func (s *Server) handleCustomReport(w http.ResponseWriter, r *http.Request) {
	start, err := time.Parse(time.RFC3339, r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "start must be RFC3339")
		return
	}
	end, err := time.Parse(time.RFC3339, r.URL.Query().Get("end"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "end must be RFC3339")
		return
	}

	report, err := s.reports.Generate(r.Context(), start, end)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(report))
}

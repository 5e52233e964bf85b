package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/focustrack/focustrack/internal/domain"
	"github.com/focustrack/focustrack/internal/pomodoro"
)

// SessionService is the slice of the session lifecycle service the API uses.
type SessionService interface {
	Create(ctx context.Context, name string, sessionType domain.SessionType) (*domain.Session, error)
	Pause(ctx context.Context, id string) (*domain.Session, error)
	Resume(ctx context.Context, id string) (*domain.Session, error)
	End(ctx context.Context, id string) (*domain.Session, error)
	Get(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
	Active(ctx context.Context) (*domain.Session, error)
	AddActivity(ctx context.Context, sessionID, appName, windowTitle string, category domain.ActivityCategory) (*domain.Activity, error)
	EndActivity(ctx context.Context, id string) (*domain.Activity, error)
	ActivitiesBySession(ctx context.Context, sessionID string) ([]*domain.Activity, error)
}

// ReportService generates productivity reports over time windows.
type ReportService interface {
	Generate(ctx context.Context, start, end time.Time) (*domain.Report, error)
	Daily(ctx context.Context, date time.Time) (*domain.Report, error)
	Weekly(ctx context.Context, startDate time.Time) (*domain.Report, error)
}

// PomodoroService starts preset pomodoro sessions.
type PomodoroService interface {
	StartWork(ctx context.Context, name string) (*domain.Session, error)
	StartBreak(ctx context.Context, isLong bool) (*domain.Session, error)
	GetDurations() pomodoro.Durations
}

// Server serves the JSON API.
type Server struct {
	router    *http.ServeMux
	port      int
	sessions  SessionService
	reports   ReportService
	pomodoros PomodoroService
}

func NewServer(port int, sessions SessionService, reports ReportService, pomodoros PomodoroService) *Server {
	s := &Server{
		router:    http.NewServeMux(),
		port:      port,
		sessions:  sessions,
		reports:   reports,
		pomodoros: pomodoros,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Sessions
	s.router.HandleFunc("POST /api/sessions", s.handleCreateSession)
	s.router.HandleFunc("GET /api/sessions", s.handleListSessions)
	s.router.HandleFunc("GET /api/sessions/active", s.handleActiveSession)
	s.router.HandleFunc("GET /api/sessions/{id}", s.handleGetSession)
	s.router.HandleFunc("PUT /api/sessions/{id}/pause", s.handlePauseSession)
	s.router.HandleFunc("PUT /api/sessions/{id}/resume", s.handleResumeSession)
	s.router.HandleFunc("PUT /api/sessions/{id}/end", s.handleEndSession)

	// Activities
	s.router.HandleFunc("POST /api/activities/session/{sessionId}", s.handleAddActivity)
	s.router.HandleFunc("GET /api/activities/session/{sessionId}", s.handleListActivities)
	s.router.HandleFunc("PUT /api/activities/{id}/end", s.handleEndActivity)

	// Reports
	s.router.HandleFunc("GET /api/reports/daily", s.handleDailyReport)
	s.router.HandleFunc("GET /api/reports/weekly", s.handleWeeklyReport)
	s.router.HandleFunc("GET /api/reports/custom", s.handleCustomReport)

	// Pomodoro
	s.router.HandleFunc("POST /api/pomodoro/start", s.handlePomodoroStart)
	s.router.HandleFunc("POST /api/pomodoro/break", s.handlePomodoroBreak)
	s.router.HandleFunc("GET /api/pomodoro/durations", s.handlePomodoroDurations)
}

// Start runs the server until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: s.router,
	}

	errChan := make(chan error, 1)
	go func() {
		log.Printf("Listening on http://localhost:%d", s.port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

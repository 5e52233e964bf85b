package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/focustrack/focustrack/internal/adapters/otel"
	"github.com/focustrack/focustrack/internal/adapters/turso"
	"github.com/focustrack/focustrack/internal/database"
	"github.com/focustrack/focustrack/internal/infrastructure/config"
	"github.com/focustrack/focustrack/internal/pomodoro"
	"github.com/focustrack/focustrack/internal/ports"
	"github.com/focustrack/focustrack/internal/report"
	"github.com/focustrack/focustrack/internal/session"
)

// stderrLogger writes service logs to stderr. Debug output is gated behind
// FOCUSTRACK_DEBUG so normal command output stays clean.
type stderrLogger struct {
	debug bool
}

func newLogger() *stderrLogger {
	debug, _ := strconv.ParseBool(os.Getenv("FOCUSTRACK_DEBUG"))
	return &stderrLogger{debug: debug}
}

func (l *stderrLogger) Debug(message string) {
	if l.debug {
		log.Println(message)
	}
}

func (l *stderrLogger) Error(message string) {
	log.Println(message)
}

func openDB() (*database.Client, error) {
	cfg, err := config.LoadDatabase()
	if err != nil {
		return nil, fmt.Errorf("load database config: %w", err)
	}

	db, err := database.New(cfg.URL, cfg.AuthToken)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// newExporter returns the OTEL exporter when configured, the no-op one
// otherwise. Metrics are optional; tracking never fails because of them.
func newExporter(ctx context.Context, logger *stderrLogger) ports.MetricsExporter {
	cfg := otel.LoadConfig()
	if !cfg.Enabled {
		return otel.NewNoOpExporter()
	}

	exporter, err := otel.NewExporter(ctx, cfg)
	if err != nil {
		logger.Error(fmt.Sprintf("OTEL exporter unavailable, metrics disabled: %v", err))
		return otel.NewNoOpExporter()
	}
	return exporter
}

type services struct {
	sessions  *session.Service
	reports   *report.Service
	pomodoros *pomodoro.Service
	exporter  ports.MetricsExporter
}

func newServices(ctx context.Context, db *database.Client) *services {
	logger := newLogger()
	sessionRepo := turso.NewSessionRepository(db.DB)
	activityRepo := turso.NewActivityRepository(db.DB)
	exporter := newExporter(ctx, logger)

	sessions := session.NewService(sessionRepo, activityRepo, exporter, logger)
	return &services{
		sessions:  sessions,
		reports:   report.NewService(sessionRepo, activityRepo),
		pomodoros: pomodoro.NewService(sessions),
		exporter:  exporter,
	}
}

func (s *services) close(ctx context.Context) {
	if err := s.exporter.Close(ctx); err != nil {
		log.Printf("error closing metrics exporter: %v", err)
	}
}

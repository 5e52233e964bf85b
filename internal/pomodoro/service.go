package pomodoro

import (
	"context"

	"github.com/focustrack/focustrack/internal/domain"
	"github.com/focustrack/focustrack/internal/session"
)

// Pomodoro interval presets, in seconds.
const (
	WorkDurationSeconds      = 25 * 60
	BreakDurationSeconds     = 5 * 60
	LongBreakDurationSeconds = 15 * 60
)

// Durations exposes the fixed pomodoro interval lengths.
type Durations struct {
	WorkSeconds      int64
	BreakSeconds     int64
	LongBreakSeconds int64
}

// Service creates sessions with pomodoro semantics. It delegates entirely
// to the session lifecycle service and schedules no timers itself; a caller
// ends the session when its interval elapses.
type Service struct {
	sessions *session.Service
}

func NewService(sessions *session.Service) *Service {
	return &Service{sessions: sessions}
}

// StartWork begins a pomodoro work session.
func (s *Service) StartWork(ctx context.Context, name string) (*domain.Session, error) {
	if name == "" {
		name = "Pomodoro Work Session"
	}
	return s.sessions.Create(ctx, name, domain.TypePomodoroWork)
}

// StartBreak begins a short or long pomodoro break session.
func (s *Service) StartBreak(ctx context.Context, isLong bool) (*domain.Session, error) {
	name := "Pomodoro Short Break"
	if isLong {
		name = "Pomodoro Long Break"
	}
	return s.sessions.Create(ctx, name, domain.TypePomodoroBreak)
}

// GetDurations returns the preset interval lengths.
func (s *Service) GetDurations() Durations {
	return Durations{
		WorkSeconds:      WorkDurationSeconds,
		BreakSeconds:     BreakDurationSeconds,
		LongBreakSeconds: LongBreakDurationSeconds,
	}
}

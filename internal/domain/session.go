package domain

import "time"

// SessionStatus is the lifecycle state of a tracking session.
type SessionStatus string

const (
	StatusActive    SessionStatus = "ACTIVE"
	StatusPaused    SessionStatus = "PAUSED"
	StatusCompleted SessionStatus = "COMPLETED"
)

// SessionType distinguishes free-form focus sessions from pomodoro intervals.
type SessionType string

const (
	TypeFocus         SessionType = "FOCUS"
	TypePomodoroWork  SessionType = "POMODORO_WORK"
	TypePomodoroBreak SessionType = "POMODORO_BREAK"
)

// Session is a bounded period of tracked work or break time. Duration
// totals are derived from the session's activities and overwritten on
// every recomputation; they are never mutated independently.
type Session struct {
	ID                string
	Name              string
	Status            SessionStatus
	Type              SessionType
	StartedAt         time.Time
	EndedAt           *time.Time
	TotalSeconds      *int64
	FocusedSeconds    *int64
	DistractedSeconds *int64
	CreatedAt         time.Time
}

// Completed reports whether the session reached its terminal state.
func (s *Session) Completed() bool {
	return s.Status == StatusCompleted
}

// SetDurations overwrites the three derived duration fields.
func (s *Session) SetDurations(total, focused, distracted int64) {
	s.TotalSeconds = &total
	s.FocusedSeconds = &focused
	s.DistractedSeconds = &distracted
}

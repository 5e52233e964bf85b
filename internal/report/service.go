package report

import (
	"context"
	"fmt"
	"time"

	"github.com/focustrack/focustrack/internal/domain"
	"github.com/focustrack/focustrack/internal/ports"
)

// Service computes productivity reports over time windows. It only reads
// from the store; the heavy lifting is the pure domain.BuildReport.
type Service struct {
	sessions   ports.SessionRepository
	activities ports.ActivityRepository
	now        func() time.Time
}

func NewService(sessions ports.SessionRepository, activities ports.ActivityRepository) *Service {
	return &Service{
		sessions:   sessions,
		activities: activities,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Generate builds a report over [start, end]. The window selects sessions
// by start time; every activity of a selected session is included even when
// the activity itself falls outside the window.
func (s *Service) Generate(ctx context.Context, start, end time.Time) (*domain.Report, error) {
	sessions, err := s.sessions.ListByStartTimeRange(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("list sessions in range: %w", err)
	}

	var activities []*domain.Activity
	for _, session := range sessions {
		sessionActivities, err := s.activities.ListBySession(ctx, session.ID)
		if err != nil {
			return nil, fmt.Errorf("list activities for session %s: %w", session.ID, err)
		}
		activities = append(activities, sessionActivities...)
	}

	return domain.BuildReport(s.now(), sessions, activities), nil
}

// Daily reports over [date 00:00:00, date 23:59:59].
func (s *Service) Daily(ctx context.Context, date time.Time) (*domain.Report, error) {
	start := startOfDay(date)
	end := start.Add(24*time.Hour - time.Second)
	return s.Generate(ctx, start, end)
}

// Weekly reports over [startDate 00:00:00, startDate+7d-1s].
func (s *Service) Weekly(ctx context.Context, startDate time.Time) (*domain.Report, error) {
	start := startOfDay(startDate)
	end := start.AddDate(0, 0, 7).Add(-time.Second)
	return s.Generate(ctx, start, end)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

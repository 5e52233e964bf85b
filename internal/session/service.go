package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/focustrack/focustrack/internal/domain"
	"github.com/focustrack/focustrack/internal/ports"
)

// Service owns session state transitions and activity sequencing within a
// session. Every operation is a bounded, synchronous read-modify-write
// against the repositories; per-entity atomicity is the store's job.
type Service struct {
	sessions   ports.SessionRepository
	activities ports.ActivityRepository
	exporter   ports.MetricsExporter
	logger     domain.Logger
	now        func() time.Time
}

// NewService creates a session lifecycle service. The exporter receives a
// summary for every completed session; pass a no-op exporter to disable.
func NewService(
	sessions ports.SessionRepository,
	activities ports.ActivityRepository,
	exporter ports.MetricsExporter,
	logger domain.Logger,
) *Service {
	return &Service{
		sessions:   sessions,
		activities: activities,
		exporter:   exporter,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Create starts a new session. A missing name gets a timestamped
// placeholder, a missing type defaults to Focus; status is always Active.
func (s *Service) Create(ctx context.Context, name string, sessionType domain.SessionType) (*domain.Session, error) {
	now := s.now()
	if name == "" {
		name = "Session " + now.Format("2006-01-02 15:04:05")
	}
	if sessionType == "" {
		sessionType = domain.TypeFocus
	}

	session := &domain.Session{
		ID:        uuid.NewString(),
		Name:      name,
		Status:    domain.StatusActive,
		Type:      sessionType,
		StartedAt: now,
		CreatedAt: now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.logger.Debug(fmt.Sprintf("Started session %s (%s)", session.ID, session.Type))
	return session, nil
}

// Pause moves a session to Paused and refreshes its duration totals. The
// transition is applied unconditionally: pausing an already completed
// session is a no-guard write, matching the rest of the lifecycle.
func (s *Service) Pause(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Status = domain.StatusPaused
	if err := s.refreshDurations(ctx, session); err != nil {
		return nil, err
	}

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return session, nil
}

// Resume moves a session back to Active. No interval closes on resume, so
// no duration recomputation happens.
func (s *Service) Resume(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Status = domain.StatusActive
	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return session, nil
}

// End completes a session: terminal status, end time stamped, duration
// totals recomputed. A summary goes to the metrics exporter best-effort.
func (s *Service) End(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now()
	session.Status = domain.StatusCompleted
	session.EndedAt = &now
	if err := s.refreshDurations(ctx, session); err != nil {
		return nil, err
	}

	if err := s.sessions.Update(ctx, session); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	s.exportSummary(ctx, session)
	return session, nil
}

// AddActivity appends a new focus interval to a session. If the session has
// an open activity it is closed at the current instant first, so duration
// accounting advances one interval at a time. The category comes from the
// caller when given, otherwise from the classifier.
func (s *Service) AddActivity(ctx context.Context, sessionID, appName, windowTitle string, category domain.ActivityCategory) (*domain.Activity, error) {
	session, err := s.get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := s.now()

	activities, err := s.activities.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	for _, prev := range activities {
		if !prev.Open() {
			continue
		}
		prev.Close(now)
		if err := s.activities.Update(ctx, prev); err != nil {
			return nil, fmt.Errorf("close previous activity: %w", err)
		}
	}

	if category == "" {
		category = domain.Classify(appName, windowTitle)
	}

	activity := &domain.Activity{
		ID:          uuid.NewString(),
		SessionID:   session.ID,
		AppName:     appName,
		WindowTitle: windowTitle,
		Category:    category,
		StartedAt:   now,
		CreatedAt:   now,
	}

	if err := s.activities.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("create activity: %w", err)
	}

	s.logger.Debug(fmt.Sprintf("Recorded activity %s (%s / %s) in session %s", activity.ID, appName, category, session.ID))
	return activity, nil
}

// EndActivity closes one activity by id, recomputing its duration.
func (s *Service) EndActivity(ctx context.Context, id string) (*domain.Activity, error) {
	activity, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get activity: %w", err)
	}
	if activity == nil {
		return nil, domain.ErrActivityNotFound
	}

	activity.Close(s.now())
	if err := s.activities.Update(ctx, activity); err != nil {
		return nil, fmt.Errorf("update activity: %w", err)
	}
	return activity, nil
}

// Get returns one session by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Session, error) {
	return s.get(ctx, id)
}

// List returns every session.
func (s *Service) List(ctx context.Context) ([]*domain.Session, error) {
	return s.sessions.List(ctx)
}

// Active returns the most recently started Active session, or nil when no
// session is active. Nothing prevents multiple Active sessions from
// coexisting; this is a query convenience, not an exclusivity invariant.
func (s *Service) Active(ctx context.Context) (*domain.Session, error) {
	return s.sessions.MostRecentByStatus(ctx, domain.StatusActive)
}

// ActivitiesBySession returns a session's activities ordered by start time.
func (s *Service) ActivitiesBySession(ctx context.Context, sessionID string) ([]*domain.Activity, error) {
	if _, err := s.get(ctx, sessionID); err != nil {
		return nil, err
	}
	return s.activities.ListBySession(ctx, sessionID)
}

func (s *Service) get(ctx context.Context, id string) (*domain.Session, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if session == nil {
		return nil, domain.ErrSessionNotFound
	}
	return session, nil
}

// refreshDurations re-reads the session's activities and overwrites the
// three derived duration fields. O(activity count).
func (s *Service) refreshDurations(ctx context.Context, session *domain.Session) error {
	activities, err := s.activities.ListBySession(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("list activities: %w", err)
	}
	session.SetDurations(domain.SummarizeActivities(activities))
	return nil
}

func (s *Service) exportSummary(ctx context.Context, session *domain.Session) {
	if s.exporter == nil || session.EndedAt == nil {
		return
	}

	summary := &ports.SessionSummary{
		SessionID: session.ID,
		Name:      session.Name,
		Type:      string(session.Type),
		StartedAt: session.StartedAt,
		EndedAt:   *session.EndedAt,
	}
	if session.TotalSeconds != nil {
		summary.TotalSeconds = *session.TotalSeconds
	}
	if session.FocusedSeconds != nil {
		summary.FocusedSeconds = *session.FocusedSeconds
	}
	if session.DistractedSeconds != nil {
		summary.DistractedSeconds = *session.DistractedSeconds
	}

	if err := s.exporter.ExportSessionSummary(ctx, summary); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to export session metrics: %v", err))
	}
}

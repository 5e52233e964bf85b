package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/focustrack/focustrack/internal/domain"
	"github.com/focustrack/focustrack/internal/ports"
)

type fakeSessionRepo struct {
	sessions map[string]*domain.Session
	order    []string
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, s *domain.Session) error {
	copied := *s
	r.sessions[s.ID] = &copied
	r.order = append(r.order, s.ID)
	return nil
}

func (r *fakeSessionRepo) Update(_ context.Context, s *domain.Session) error {
	if _, ok := r.sessions[s.ID]; !ok {
		return errors.New("session not stored")
	}
	copied := *s
	r.sessions[s.ID] = &copied
	return nil
}

func (r *fakeSessionRepo) GetByID(_ context.Context, id string) (*domain.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (r *fakeSessionRepo) List(_ context.Context) ([]*domain.Session, error) {
	out := make([]*domain.Session, 0, len(r.order))
	for _, id := range r.order {
		copied := *r.sessions[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeSessionRepo) ListByStatus(ctx context.Context, status domain.SessionStatus) ([]*domain.Session, error) {
	all, _ := r.List(ctx)
	out := make([]*domain.Session, 0)
	for _, s := range all {
		if s.Status == status {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) MostRecentByStatus(ctx context.Context, status domain.SessionStatus) (*domain.Session, error) {
	matching, _ := r.ListByStatus(ctx, status)
	var latest *domain.Session
	for _, s := range matching {
		if latest == nil || s.StartedAt.After(latest.StartedAt) {
			latest = s
		}
	}
	return latest, nil
}

func (r *fakeSessionRepo) ListByStartTimeRange(ctx context.Context, start, end time.Time) ([]*domain.Session, error) {
	all, _ := r.List(ctx)
	out := make([]*domain.Session, 0)
	for _, s := range all {
		if !s.StartedAt.Before(start) && !s.StartedAt.After(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) Delete(_ context.Context, id string) error {
	delete(r.sessions, id)
	return nil
}

type fakeActivityRepo struct {
	activities map[string]*domain.Activity
	order      []string
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{activities: make(map[string]*domain.Activity)}
}

func (r *fakeActivityRepo) Create(_ context.Context, a *domain.Activity) error {
	copied := *a
	r.activities[a.ID] = &copied
	r.order = append(r.order, a.ID)
	return nil
}

func (r *fakeActivityRepo) Update(_ context.Context, a *domain.Activity) error {
	if _, ok := r.activities[a.ID]; !ok {
		return errors.New("activity not stored")
	}
	copied := *a
	r.activities[a.ID] = &copied
	return nil
}

func (r *fakeActivityRepo) GetByID(_ context.Context, id string) (*domain.Activity, error) {
	a, ok := r.activities[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *fakeActivityRepo) ListBySession(_ context.Context, sessionID string) ([]*domain.Activity, error) {
	out := make([]*domain.Activity, 0)
	for _, id := range r.order {
		if r.activities[id].SessionID == sessionID {
			copied := *r.activities[id]
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeExporter struct {
	summaries []*ports.SessionSummary
	err       error
}

func (e *fakeExporter) ExportSessionSummary(_ context.Context, s *ports.SessionSummary) error {
	if e.err != nil {
		return e.err
	}
	e.summaries = append(e.summaries, s)
	return nil
}

func (e *fakeExporter) Close(_ context.Context) error { return nil }

type fixture struct {
	service    *Service
	sessions   *fakeSessionRepo
	activities *fakeActivityRepo
	exporter   *fakeExporter
	clock      time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		sessions:   newFakeSessionRepo(),
		activities: newFakeActivityRepo(),
		exporter:   &fakeExporter{},
		clock:      time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	f.service = NewService(f.sessions, f.activities, f.exporter, domain.NopLogger{})
	f.service.now = func() time.Time { return f.clock }
	return f
}

func (f *fixture) advance(d time.Duration) {
	f.clock = f.clock.Add(d)
}

func TestCreateDefaults(t *testing.T) {
	f := newFixture(t)

	session, err := f.service.Create(context.Background(), "", "")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if session.ID == "" {
		t.Error("expected generated session id")
	}
	if session.Name != "Session 2026-03-01 09:00:00" {
		t.Errorf("unexpected default name %q", session.Name)
	}
	if session.Type != domain.TypeFocus {
		t.Errorf("expected default type FOCUS, got %v", session.Type)
	}
	if session.Status != domain.StatusActive {
		t.Errorf("expected status ACTIVE, got %v", session.Status)
	}
	if !session.StartedAt.Equal(f.clock) {
		t.Errorf("expected StartedAt %v, got %v", f.clock, session.StartedAt)
	}
	if session.EndedAt != nil {
		t.Error("expected nil EndedAt on a new session")
	}

	stored, _ := f.sessions.GetByID(context.Background(), session.ID)
	if stored == nil {
		t.Fatal("session was not persisted")
	}
}

func TestCreateExplicit(t *testing.T) {
	f := newFixture(t)

	session, err := f.service.Create(context.Background(), "Deep work", domain.TypePomodoroWork)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if session.Name != "Deep work" {
		t.Errorf("expected name preserved, got %q", session.Name)
	}
	if session.Type != domain.TypePomodoroWork {
		t.Errorf("expected type POMODORO_WORK, got %v", session.Type)
	}
}

func TestPauseRecomputesDurations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, _ := f.service.Create(ctx, "work", domain.TypeFocus)

	if _, err := f.service.AddActivity(ctx, session.ID, "IntelliJ IDEA", "Main.java", ""); err != nil {
		t.Fatalf("AddActivity failed: %v", err)
	}
	f.advance(2 * time.Minute)
	if _, err := f.service.AddActivity(ctx, session.ID, "Safari", "YouTube", ""); err != nil {
		t.Fatalf("AddActivity failed: %v", err)
	}
	f.advance(30 * time.Second)

	paused, err := f.service.Pause(ctx, session.ID)
	if err != nil {
		t.Fatalf("Pause failed: %v", err)
	}

	if paused.Status != domain.StatusPaused {
		t.Errorf("expected status PAUSED, got %v", paused.Status)
	}
	// The second activity is still open, so only the first 120 seconds count.
	if paused.TotalSeconds == nil || *paused.TotalSeconds != 120 {
		t.Errorf("expected total 120s, got %v", paused.TotalSeconds)
	}
	if paused.FocusedSeconds == nil || *paused.FocusedSeconds != 120 {
		t.Errorf("expected focused 120s, got %v", paused.FocusedSeconds)
	}
	if paused.DistractedSeconds == nil || *paused.DistractedSeconds != 0 {
		t.Errorf("expected distracted 0s, got %v", paused.DistractedSeconds)
	}
	if paused.EndedAt != nil {
		t.Error("pause must not stamp an end time")
	}
}

func TestResumeDoesNotRecompute(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, _ := f.service.Create(ctx, "work", domain.TypeFocus)
	if _, err := f.service.Pause(ctx, session.ID); err != nil {
		t.Fatalf("Pause failed: %v", err)
	}

	resumed, err := f.service.Resume(ctx, session.ID)
	if err != nil {
		t.Fatalf("Resume failed: %v", err)
	}
	if resumed.Status != domain.StatusActive {
		t.Errorf("expected status ACTIVE, got %v", resumed.Status)
	}
	// Pause wrote zeros; resume must not touch them.
	if resumed.TotalSeconds == nil || *resumed.TotalSeconds != 0 {
		t.Errorf("expected totals untouched by resume, got %v", resumed.TotalSeconds)
	}
}

func TestEndCompletesAndExports(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, _ := f.service.Create(ctx, "work", domain.TypeFocus)
	if _, err := f.service.AddActivity(ctx, session.ID, "Obsidian", "notes", ""); err != nil {
		t.Fatalf("AddActivity failed: %v", err)
	}
	f.advance(90 * time.Second)
	if _, err := f.service.EndActivity(ctx, mustOnlyActivity(t, f, session.ID).ID); err != nil {
		t.Fatalf("EndActivity failed: %v", err)
	}

	f.advance(10 * time.Second)
	ended, err := f.service.End(ctx, session.ID)
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}

	if ended.Status != domain.StatusCompleted {
		t.Errorf("expected status COMPLETED, got %v", ended.Status)
	}
	if ended.EndedAt == nil || !ended.EndedAt.Equal(f.clock) {
		t.Errorf("expected EndedAt %v, got %v", f.clock, ended.EndedAt)
	}
	if !ended.Completed() {
		t.Error("Completed() must report true after End")
	}
	if ended.TotalSeconds == nil || *ended.TotalSeconds != 90 {
		t.Errorf("expected total 90s, got %v", ended.TotalSeconds)
	}

	if len(f.exporter.summaries) != 1 {
		t.Fatalf("expected one exported summary, got %d", len(f.exporter.summaries))
	}
	summary := f.exporter.summaries[0]
	if summary.SessionID != session.ID || summary.TotalSeconds != 90 || summary.FocusedSeconds != 90 {
		t.Errorf("unexpected summary: %+v", summary)
	}
}

func TestEndSurvivesExporterFailure(t *testing.T) {
	f := newFixture(t)
	f.exporter.err = errors.New("collector down")
	ctx := context.Background()

	session, _ := f.service.Create(ctx, "work", domain.TypeFocus)
	ended, err := f.service.End(ctx, session.ID)
	if err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if ended.Status != domain.StatusCompleted {
		t.Errorf("expected session completed despite exporter failure, got %v", ended.Status)
	}
}

func TestPauseCompletedSessionAllowed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, _ := f.service.Create(ctx, "work", domain.TypeFocus)
	if _, err := f.service.End(ctx, session.ID); err != nil {
		t.Fatalf("End failed: %v", err)
	}

	paused, err := f.service.Pause(ctx, session.ID)
	if err != nil {
		t.Fatalf("Pause on completed session failed: %v", err)
	}
	if paused.Status != domain.StatusPaused {
		t.Errorf("expected status PAUSED, got %v", paused.Status)
	}
	if paused.EndedAt == nil {
		t.Error("existing end time must survive the pause")
	}
}

func TestAddActivityClosesOpenPrevious(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, _ := f.service.Create(ctx, "work", domain.TypeFocus)

	first, err := f.service.AddActivity(ctx, session.ID, "VS Code", "main.go", "")
	if err != nil {
		t.Fatalf("AddActivity failed: %v", err)
	}
	f.advance(45 * time.Second)

	second, err := f.service.AddActivity(ctx, session.ID, "Chrome", "docs", "")
	if err != nil {
		t.Fatalf("AddActivity failed: %v", err)
	}

	activities, err := f.service.ActivitiesBySession(ctx, session.ID)
	if err != nil {
		t.Fatalf("ActivitiesBySession failed: %v", err)
	}
	if len(activities) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(activities))
	}

	stored := activities[0]
	if stored.ID != first.ID {
		t.Fatalf("expected activities ordered by start, got %s first", stored.ID)
	}
	if stored.Open() {
		t.Error("expected first activity closed by the second")
	}
	if stored.DurationSeconds == nil || *stored.DurationSeconds != 45 {
		t.Errorf("expected first activity duration 45s, got %v", stored.DurationSeconds)
	}
	if !activities[1].Open() {
		t.Error("expected second activity still open")
	}
	if activities[1].ID != second.ID {
		t.Errorf("expected second activity %s in order, got %s", second.ID, activities[1].ID)
	}

	open := 0
	for _, a := range activities {
		if a.Open() {
			open++
		}
	}
	if open != 1 {
		t.Errorf("expected exactly one open activity, got %d", open)
	}
}

func TestAddActivityClassification(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	session, _ := f.service.Create(ctx, "work", domain.TypeFocus)

	classified, err := f.service.AddActivity(ctx, session.ID, "Google Chrome", "YouTube - Funny Cats", "")
	if err != nil {
		t.Fatalf("AddActivity failed: %v", err)
	}
	if classified.Category != domain.CategoryDistracting {
		t.Errorf("expected classifier to fill DISTRACTING, got %v", classified.Category)
	}

	explicit, err := f.service.AddActivity(ctx, session.ID, "Google Chrome", "YouTube - Conference Talk", domain.CategoryProductive)
	if err != nil {
		t.Fatalf("AddActivity failed: %v", err)
	}
	if explicit.Category != domain.CategoryProductive {
		t.Errorf("expected explicit category preserved, got %v", explicit.Category)
	}
}

func TestSessionNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.service.Get(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("Get: expected ErrSessionNotFound, got %v", err)
	}
	if _, err := f.service.Pause(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("Pause: expected ErrSessionNotFound, got %v", err)
	}
	if _, err := f.service.End(ctx, "missing"); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("End: expected ErrSessionNotFound, got %v", err)
	}
	if _, err := f.service.AddActivity(ctx, "missing", "app", "title", ""); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Errorf("AddActivity: expected ErrSessionNotFound, got %v", err)
	}
}

func TestEndActivityNotFound(t *testing.T) {
	f := newFixture(t)
	if _, err := f.service.EndActivity(context.Background(), "missing"); !errors.Is(err, domain.ErrActivityNotFound) {
		t.Errorf("expected ErrActivityNotFound, got %v", err)
	}
}

func TestActiveReturnsMostRecent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	none, err := f.service.Active(ctx)
	if err != nil {
		t.Fatalf("Active failed: %v", err)
	}
	if none != nil {
		t.Fatalf("expected no active session, got %+v", none)
	}

	older, _ := f.service.Create(ctx, "first", domain.TypeFocus)
	f.advance(time.Minute)
	newer, _ := f.service.Create(ctx, "second", domain.TypeFocus)

	active, err := f.service.Active(ctx)
	if err != nil {
		t.Fatalf("Active failed: %v", err)
	}
	if active == nil || active.ID != newer.ID {
		t.Errorf("expected most recent session %s, got %+v", newer.ID, active)
	}

	if _, err := f.service.End(ctx, newer.ID); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	active, _ = f.service.Active(ctx)
	if active == nil || active.ID != older.ID {
		t.Errorf("expected fallback to older active session, got %+v", active)
	}
}

func mustOnlyActivity(t *testing.T, f *fixture, sessionID string) *domain.Activity {
	t.Helper()
	activities, err := f.service.ActivitiesBySession(context.Background(), sessionID)
	if err != nil {
		t.Fatalf("ActivitiesBySession failed: %v", err)
	}
	if len(activities) != 1 {
		t.Fatalf("expected exactly one activity, got %d", len(activities))
	}
	return activities[0]
}

package pomodoro

import (
	"context"
	"testing"
	"time"

	"github.com/focustrack/focustrack/internal/domain"
	"github.com/focustrack/focustrack/internal/session"
)

type recordingSessionRepo struct {
	created []*domain.Session
}

func (r *recordingSessionRepo) Create(_ context.Context, s *domain.Session) error {
	r.created = append(r.created, s)
	return nil
}
func (r *recordingSessionRepo) Update(context.Context, *domain.Session) error { return nil }
func (r *recordingSessionRepo) GetByID(context.Context, string) (*domain.Session, error) {
	return nil, nil
}
func (r *recordingSessionRepo) List(context.Context) ([]*domain.Session, error) { return nil, nil }
func (r *recordingSessionRepo) ListByStatus(context.Context, domain.SessionStatus) ([]*domain.Session, error) {
	return nil, nil
}
func (r *recordingSessionRepo) MostRecentByStatus(context.Context, domain.SessionStatus) (*domain.Session, error) {
	return nil, nil
}
func (r *recordingSessionRepo) ListByStartTimeRange(context.Context, time.Time, time.Time) ([]*domain.Session, error) {
	return nil, nil
}
func (r *recordingSessionRepo) Delete(context.Context, string) error { return nil }

type noopActivityRepo struct{}

func (noopActivityRepo) Create(context.Context, *domain.Activity) error { return nil }
func (noopActivityRepo) Update(context.Context, *domain.Activity) error { return nil }
func (noopActivityRepo) GetByID(context.Context, string) (*domain.Activity, error) {
	return nil, nil
}
func (noopActivityRepo) ListBySession(context.Context, string) ([]*domain.Activity, error) {
	return nil, nil
}

func newTestService() (*Service, *recordingSessionRepo) {
	repo := &recordingSessionRepo{}
	sessions := session.NewService(repo, noopActivityRepo{}, nil, domain.NopLogger{})
	return NewService(sessions), repo
}

func TestStartWork(t *testing.T) {
	service, repo := newTestService()

	created, err := service.StartWork(context.Background(), "")
	if err != nil {
		t.Fatalf("StartWork failed: %v", err)
	}
	if created.Name != "Pomodoro Work Session" {
		t.Errorf("unexpected default name %q", created.Name)
	}
	if created.Type != domain.TypePomodoroWork {
		t.Errorf("expected type POMODORO_WORK, got %v", created.Type)
	}
	if created.Status != domain.StatusActive {
		t.Errorf("expected status ACTIVE, got %v", created.Status)
	}
	if len(repo.created) != 1 {
		t.Errorf("expected one persisted session, got %d", len(repo.created))
	}
}

func TestStartWorkCustomName(t *testing.T) {
	service, _ := newTestService()

	created, err := service.StartWork(context.Background(), "Write report")
	if err != nil {
		t.Fatalf("StartWork failed: %v", err)
	}
	if created.Name != "Write report" {
		t.Errorf("expected custom name preserved, got %q", created.Name)
	}
}

func TestStartBreak(t *testing.T) {
	tests := []struct {
		name     string
		long     bool
		expected string
	}{
		{name: "short break", long: false, expected: "Pomodoro Short Break"},
		{name: "long break", long: true, expected: "Pomodoro Long Break"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestService()
			created, err := service.StartBreak(context.Background(), tt.long)
			if err != nil {
				t.Fatalf("StartBreak failed: %v", err)
			}
			if created.Name != tt.expected {
				t.Errorf("expected name %q, got %q", tt.expected, created.Name)
			}
			if created.Type != domain.TypePomodoroBreak {
				t.Errorf("expected type POMODORO_BREAK, got %v", created.Type)
			}
		})
	}
}

func TestGetDurations(t *testing.T) {
	service, _ := newTestService()

	durations := service.GetDurations()
	if durations.WorkSeconds != 1500 {
		t.Errorf("expected work duration 1500s, got %d", durations.WorkSeconds)
	}
	if durations.BreakSeconds != 300 {
		t.Errorf("expected break duration 300s, got %d", durations.BreakSeconds)
	}
	if durations.LongBreakSeconds != 900 {
		t.Errorf("expected long break duration 900s, got %d", durations.LongBreakSeconds)
	}
}

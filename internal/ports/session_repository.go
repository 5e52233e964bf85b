package ports

import (
	"context"
	"time"

	"github.com/focustrack/focustrack/internal/domain"
)

// SessionRepository persists sessions. Lookups that find nothing return
// (nil, nil); the service layer translates absence into domain errors.
// Implementations must give each mutating call read-modify-write atomicity
// per entity so concurrent lifecycle operations cannot interleave.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	Update(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
	ListByStatus(ctx context.Context, status domain.SessionStatus) ([]*domain.Session, error)
	// MostRecentByStatus returns the most recently started session in the
	// given status, or (nil, nil) when there is none.
	MostRecentByStatus(ctx context.Context, status domain.SessionStatus) (*domain.Session, error)
	// ListByStartTimeRange returns sessions whose start time falls inside
	// [start, end], both bounds inclusive.
	ListByStartTimeRange(ctx context.Context, start, end time.Time) ([]*domain.Session, error)
	// Delete removes a session and, through store-level ownership, all of
	// its activities.
	Delete(ctx context.Context, id string) error
}

// ActivityRepository persists activities. ListBySession orders by start
// time ascending.
type ActivityRepository interface {
	Create(ctx context.Context, activity *domain.Activity) error
	Update(ctx context.Context, activity *domain.Activity) error
	GetByID(ctx context.Context, id string) (*domain.Activity, error)
	ListBySession(ctx context.Context, sessionID string) ([]*domain.Activity, error)
}

package ports

import "context"

// ActivityMonitor is the external collaborator that observes which
// application window currently has focus and feeds samples into a session.
// It has an explicit lifecycle: Start binds it to one session, Stop
// releases it. Starting while already running is an error.
type ActivityMonitor interface {
	Start(ctx context.Context, sessionID string) error
	Stop()
	Active() bool
}

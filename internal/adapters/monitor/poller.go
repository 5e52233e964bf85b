package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/focustrack/focustrack/internal/domain"
	"github.com/focustrack/focustrack/internal/session"
)

// Poller feeds focus samples from a Sampler into one session on a fixed
// interval. It implements the activity monitor lifecycle: Start binds it to
// a session and launches the polling loop, Stop tears it down. State is
// held per poller instance, never process-wide.
type Poller struct {
	sessions *session.Service
	sampler  Sampler
	interval time.Duration
	logger   domain.Logger

	mu        sync.Mutex
	cancel    context.CancelFunc
	done      chan struct{}
	sessionID string
}

func NewPoller(sessions *session.Service, sampler Sampler, interval time.Duration, logger domain.Logger) *Poller {
	return &Poller{
		sessions: sessions,
		sampler:  sampler,
		interval: interval,
		logger:   logger,
	}
}

// Start begins sampling into the given session. It fails when the poller is
// already running; the caller must Stop first.
func (p *Poller) Start(ctx context.Context, sessionID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return fmt.Errorf("monitor already running for session %s", p.sessionID)
	}

	pollCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.sessionID = sessionID
	p.done = make(chan struct{})

	p.logger.Debug(fmt.Sprintf("Starting monitoring for session %s", sessionID))
	go p.run(pollCtx, sessionID, p.done)
	return nil
}

// Stop halts sampling and waits for the polling loop to exit.
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel = nil
	p.sessionID = ""
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	p.logger.Debug("Stopped monitoring")
}

// Active reports whether the poller is currently bound to a session.
func (p *Poller) Active() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

func (p *Poller) run(ctx context.Context, sessionID string, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.pollOnce(ctx, sessionID); err != nil {
				p.logger.Error(fmt.Sprintf("Monitoring sample failed: %v", err))
			}
		}
	}
}

// pollOnce takes one focus sample and appends it as an activity. The
// classifier assigns the category.
func (p *Poller) pollOnce(ctx context.Context, sessionID string) error {
	appName, windowTitle, err := p.sampler.Sample()
	if err != nil {
		return fmt.Errorf("sample focus: %w", err)
	}

	if _, err := p.sessions.AddActivity(ctx, sessionID, appName, windowTitle, ""); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

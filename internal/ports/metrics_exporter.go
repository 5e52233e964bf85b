package ports

import (
	"context"
	"time"
)

// MetricsExporter exports session metrics to an external observability system.
type MetricsExporter interface {
	// ExportSessionSummary exports metrics for a completed session.
	ExportSessionSummary(ctx context.Context, s *SessionSummary) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// SessionSummary contains the duration accounting of a completed session.
type SessionSummary struct {
	SessionID         string
	Name              string
	Type              string
	TotalSeconds      int64
	FocusedSeconds    int64
	DistractedSeconds int64
	StartedAt         time.Time
	EndedAt           time.Time
}

package turso

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/focustrack/focustrack/internal/database"
	"github.com/focustrack/focustrack/internal/domain"
	"github.com/focustrack/focustrack/internal/util"
)

const sessionColumns = `id, name, status, type, started_at, ended_at, total_seconds, focused_seconds, distracted_seconds, created_at`

// readRetries bounds how often a read is repeated when turso drops an idle
// stream mid-query.
const readRetries = 3

// SessionRepository persists sessions in a libsql database.
type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (`+sessionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		session.ID,
		session.Name,
		string(session.Status),
		string(session.Type),
		session.StartedAt.UTC().Format(time.RFC3339),
		util.NullTime(session.EndedAt),
		util.NullInt64(session.TotalSeconds),
		util.NullInt64(session.FocusedSeconds),
		util.NullInt64(session.DistractedSeconds),
		session.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Update(ctx context.Context, session *domain.Session) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE sessions
		SET name = ?, status = ?, type = ?, started_at = ?, ended_at = ?,
		    total_seconds = ?, focused_seconds = ?, distracted_seconds = ?
		WHERE id = ?`,
		session.Name,
		string(session.Status),
		string(session.Type),
		session.StartedAt.UTC().Format(time.RFC3339),
		util.NullTime(session.EndedAt),
		util.NullInt64(session.TotalSeconds),
		util.NullInt64(session.FocusedSeconds),
		util.NullInt64(session.DistractedSeconds),
		session.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	return database.WithRetry(ctx, readRetries, func() (*domain.Session, error) {
		row := r.db.QueryRowContext(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id = ?`, id)
		session, err := scanSession(row)
		if err == sql.ErrNoRows {
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get session: %w", err)
		}
		return session, nil
	})
}

func (r *SessionRepository) List(ctx context.Context) ([]*domain.Session, error) {
	return database.WithRetry(ctx, readRetries, func() ([]*domain.Session, error) {
		rows, err := r.db.QueryContext(ctx, `SELECT `+sessionColumns+` FROM sessions ORDER BY started_at DESC`)
		if err != nil {
			return nil, fmt.Errorf("failed to list sessions: %w", err)
		}
		defer rows.Close()
		return collectSessions(rows)
	})
}

func (r *SessionRepository) ListByStatus(ctx context.Context, status domain.SessionStatus) ([]*domain.Session, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+sessionColumns+` FROM sessions
		WHERE status = ? ORDER BY started_at DESC`, string(status))
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions by status: %w", err)
	}
	defer rows.Close()
	return collectSessions(rows)
}

func (r *SessionRepository) MostRecentByStatus(ctx context.Context, status domain.SessionStatus) (*domain.Session, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+sessionColumns+` FROM sessions
		WHERE status = ? ORDER BY started_at DESC LIMIT 1`, string(status))
	session, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get most recent session: %w", err)
	}
	return session, nil
}

func (r *SessionRepository) ListByStartTimeRange(ctx context.Context, start, end time.Time) ([]*domain.Session, error) {
	return database.WithRetry(ctx, readRetries, func() ([]*domain.Session, error) {
		// RFC3339 UTC strings compare lexicographically in timestamp order.
		rows, err := r.db.QueryContext(ctx, `
			SELECT `+sessionColumns+` FROM sessions
			WHERE started_at >= ? AND started_at <= ?
			ORDER BY started_at ASC`,
			start.UTC().Format(time.RFC3339),
			end.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to list sessions by range: %w", err)
		}
		defer rows.Close()
		return collectSessions(rows)
	})
}

func (r *SessionRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*domain.Session, error) {
	var (
		session                   domain.Session
		status, sessionType       string
		startedAt, createdAt      string
		endedAt                   sql.NullString
		total, focused, distracted sql.NullInt64
	)

	err := row.Scan(
		&session.ID,
		&session.Name,
		&status,
		&sessionType,
		&startedAt,
		&endedAt,
		&total,
		&focused,
		&distracted,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	session.Status = domain.SessionStatus(status)
	session.Type = domain.SessionType(sessionType)
	session.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
	session.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	session.EndedAt = util.NullTimeToPtr(endedAt)
	session.TotalSeconds = util.NullInt64ToPtr(total)
	session.FocusedSeconds = util.NullInt64ToPtr(focused)
	session.DistractedSeconds = util.NullInt64ToPtr(distracted)

	return &session, nil
}

func collectSessions(rows *sql.Rows) ([]*domain.Session, error) {
	var sessions []*domain.Session
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sessions, nil
}

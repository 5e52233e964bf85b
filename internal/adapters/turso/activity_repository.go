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

const activityColumns = `id, session_id, app_name, window_title, category, started_at, ended_at, duration_seconds, created_at`

// ActivityRepository persists activities in a libsql database.
type ActivityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *domain.Activity) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activities (`+activityColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		activity.ID,
		activity.SessionID,
		activity.AppName,
		activity.WindowTitle,
		string(activity.Category),
		activity.StartedAt.UTC().Format(time.RFC3339),
		util.NullTime(activity.EndedAt),
		util.NullInt64(activity.DurationSeconds),
		activity.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to insert activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) Update(ctx context.Context, activity *domain.Activity) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE activities
		SET ended_at = ?, duration_seconds = ?
		WHERE id = ?`,
		util.NullTime(activity.EndedAt),
		util.NullInt64(activity.DurationSeconds),
		activity.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}
	return nil
}

func (r *ActivityRepository) GetByID(ctx context.Context, id string) (*domain.Activity, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+activityColumns+` FROM activities WHERE id = ?`, id)
	activity, err := scanActivity(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	return activity, nil
}

func (r *ActivityRepository) ListBySession(ctx context.Context, sessionID string) ([]*domain.Activity, error) {
	return database.WithRetry(ctx, readRetries, func() ([]*domain.Activity, error) {
		rows, err := r.db.QueryContext(ctx, `
			SELECT `+activityColumns+` FROM activities
			WHERE session_id = ? ORDER BY started_at ASC`, sessionID)
		if err != nil {
			return nil, fmt.Errorf("failed to list activities: %w", err)
		}
		defer rows.Close()

		var activities []*domain.Activity
		for rows.Next() {
			activity, err := scanActivity(rows)
			if err != nil {
				return nil, fmt.Errorf("failed to scan activity: %w", err)
			}
			activities = append(activities, activity)
		}
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return activities, nil
	})
}

func scanActivity(row rowScanner) (*domain.Activity, error) {
	var (
		activity             domain.Activity
		category             string
		startedAt, createdAt string
		endedAt              sql.NullString
		duration             sql.NullInt64
	)

	err := row.Scan(
		&activity.ID,
		&activity.SessionID,
		&activity.AppName,
		&activity.WindowTitle,
		&category,
		&startedAt,
		&endedAt,
		&duration,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	activity.Category = domain.ActivityCategory(category)
	activity.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
	activity.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	activity.EndedAt = util.NullTimeToPtr(endedAt)
	activity.DurationSeconds = util.NullInt64ToPtr(duration)

	return &activity, nil
}

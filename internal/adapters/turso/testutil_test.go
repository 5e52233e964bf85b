package turso

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	_ "github.com/tursodatabase/go-libsql"

	"github.com/focustrack/focustrack/internal/domain"
	"github.com/focustrack/focustrack/internal/migrate"
)

// testDB creates an in-memory SQLite database with all migrations applied.
// Each test gets its own named database so state never leaks between tests.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := sql.Open("libsql", dsn)
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if err := migrate.RunAll(context.Background(), db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func mustCreateSession(t *testing.T, repo *SessionRepository, session *domain.Session) {
	t.Helper()
	if err := repo.Create(context.Background(), session); err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
}

func newSession(id string, startedAt time.Time) *domain.Session {
	return &domain.Session{
		ID:        id,
		Name:      "session " + id,
		Status:    domain.StatusActive,
		Type:      domain.TypeFocus,
		StartedAt: startedAt,
		CreatedAt: startedAt,
	}
}

func int64Ptr(v int64) *int64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

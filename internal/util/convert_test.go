package util

import (
	"database/sql"
	"testing"
	"time"
)

func TestNullInt64Roundtrip(t *testing.T) {
	if got := NullInt64(nil); got.Valid {
		t.Error("expected nil pointer to be null")
	}

	v := int64(42)
	stored := NullInt64(&v)
	if !stored.Valid || stored.Int64 != 42 {
		t.Errorf("unexpected result: %+v", stored)
	}

	back := NullInt64ToPtr(stored)
	if back == nil || *back != 42 {
		t.Errorf("unexpected roundtrip result: %v", back)
	}
	if NullInt64ToPtr(sql.NullInt64{}) != nil {
		t.Error("expected nil for invalid")
	}
}

func TestNullTimeRoundtrip(t *testing.T) {
	if got := NullTime(nil); got.Valid {
		t.Error("expected nil pointer to be null")
	}

	ts := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	stored := NullTime(&ts)
	if !stored.Valid || stored.String != "2026-03-01T09:30:00Z" {
		t.Errorf("unexpected stored value: %+v", stored)
	}

	back := NullTimeToPtr(stored)
	if back == nil || !back.Equal(ts) {
		t.Errorf("unexpected roundtrip result: %v", back)
	}
	if NullTimeToPtr(sql.NullString{}) != nil {
		t.Error("expected nil for invalid")
	}
	if NullTimeToPtr(sql.NullString{String: "not a time", Valid: true}) != nil {
		t.Error("expected nil for unparseable value")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds  int64
		expected string
	}{
		{seconds: 0, expected: "0s"},
		{seconds: 45, expected: "45s"},
		{seconds: 60, expected: "1m0s"},
		{seconds: 300, expected: "5m0s"},
		{seconds: 330, expected: "5m30s"},
		{seconds: 3600, expected: "1h0m"},
		{seconds: 5400, expected: "1h30m"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.seconds); got != tt.expected {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.seconds, got, tt.expected)
		}
	}
}

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2026, 3, 1, 9, 5, 0, 0, time.UTC)
	if got := FormatDateTime(ts); got != "2026-03-01 09:05" {
		t.Errorf("FormatDateTime() = %q", got)
	}
}

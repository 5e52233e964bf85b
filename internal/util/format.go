package util

import (
	"fmt"
	"time"
)

// FormatDuration formats a second count as a compact h/m/s string.
// Examples: 45 -> "45s", 300 -> "5m0s", 5400 -> "1h30m"
func FormatDuration(seconds int64) string {
	d := time.Duration(seconds) * time.Second
	if d < time.Minute {
		return fmt.Sprintf("%ds", seconds)
	}
	if d < time.Hour {
		return fmt.Sprintf("%dm%ds", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%dh%dm", seconds/3600, (seconds%3600)/60)
}

// FormatDateTime formats a time for table output (2006-01-02 15:04).
func FormatDateTime(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}

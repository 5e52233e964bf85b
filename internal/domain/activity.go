package domain

import (
	"fmt"
	"time"
)

// ActivityCategory classifies an activity interval.
type ActivityCategory string

const (
	CategoryProductive  ActivityCategory = "PRODUCTIVE"
	CategoryDistracting ActivityCategory = "DISTRACTING"
	CategoryNeutral     ActivityCategory = "NEUTRAL"
)

// ParseCategory validates a caller-supplied category string. The empty
// string is valid and means "let the classifier decide".
func ParseCategory(s string) (ActivityCategory, error) {
	switch c := ActivityCategory(s); c {
	case "", CategoryProductive, CategoryDistracting, CategoryNeutral:
		return c, nil
	}
	return "", fmt.Errorf("invalid category %q: must be PRODUCTIVE, DISTRACTING or NEUTRAL", s)
}

// Activity is a timed interval of focus on one application window inside
// a session. An activity with a nil EndedAt is "open": it represents the
// current focus. At most one activity per session is open at a time.
type Activity struct {
	ID              string
	SessionID       string
	AppName         string
	WindowTitle     string
	Category        ActivityCategory
	StartedAt       time.Time
	EndedAt         *time.Time
	DurationSeconds *int64
	CreatedAt       time.Time
}

// Open reports whether the activity has no end time yet.
func (a *Activity) Open() bool {
	return a.EndedAt == nil
}

// Close stamps the end time and recomputes the derived duration. Every
// end-time write goes through here so the duration never drifts.
func (a *Activity) Close(now time.Time) {
	end := now
	a.EndedAt = &end
	duration := int64(end.Sub(a.StartedAt).Seconds())
	a.DurationSeconds = &duration
}

// SummarizeActivities partitions activity durations into the three session
// buckets: total counts every closed activity, focused only Productive ones,
// distracted only Distracting ones. Neutral time lands in total alone.
// Open activities (nil duration) do not contribute.
func SummarizeActivities(activities []*Activity) (total, focused, distracted int64) {
	for _, a := range activities {
		if a.DurationSeconds == nil {
			continue
		}
		total += *a.DurationSeconds
		switch a.Category {
		case CategoryProductive:
			focused += *a.DurationSeconds
		case CategoryDistracting:
			distracted += *a.DurationSeconds
		}
	}
	return total, focused, distracted
}

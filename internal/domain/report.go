package domain

import (
	"math"
	"sort"
	"time"
)

const (
	topAppsLimit        = 10
	topCategorizedLimit = 5
)

// AppUsage is one entry in a ranked application list.
type AppUsage struct {
	AppName         string
	DurationSeconds int64
	Percentage      float64
}

// Report holds derived productivity statistics over a time window. It is a
// computation result, not a persisted entity.
type Report struct {
	GeneratedAt            time.Time
	TotalFocusSeconds      int64
	TotalDistractedSeconds int64
	TotalNeutralSeconds    int64
	TotalSeconds           int64
	ProductivityScore      float64
	DistractionScore       float64
	TopApps                []AppUsage
	TopDistractingApps     []AppUsage
	TopProductiveApps      []AppUsage
	ConsistencyRating      int64
}

// BuildReport computes a productivity report from a snapshot of sessions and
// their activities. Only activities with a non-nil duration contribute to
// time totals. All divisions are zero-safe: scores and percentages are 0
// when total time is 0, and an empty snapshot yields an all-zero report.
func BuildReport(now time.Time, sessions []*Session, activities []*Activity) *Report {
	report := &Report{GeneratedAt: now}

	for _, a := range activities {
		if a.DurationSeconds == nil {
			continue
		}
		switch a.Category {
		case CategoryProductive:
			report.TotalFocusSeconds += *a.DurationSeconds
		case CategoryDistracting:
			report.TotalDistractedSeconds += *a.DurationSeconds
		case CategoryNeutral:
			report.TotalNeutralSeconds += *a.DurationSeconds
		}
	}
	report.TotalSeconds = report.TotalFocusSeconds + report.TotalDistractedSeconds + report.TotalNeutralSeconds

	if report.TotalSeconds > 0 {
		report.ProductivityScore = roundScore(float64(report.TotalFocusSeconds) / float64(report.TotalSeconds) * 100)
		report.DistractionScore = roundScore(float64(report.TotalDistractedSeconds) / float64(report.TotalSeconds) * 100)
	}

	report.TopApps = rankApps(activities, report.TotalSeconds, topAppsLimit, nil)
	report.TopDistractingApps = rankApps(activities, report.TotalSeconds, topCategorizedLimit, categoryFilter(CategoryDistracting))
	report.TopProductiveApps = rankApps(activities, report.TotalSeconds, topCategorizedLimit, categoryFilter(CategoryProductive))

	report.ConsistencyRating = consistencyRating(sessions)

	return report
}

func categoryFilter(c ActivityCategory) func(*Activity) bool {
	return func(a *Activity) bool { return a.Category == c }
}

// rankApps groups activity durations by application name, ranks descending
// by duration and keeps the first limit entries. The sort is stable so apps
// with equal durations keep their encounter order.
func rankApps(activities []*Activity, totalSeconds int64, limit int, include func(*Activity) bool) []AppUsage {
	totals := make(map[string]int64)
	order := make([]string, 0)

	for _, a := range activities {
		if a.DurationSeconds == nil {
			continue
		}
		if include != nil && !include(a) {
			continue
		}
		if _, seen := totals[a.AppName]; !seen {
			order = append(order, a.AppName)
		}
		totals[a.AppName] += *a.DurationSeconds
	}

	ranked := make([]AppUsage, 0, len(order))
	for _, app := range order {
		usage := AppUsage{AppName: app, DurationSeconds: totals[app]}
		if totalSeconds > 0 {
			usage.Percentage = float64(totals[app]) / float64(totalSeconds) * 100
		}
		ranked = append(ranked, usage)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DurationSeconds > ranked[j].DurationSeconds
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// consistencyRating is the rounded average number of sessions per calendar
// day, counted over days that had at least one session. It measures session
// frequency, not activity volume.
func consistencyRating(sessions []*Session) int64 {
	perDay := make(map[string]int64)
	for _, s := range sessions {
		perDay[s.StartedAt.UTC().Format("2006-01-02")]++
	}
	if len(perDay) == 0 {
		return 0
	}

	var total int64
	for _, n := range perDay {
		total += n
	}
	return int64(math.Round(float64(total) / float64(len(perDay))))
}

func roundScore(v float64) float64 {
	return math.Round(v*100) / 100
}

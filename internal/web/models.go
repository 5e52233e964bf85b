package web

import (
	"time"

	"github.com/focustrack/focustrack/internal/domain"
)

type sessionResponse struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Status            string     `json:"status"`
	Type              string     `json:"type"`
	StartTime         time.Time  `json:"startTime"`
	EndTime           *time.Time `json:"endTime,omitempty"`
	TotalSeconds      *int64     `json:"totalDurationSeconds,omitempty"`
	FocusedSeconds    *int64     `json:"focusedDurationSeconds,omitempty"`
	DistractedSeconds *int64     `json:"distractedDurationSeconds,omitempty"`
}

func toSessionResponse(s *domain.Session) sessionResponse {
	return sessionResponse{
		ID:                s.ID,
		Name:              s.Name,
		Status:            string(s.Status),
		Type:              string(s.Type),
		StartTime:         s.StartedAt,
		EndTime:           s.EndedAt,
		TotalSeconds:      s.TotalSeconds,
		FocusedSeconds:    s.FocusedSeconds,
		DistractedSeconds: s.DistractedSeconds,
	}
}

type activityResponse struct {
	ID              string     `json:"id"`
	SessionID       string     `json:"sessionId"`
	AppName         string     `json:"appName"`
	WindowTitle     string     `json:"windowTitle"`
	Category        string     `json:"category"`
	StartTime       time.Time  `json:"startTime"`
	EndTime         *time.Time `json:"endTime,omitempty"`
	DurationSeconds *int64     `json:"durationSeconds,omitempty"`
}

func toActivityResponse(a *domain.Activity) activityResponse {
	return activityResponse{
		ID:              a.ID,
		SessionID:       a.SessionID,
		AppName:         a.AppName,
		WindowTitle:     a.WindowTitle,
		Category:        string(a.Category),
		StartTime:       a.StartedAt,
		EndTime:         a.EndedAt,
		DurationSeconds: a.DurationSeconds,
	}
}

type appUsageResponse struct {
	AppName         string  `json:"appName"`
	DurationSeconds int64   `json:"durationSeconds"`
	Percentage      float64 `json:"percentage"`
}

type reportResponse struct {
	ReportDate             time.Time          `json:"reportDate"`
	TotalFocusSeconds      int64              `json:"totalFocusTimeSeconds"`
	TotalDistractedSeconds int64              `json:"totalDistractedTimeSeconds"`
	TotalNeutralSeconds    int64              `json:"totalNeutralTimeSeconds"`
	TotalSeconds           int64              `json:"totalTimeSeconds"`
	ProductivityScore      float64            `json:"productivityScore"`
	DistractionScore       float64            `json:"distractionScore"`
	TopApps                []appUsageResponse `json:"topApps"`
	TopDistractingApps     []appUsageResponse `json:"topDistractingApps"`
	TopProductiveApps      []appUsageResponse `json:"topProductiveApps"`
	ConsistencyRating      int64              `json:"consistencyRating"`
}

func toReportResponse(r *domain.Report) reportResponse {
	return reportResponse{
		ReportDate:             r.GeneratedAt,
		TotalFocusSeconds:      r.TotalFocusSeconds,
		TotalDistractedSeconds: r.TotalDistractedSeconds,
		TotalNeutralSeconds:    r.TotalNeutralSeconds,
		TotalSeconds:           r.TotalSeconds,
		ProductivityScore:      r.ProductivityScore,
		DistractionScore:       r.DistractionScore,
		TopApps:                toAppUsageResponses(r.TopApps),
		TopDistractingApps:     toAppUsageResponses(r.TopDistractingApps),
		TopProductiveApps:      toAppUsageResponses(r.TopProductiveApps),
		ConsistencyRating:      r.ConsistencyRating,
	}
}

func toAppUsageResponses(apps []domain.AppUsage) []appUsageResponse {
	out := make([]appUsageResponse, len(apps))
	for i, app := range apps {
		out[i] = appUsageResponse{
			AppName:         app.AppName,
			DurationSeconds: app.DurationSeconds,
			Percentage:      app.Percentage,
		}
	}
	return out
}

type createSessionRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type activityRequest struct {
	AppName     string `json:"appName"`
	WindowTitle string `json:"windowTitle"`
	Category    string `json:"category"`
}

type pomodoroStartRequest struct {
	Name string `json:"name"`
}

type pomodoroBreakRequest struct {
	LongBreak bool `json:"longBreak"`
}

type durationsResponse struct {
	WorkDuration      int64 `json:"workDuration"`
	BreakDuration     int64 `json:"breakDuration"`
	LongBreakDuration int64 `json:"longBreakDuration"`
}

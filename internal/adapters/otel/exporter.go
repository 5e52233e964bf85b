package otel

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/focustrack/focustrack/internal/ports"
)

const (
	serviceName    = "focustrack"
	serviceVersion = "1.0.0"
)

// Exporter exports session metrics to an OTEL Collector.
type Exporter struct {
	provider        *sdkmetric.MeterProvider
	meter           metric.Meter
	sessionsTotal   metric.Int64Counter
	focusedSeconds  metric.Int64Counter
	distractedTotal metric.Int64Counter
	trackedSeconds  metric.Int64Counter
	sessionDuration metric.Float64Histogram
}

// NewExporter creates a new OTEL metrics exporter.
func NewExporter(ctx context.Context, cfg Config) (*Exporter, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, fmt.Errorf("OTEL exporter is disabled or endpoint not configured")
	}

	opts := []otlpmetricgrpc.Option{
		otlpmetricgrpc.WithEndpoint(cfg.Endpoint),
	}
	if cfg.Insecure {
		opts = append(opts, otlpmetricgrpc.WithDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}

	exp, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating OTLP exporter: %w", err)
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(serviceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp)),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(provider)

	meter := provider.Meter(serviceName)

	sessionsTotal, err := meter.Int64Counter(
		"focustrack_sessions_total",
		metric.WithDescription("Total completed sessions"),
		metric.WithUnit("{session}"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating sessions counter: %w", err)
	}

	trackedSeconds, err := meter.Int64Counter(
		"focustrack_tracked_seconds_total",
		metric.WithDescription("Total tracked activity time"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating tracked time counter: %w", err)
	}

	focusedSeconds, err := meter.Int64Counter(
		"focustrack_focused_seconds_total",
		metric.WithDescription("Total time spent in productive activities"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating focused time counter: %w", err)
	}

	distractedTotal, err := meter.Int64Counter(
		"focustrack_distracted_seconds_total",
		metric.WithDescription("Total time spent in distracting activities"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating distracted time counter: %w", err)
	}

	sessionDuration, err := meter.Float64Histogram(
		"focustrack_session_duration_seconds",
		metric.WithDescription("Wall-clock duration of completed sessions"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}

	return &Exporter{
		provider:        provider,
		meter:           meter,
		sessionsTotal:   sessionsTotal,
		trackedSeconds:  trackedSeconds,
		focusedSeconds:  focusedSeconds,
		distractedTotal: distractedTotal,
		sessionDuration: sessionDuration,
	}, nil
}

// ExportSessionSummary records metrics for a completed session.
func (e *Exporter) ExportSessionSummary(ctx context.Context, s *ports.SessionSummary) error {
	attrs := metric.WithAttributes(
		attribute.String("session.type", s.Type),
	)

	e.sessionsTotal.Add(ctx, 1, attrs)
	e.trackedSeconds.Add(ctx, s.TotalSeconds, attrs)
	e.focusedSeconds.Add(ctx, s.FocusedSeconds, attrs)
	e.distractedTotal.Add(ctx, s.DistractedSeconds, attrs)
	e.sessionDuration.Record(ctx, s.EndedAt.Sub(s.StartedAt).Seconds(), attrs)

	return nil
}

// Close shuts down the meter provider and flushes pending metrics.
func (e *Exporter) Close(ctx context.Context) error {
	return e.provider.Shutdown(ctx)
}

package valueobject

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
)

const meterName = "github.com/shandysiswandi/govo/pkg/valueobject"

var noopMetrics = newMetrics(metricnoop.NewMeterProvider().Meter(meterName))

type metrics struct {
	constructions metric.Int64Counter
	violations    metric.Int64Counter
}

func newMetrics(m metric.Meter) *metrics {
	constructions, err := m.Int64Counter("valueobject.constructions",
		metric.WithDescription("Value object constructions by result."),
		metric.WithUnit("{construction}"),
	)
	if err != nil || constructions == nil {
		slog.Warn("valueobject: create constructions counter", "error", err)
		constructions = metricnoop.Int64Counter{}
	}

	violations, err := m.Int64Counter("valueobject.violations",
		metric.WithDescription("Violations reported by failed value object constructions."),
		metric.WithUnit("{violation}"),
	)
	if err != nil || violations == nil {
		slog.Warn("valueobject: create violations counter", "error", err)
		violations = metricnoop.Int64Counter{}
	}

	return &metrics{constructions: constructions, violations: violations}
}

func (m *metrics) record(name string, violations int) {
	ctx := context.Background()

	result := "valid"
	if violations > 0 {
		result = "invalid"
	}

	m.constructions.Add(ctx, 1, metric.WithAttributes(
		attribute.String("record", name),
		attribute.String("result", result),
	))

	if violations > 0 {
		m.violations.Add(ctx, int64(violations), metric.WithAttributes(
			attribute.String("record", name),
		))
	}
}

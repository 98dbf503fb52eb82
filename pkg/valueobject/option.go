package valueobject

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/shandysiswandi/govo/pkg/constraint"
)

// AfterValidationFunc runs after the per-field checks of every construction,
// valid or not. It receives the raw input parameters and an addError
// callback that appends a violation to a field.
type AfterValidationFunc func(params map[string]any, addError func(field, message string))

type options struct {
	name            string
	engine          constraint.Engine
	logger          *slog.Logger
	metrics         *metrics
	afterValidation AfterValidationFunc
}

// Option configures a single construction.
type Option func(*options)

// WithName names the record type in logs and metrics.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithEngine replaces the default go-playground engine.
func WithEngine(e constraint.Engine) Option {
	return func(o *options) {
		if e != nil {
			o.engine = e
		}
	}
}

// WithLogger sets the logger for failed constructions. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMeter records construction and violation counters on m. The
// instruments are created once, when the option is built.
func WithMeter(m metric.Meter) Option {
	mt := newMetrics(m)
	return func(o *options) {
		o.metrics = mt
	}
}

// WithAfterValidation sets the cross-field validation hook.
func WithAfterValidation(fn AfterValidationFunc) Option {
	return func(o *options) {
		o.afterValidation = fn
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		logger:  slog.Default(),
		metrics: noopMetrics,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

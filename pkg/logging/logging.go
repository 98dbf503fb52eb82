// Package logging builds the slog logger used around value object
// construction: JSON output with short keys, masking of sensitive parameter
// names such as passwords, and an optional OpenTelemetry log bridge.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"github.com/shandysiswandi/govo/pkg/config"
)

// DefaultMaskFields are masked when Config.MaskFields is empty.
var DefaultMaskFields = []string{"password", "confirmPassword", "secret", "token"}

// Config drives logger construction.
type Config struct {
	// ServiceName is added to every record as "service".
	ServiceName string
	// Level is the minimum level written.
	Level slog.Level
	// AddSource adds a "file" attribute relative to the module root.
	AddSource bool
	// MaskFields lists attribute keys whose values are replaced by "***".
	MaskFields []string
	// Writer receives JSON output. Defaults to os.Stdout.
	Writer io.Writer
	// LoggerProvider, when set, also sends records to OpenTelemetry.
	LoggerProvider *sdklog.LoggerProvider
}

// FromConfig reads logging.service, logging.level, logging.source and
// logging.mask_fields.
func FromConfig(c config.Config) (Config, error) {
	cfg := Config{
		ServiceName: c.GetString("logging.service"),
		AddSource:   c.GetBool("logging.source"),
		MaskFields:  c.GetArray("logging.mask_fields"),
	}

	if lvl := c.GetString("logging.level"); lvl != "" {
		if err := cfg.Level.UnmarshalText([]byte(lvl)); err != nil {
			return Config{}, fmt.Errorf("logging.level: %w", err)
		}
	}

	return cfg, nil
}

// New builds a logger from cfg.
func New(cfg Config) *slog.Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	maskFields := cfg.MaskFields
	if len(maskFields) == 0 {
		maskFields = DefaultMaskFields
	}

	jsonHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       cfg.Level,
		AddSource:   cfg.AddSource,
		ReplaceAttr: replaceAttr,
	})

	var handler slog.Handler = jsonHandler
	if cfg.LoggerProvider != nil {
		handler = &multiHandler{handlers: []slog.Handler{
			jsonHandler,
			otelslog.NewHandler(cfg.ServiceName, otelslog.WithLoggerProvider(cfg.LoggerProvider)),
		}}
	}

	handler = NewMaskHandler(handler, maskFields...)
	if cfg.ServiceName != "" {
		handler = handler.WithAttrs([]slog.Attr{slog.String("service", cfg.ServiceName)})
	}

	return slog.New(handler)
}

func replaceAttr(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		a.Key = "ts"
	case slog.LevelKey:
		a.Key = "severity"
	case slog.SourceKey:
		src, ok := a.Value.Any().(*slog.Source)
		if !ok {
			return a
		}
		for _, root := range []string{"/pkg/", "/internal/"} {
			if _, rel, found := strings.Cut(src.File, root); found {
				return slog.Attr{
					Key:   "file",
					Value: slog.StringValue(fmt.Sprintf("%s:%d", filepath.Join(strings.Trim(root, "/"), rel), src.Line)),
				}
			}
		}
		return slog.Attr{}
	}
	return a
}

type multiHandler struct {
	handlers []slog.Handler
}

func (m *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range m.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (m *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	var firstErr error
	for _, handler := range m.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		if err := handler.Handle(ctx, record.Clone()); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, 0, len(m.handlers))
	for _, handler := range m.handlers {
		handlers = append(handlers, handler.WithAttrs(attrs))
	}
	return &multiHandler{handlers: handlers}
}

func (m *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, 0, len(m.handlers))
	for _, handler := range m.handlers {
		handlers = append(handlers, handler.WithGroup(name))
	}
	return &multiHandler{handlers: handlers}
}

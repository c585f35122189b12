package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format selects the logger output encoding.
type Format string

const (
	// FormatJSON emits structured records for log aggregation.
	FormatJSON Format = "json"
	// FormatText emits human-readable records for local development.
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) { c.level = l }
}

// WithFormat sets the output encoding. An unknown format panics so a
// misconfigured process fails at startup rather than logging garbage.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithOutput sets the output destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithHandlerOptions passes raw slog handler options through. Nil is ignored.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(c *config) {
		if opts != nil {
			c.handlerOptions = opts
		}
	}
}

// WithAttr adds static attributes stamped onto every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithContextExtractors registers functions that pull dynamic attributes
// from the context at log time. Nil extractors are filtered out.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithContextValue registers an extractor that copies a context value onto
// every record under the given attribute name.
func WithContextValue(name string, key any) Option {
	return func(c *config) {
		if name == "" || key == nil {
			return
		}
		c.extractors = append(c.extractors, func(ctx context.Context) (slog.Attr, bool) {
			if v := ctx.Value(key); v != nil {
				return slog.Any(name, v), true
			}
			return slog.Attr{}, false
		})
	}
}

// WithDevelopment selects text output at debug level and stamps service
// and environment attributes.
func WithDevelopment(service string) Option {
	return environmentOption(service, "development", slog.LevelDebug, FormatText)
}

// WithStaging selects JSON output at info level for the staging environment.
func WithStaging(service string) Option {
	return environmentOption(service, "staging", slog.LevelInfo, FormatJSON)
}

// WithProduction selects JSON output at info level for production.
func WithProduction(service string) Option {
	return environmentOption(service, "production", slog.LevelInfo, FormatJSON)
}

// WithEnvironment dispatches to the matching environment preset. Unknown
// environment names fall back to development.
func WithEnvironment(env string, service string) Option {
	return func(c *config) {
		switch env {
		case "production", "prod":
			WithProduction(service)(c)
		case "staging", "stage":
			WithStaging(service)(c)
		default:
			WithDevelopment(service)(c)
		}
	}
}

func environmentOption(service, env string, level slog.Level, format Format) Option {
	return func(c *config) {
		if service == "" {
			return
		}
		c.level = level
		c.format = format
		if c.output == nil {
			c.output = os.Stdout
		}
		c.attrs = append(c.attrs,
			slog.String("service", service),
			slog.String("env", env),
		)
	}
}

// SetAsDefault installs the logger as slog's process-wide default.
func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

type config struct {
	level          slog.Level
	format         Format
	output         io.Writer
	attrs          []slog.Attr
	handlerOptions *slog.HandlerOptions
	extractors     []ContextExtractor
}

func defaultConfig() *config {
	return &config{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
}

// New creates a configured slog.Logger. The handler is wrapped so
// registered context extractors run on every record.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	handlerOpts := cfg.handlerOptions
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{Level: cfg.level}
	}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(cfg.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(cfg.output, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(NewContextHandler(handler, cfg.extractors...))
}

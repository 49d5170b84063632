package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig configures the Sentry side of NewWithSentry. The env tags
// line up with the config loader, so the zero value plus environment
// variables is the whole setup.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	// MinLevel is the lowest level forwarded to Sentry as logs. Errors
	// always create issues regardless.
	MinLevel slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"WARN"`
}

// NewWithSentry builds a logger fanning out to the locally configured
// handler and Sentry. An empty DSN or a failed Sentry init degrades to the
// local handler alone, so the same construction path serves development and
// production.
func NewWithSentry(cfg SentryConfig, opts ...Option) *slog.Logger {
	local := defaultConfig()
	for _, opt := range opts {
		opt(local)
	}

	if cfg.DSN == "" {
		return slog.New(NewLogHandlerDecorator(local.baseHandler(), local.extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		log := slog.New(NewLogHandlerDecorator(local.baseHandler(), local.extractors...))
		log.Error("sentry init failed", Error(err))
		return log
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		// Errors open issues; lower levels are kept as searchable logs.
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	combined := newMultiHandler(local.baseHandler(), sentryHandler)
	return slog.New(NewLogHandlerDecorator(combined, local.extractors...))
}

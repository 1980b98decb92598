package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig holds Sentry integration settings.
type SentryConfig struct {
	DSN         string `yaml:"dsn" env:"SENTRY_DSN"`
	Environment string `yaml:"environment" env:"SENTRY_ENVIRONMENT"`
	// MinLevel selects what is stored in Sentry: slog.LevelWarn keeps
	// warnings and errors, slog.LevelError keeps errors only. Errors always
	// create issues.
	MinLevel slog.Level `yaml:"-"`
}

// NewWithSentry creates a logger that writes to stderr and Sentry.
// Without a DSN, or when Sentry fails to start, it writes to stderr only.
func NewWithSentry(cfg SentryConfig, level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	if cfg.DSN == "" {
		return New(level, extractors...)
	}

	stderr := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})

	env := cfg.Environment
	if env == "" {
		env = "production"
	}
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: env,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stderr).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewLogHandlerDecorator(stderr, extractors...))
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel >= slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}
	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return slog.New(NewLogHandlerDecorator(fanout{stderr, sentryHandler}, extractors...))
}

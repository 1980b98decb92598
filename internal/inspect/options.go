package inspect

import (
	"log/slog"
	"time"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for requests and bridge diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithChecks adds readiness checks.
func WithChecks(checks Checks) Option {
	return func(s *Server) {
		for name, check := range checks {
			s.checks[name] = check
		}
	}
}

// WithHealthTimeout bounds readiness checks.
// Default: 5s.
func WithHealthTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.healthTimeout = d
		}
	}
}

// WithShutdownTimeout bounds graceful shutdown in Run.
// Default: 30s.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

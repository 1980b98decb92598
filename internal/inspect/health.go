package inspect

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

// CheckFunc reports whether a dependency of the inspector is usable.
type CheckFunc func(ctx context.Context) error

// Checks maps check names to their functions.
type Checks map[string]CheckFunc

// HealthResponse is the JSON body of the health endpoints.
type HealthResponse struct {
	Checks map[string]HealthCheck `json:"checks,omitempty"`
	Status string                 `json:"status"`
}

// HealthCheck is the result of a single check.
type HealthCheck struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func livenessHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if wantsJSON(r) {
			writeJSON(w, http.StatusOK, &HealthResponse{Status: StatusHealthy})
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

func readinessHandler(checks Checks, timeout time.Duration, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := runChecks(r.Context(), checks, timeout, log)

		status := http.StatusOK
		if resp.Status == StatusUnhealthy {
			status = http.StatusServiceUnavailable
		}

		if wantsJSON(r) {
			writeJSON(w, status, resp)
			return
		}
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte("OK"))
		} else {
			_, _ = w.Write([]byte("Service Unavailable"))
		}
	}
}

func wantsJSON(r *http.Request) bool {
	if r.URL.Query().Get("format") == "json" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// runChecks executes all checks in parallel under a shared timeout.
func runChecks(ctx context.Context, checks Checks, timeout time.Duration, log *slog.Logger) *HealthResponse {
	if len(checks) == 0 {
		return &HealthResponse{Status: StatusHealthy}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]HealthCheck, len(checks))
		failed  bool
	)

	for name, check := range checks {
		wg.Go(func() {
			result := HealthCheck{Status: StatusHealthy}
			if err := check(ctx); err != nil {
				result = HealthCheck{Status: StatusUnhealthy, Error: err.Error()}
				log.WarnContext(ctx, "health check failed",
					slog.String("check", name),
					slog.String("error", err.Error()),
				)
			}

			mu.Lock()
			defer mu.Unlock()
			results[name] = result
			failed = failed || result.Status == StatusUnhealthy
		})
	}
	wg.Wait()

	status := StatusHealthy
	if failed {
		status = StatusUnhealthy
	}
	return &HealthResponse{Status: status, Checks: results}
}

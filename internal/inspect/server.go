package inspect

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/facesbridge/pkg/config"
	"github.com/dmitrymomot/facesbridge/pkg/logger"
	"github.com/dmitrymomot/facesbridge/pkg/portlet"
)

// Server serves URL analyses over HTTP.
type Server struct {
	analyzer        *Analyzer
	logger          *slog.Logger
	checks          Checks
	healthTimeout   time.Duration
	shutdownTimeout time.Duration
}

// NewServer creates a Server backed by analyzer. Readiness always checks
// that the reference portal renders URLs ("portal") and that the
// configuration is valid ("config").
func NewServer(analyzer *Analyzer, opts ...Option) *Server {
	s := &Server{
		analyzer:        analyzer,
		logger:          logger.NewNope(),
		healthTimeout:   5 * time.Second,
		shutdownTimeout: 30 * time.Second,
		checks: Checks{
			"portal": portalCheck,
			"config": configCheck(analyzer.cfg),
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the HTTP routes of the inspector.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(middleware.CleanPath)
	r.Use(recoverer(s.logger))

	r.Get("/analyze", s.handleAnalyze)
	r.Get("/health/live", livenessHandler())
	r.Get("/health/ready", readinessHandler(s.checks, s.healthTimeout, s.logger))

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	return r
}

// Run listens on addr and serves until ctx is done, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", slog.String("address", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("shutdown completed with errors", slog.String("error", err.Error()))
		return err
	}
	s.logger.Info("shutdown completed")
	return nil
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("url") {
		writeError(w, http.StatusBadRequest, ErrMissingURL.Error())
		return
	}

	req := Request{
		URL:           q.Get("url"),
		CurrentViewID: q.Get("view"),
		ContextPath:   q.Get("context"),
		Kind:          q.Get("kind"),
		PortletID:     q.Get("portlet"),
		BaseURL:       q.Get("base"),
	}

	var err error
	if req.Public, err = ParseParams(q["public"]); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Private, err = ParseParams(q["private"]); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if v := q.Get("secure"); v != "" {
		if !portlet.IsBooleanToken(v) {
			writeError(w, http.StatusBadRequest, ErrInvalidBool.Error())
			return
		}
		req.Secure = portlet.ParseBool(v)
	}

	report, err := s.analyzer.WithLogger(s.logger).Analyze(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, AnalyzeResponse{ID: RequestID(r.Context()), Report: report})
}

func portalCheck(context.Context) error {
	u := portlet.NewPortal(portlet.WithPortletID("health")).CreateRenderURL()
	u.SetParameter("probe", []string{"1"})
	if u.String() == "" {
		return errors.New("portal rendered an empty URL")
	}
	return nil
}

func configCheck(cfg config.Config) CheckFunc {
	return func(context.Context) error {
		return cfg.Validate()
	}
}

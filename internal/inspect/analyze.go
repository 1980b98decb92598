package inspect

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/facesbridge/pkg/bridgeurl"
	"github.com/dmitrymomot/facesbridge/pkg/config"
	"github.com/dmitrymomot/facesbridge/pkg/logger"
	"github.com/dmitrymomot/facesbridge/pkg/portlet"
)

// Request describes one URL to analyze and the portlet request it is
// evaluated in.
type Request struct {
	Public        map[string][]string `json:"public,omitempty"`
	Private       map[string][]string `json:"private,omitempty"`
	URL           string              `json:"url"`
	CurrentViewID string              `json:"view,omitempty"`
	ContextPath   string              `json:"context,omitempty"`
	Kind          string              `json:"kind,omitempty"`
	PortletID     string              `json:"portlet,omitempty"`
	BaseURL       string              `json:"base,omitempty"`
	Secure        bool                `json:"secure,omitempty"`
}

// AnalyzeResponse is the JSON body of a successful analysis.
type AnalyzeResponse struct {
	ID     string           `json:"id"`
	Report bridgeurl.Report `json:"report"`
}

// Analyzer evaluates Requests with a fixed configuration.
type Analyzer struct {
	cfg      config.Config
	resolver bridgeurl.ViewResolver
	logger   *slog.Logger
}

// NewAnalyzer creates an Analyzer. resolver may be nil.
func NewAnalyzer(cfg config.Config, resolver bridgeurl.ViewResolver, log *slog.Logger) *Analyzer {
	return &Analyzer{cfg: cfg, resolver: resolver, logger: log}
}

// WithLogger returns a copy of a that logs to l.
func (a *Analyzer) WithLogger(l *slog.Logger) *Analyzer {
	c := *a
	c.logger = l
	return &c
}

// Analyze builds the URL described by req and reports how the bridge sees
// it. Diagnostics are written to the Analyzer's logger with ctx, which also
// carries the portlet id as window id.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (bridgeurl.Report, error) {
	kind := portlet.PhaseRender
	if req.Kind != "" {
		k, err := portlet.ParsePhase(strings.ToLower(req.Kind))
		if err != nil {
			return bridgeurl.Report{}, fmt.Errorf("%w: %q", ErrInvalidKind, req.Kind)
		}
		kind = k
	}

	portal := portlet.NewPortal(
		portlet.WithPortletID(req.PortletID),
		portlet.WithBaseURL(req.BaseURL),
	)

	opts := []bridgeurl.Option{
		bridgeurl.WithViewStateParam(a.cfg.ViewStateParam),
		bridgeurl.WithContext(logger.WithWindowID(ctx, portal.PortletID())),
	}
	if a.logger != nil {
		opts = append(opts, bridgeurl.WithLogger(a.logger))
	}
	if a.resolver != nil {
		opts = append(opts, bridgeurl.WithViewResolver(a.resolver))
	}

	f := bridgeurl.NewFactory(
		portlet.NewRequest(req.ContextPath, req.Public, req.Private),
		portal,
		a.cfg,
		opts...,
	)

	u := f.New(kind, req.URL, req.CurrentViewID, bridgeurl.WithSecure(req.Secure))
	return bridgeurl.Describe(u), nil
}

// ParseParams turns "name=value" pairs into a parameter map. Repeated names
// collect their values in order.
func ParseParams(pairs []string) (map[string][]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	params := make(map[string][]string, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q", ErrInvalidParam, pair)
		}
		params[name] = append(params[name], value)
	}
	return params, nil
}

package facesbridge

import (
	"io/fs"
	"log/slog"

	"github.com/dmitrymomot/facesbridge/pkg/bridgeurl"
	"github.com/dmitrymomot/facesbridge/pkg/config"
	"github.com/dmitrymomot/facesbridge/pkg/logger"
	"github.com/dmitrymomot/facesbridge/pkg/portlet"
	"github.com/dmitrymomot/facesbridge/pkg/viewmapping"
)

// Type aliases - public API
type (
	// URL is a template URL bound to one portlet request.
	URL = bridgeurl.URL

	// Factory creates URLs for one portlet request.
	Factory = bridgeurl.Factory

	// Report describes how the bridge sees a URL.
	Report = bridgeurl.Report

	// Config holds the bridge settings.
	Config = config.Config

	// Container creates portal URLs.
	Container = portlet.Container

	// Request is the portlet request URLs are built for.
	Request = portlet.Request

	// Phase is a portlet lifecycle phase.
	Phase = portlet.Phase

	// ContextExtractor extracts a slog attribute from context.
	ContextExtractor = logger.ContextExtractor
)

// Phases.
const (
	PhaseUnknown  = portlet.PhaseUnknown
	PhaseAction   = portlet.PhaseAction
	PhaseRender   = portlet.PhaseRender
	PhaseResource = portlet.PhaseResource
)

// Reserved parameter names.
const (
	PortletModeParam = bridgeurl.PortletModeParam
	WindowStateParam = bridgeurl.WindowStateParam
	SecureParam      = bridgeurl.SecureParam
)

type options struct {
	logger    *slog.Logger
	viewFS    fs.FS
	preserved map[string][]string
}

// Option configures New.
type Option func(*options)

// WithLogger sets the logger for bridge diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithViewFS restricts extension mappings to views that exist in fsys.
func WithViewFS(fsys fs.FS) Option {
	return func(o *options) {
		o.viewFS = fsys
	}
}

// WithPreservedActionParams names action parameters that are never merged
// into render URLs.
func WithPreservedActionParams(params map[string][]string) Option {
	return func(o *options) {
		o.preserved = params
	}
}

// New creates a Factory for req wired with the view mappings, view-state
// parameter and view-id parameter names of cfg.
func New(cfg Config, req Request, container Container, opts ...Option) (*Factory, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	mappingOpts := []viewmapping.Option{
		viewmapping.WithMappings(cfg.ServletMappings...),
		viewmapping.WithDefaultSuffixes(cfg.DefaultSuffixes...),
	}
	if o.viewFS != nil {
		mappingOpts = append(mappingOpts, viewmapping.WithFS(o.viewFS))
	}
	resolver, err := viewmapping.New(mappingOpts...)
	if err != nil {
		return nil, err
	}

	factoryOpts := []bridgeurl.Option{
		bridgeurl.WithViewResolver(resolver),
		bridgeurl.WithViewStateParam(cfg.ViewStateParam),
	}
	if o.logger != nil {
		factoryOpts = append(factoryOpts, bridgeurl.WithLogger(o.logger))
	}
	if o.preserved != nil {
		factoryOpts = append(factoryOpts, bridgeurl.WithPreservedActionParams(o.preserved))
	}

	return bridgeurl.NewFactory(req, container, cfg, factoryOpts...), nil
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return config.Default()
}

// LoadConfig reads path (optional) and BRIDGE_ environment variables over
// the defaults.
func LoadConfig(path string) (Config, error) {
	return config.Load(path, nil)
}

// NewRequest creates a portlet request with fixed render parameters.
func NewRequest(contextPath string, public, private map[string][]string) Request {
	return portlet.NewRequest(contextPath, public, private)
}

// NewPortal creates the in-memory reference portal.
func NewPortal(opts ...portlet.PortalOption) *portlet.Portal {
	return portlet.NewPortal(opts...)
}

// Describe reports how the bridge sees u.
func Describe(u *URL) Report {
	return bridgeurl.Describe(u)
}

package bridgeurl

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/facesbridge/pkg/logger"
	"github.com/dmitrymomot/facesbridge/pkg/portlet"
)

// Reserved parameter names shared with the portlet container and the view
// framework.
const (
	PortletModeParam      = "javax.portlet.faces.PortletMode"
	WindowStateParam      = "javax.portlet.faces.WindowState"
	SecureParam           = "javax.portlet.faces.Secure"
	ViewIDParam           = "_jsfBridgeViewId"
	ViewPathParam         = "_jsfBridgeViewPath"
	DefaultViewStateParam = "javax.faces.ViewState"
)

// Factory binds the collaborators of one portlet request and creates the
// URLs rendered during it. A Factory and its URLs belong to the request
// goroutine and must not be shared.
type Factory struct {
	ctx            context.Context
	request        portlet.Request
	container      portlet.Container
	config         Config
	views          ViewResolver
	preserved      map[string][]string
	logger         *slog.Logger
	viewStateParam string
}

// NewFactory creates a URL factory for the given request.
// container may be nil when only classification and formatting are needed.
func NewFactory(req portlet.Request, container portlet.Container, cfg Config, opts ...Option) *Factory {
	f := &Factory{
		ctx:            context.Background(),
		request:        req,
		container:      container,
		config:         cfg,
		logger:         logger.NewNope(),
		viewStateParam: DefaultViewStateParam,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// ActionURL creates a URL that targets the action phase unless raw uses
// the portlet: scheme.
func (f *Factory) ActionURL(raw, currentViewID string, opts ...URLOption) *URL {
	return f.New(portlet.PhaseAction, raw, currentViewID, opts...)
}

// RenderURL creates a URL that targets the render phase unless raw uses
// the portlet: scheme.
func (f *Factory) RenderURL(raw, currentViewID string, opts ...URLOption) *URL {
	return f.New(portlet.PhaseRender, raw, currentViewID, opts...)
}

// ResourceURL creates a URL that targets the resource phase unless raw uses
// the portlet: scheme.
func (f *Factory) ResourceURL(raw, currentViewID string, opts ...URLOption) *URL {
	return f.New(portlet.PhaseResource, raw, currentViewID, opts...)
}

// New creates a URL of the given variant.
func (f *Factory) New(kind portlet.Phase, raw, currentViewID string, opts ...URLOption) *URL {
	u := &URL{
		raw:           raw,
		currentViewID: currentViewID,
		kind:          kind,
		factory:       f,
	}
	if f.request != nil {
		u.contextPath = f.request.ContextPath()
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (f *Factory) viewIDRenderParam() string {
	if f.config == nil {
		return ViewIDParam
	}
	return f.config.ViewIDRenderParameterName()
}

func (f *Factory) viewIDResourceParam() string {
	if f.config == nil {
		return ViewIDParam
	}
	return f.config.ViewIDResourceParameterName()
}

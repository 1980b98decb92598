package bridgeurl

import (
	"context"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/facesbridge/pkg/portlet"
)

// Config is the part of the bridge configuration the URL subsystem reads.
type Config interface {
	ViewIDRenderParameterName() string
	ViewIDResourceParameterName() string
}

// ViewResolver maps a context-relative path to a view id, following the
// servlet-mapping conventions of the view framework.
type ViewResolver interface {
	ViewIDFromPath(path string) (string, bool)
}

// ViewResolverFunc adapts a function to ViewResolver.
type ViewResolverFunc func(path string) (string, bool)

// ViewIDFromPath calls f(path).
func (f ViewResolverFunc) ViewIDFromPath(path string) (string, bool) {
	return f(path)
}

// Option configures a Factory.
type Option func(*Factory)

// WithLogger sets the logger used to report recovered errors.
// Default: a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Factory) {
		if l != nil {
			f.logger = l
		}
	}
}

// WithContext sets the request context passed to the logger, so context
// extractors such as request or window ids apply to bridge diagnostics.
// Default: context.Background().
func WithContext(ctx context.Context) Option {
	return func(f *Factory) {
		if ctx != nil {
			f.ctx = ctx
		}
	}
}

// WithViewResolver sets the view-id mapping consulted by IsFacesViewTarget.
func WithViewResolver(r ViewResolver) Option {
	return func(f *Factory) {
		f.views = r
	}
}

// WithPreservedActionParams sets the parameters carried over from the
// action phase. They are never merged from the request render parameters.
// The map is copied.
func WithPreservedActionParams(params map[string][]string) Option {
	return func(f *Factory) {
		f.preserved = maps.Clone(params)
	}
}

// WithViewStateParam overrides the state-saving parameter name of the
// view framework.
// Default: "javax.faces.ViewState".
func WithViewStateParam(name string) Option {
	return func(f *Factory) {
		if name != "" {
			f.viewStateParam = name
		}
	}
}

// URLOption configures a single URL.
type URLOption func(*URL)

// BuildFunc materializes a container URL for u. It replaces the default
// phase dispatch of ToBaseURL.
type BuildFunc func(u *URL) (portlet.BaseURL, error)

// WithBuildFunc installs a phase-specific builder for the URL.
func WithBuildFunc(fn BuildFunc) URLOption {
	return func(u *URL) {
		u.build = fn
	}
}

// WithSecure marks the URL as secure.
func WithSecure(secure bool) URLOption {
	return func(u *URL) {
		u.secure = secure
	}
}

// WithSelfReferencing marks the URL as pointing back to the current view.
func WithSelfReferencing(self bool) URLOption {
	return func(u *URL) {
		u.selfReferencing = self
	}
}

// Package facesbridge rewrites URLs produced by view templates into portal
// URLs for a portlet bridge.
//
// A template emits URLs in many shapes: absolute, context relative, path
// relative or in the portlet: scheme. The bridge classifies each URL,
// decides whether it targets a view, and renders it through the portlet
// container as an action, render or resource URL.
//
// # Quick Start
//
//	cfg, err := facesbridge.LoadConfig("bridge.yaml")
//	if err != nil {
//	    return err
//	}
//
//	factory, err := facesbridge.New(cfg, req, container,
//	    facesbridge.WithLogger(log),
//	)
//	if err != nil {
//	    return err
//	}
//
//	u := factory.RenderURL("/app/views/next.xhtml?item=7", currentViewID)
//	href := u.String()
//
// # Packages
//
//   - pkg/bridgeurl: URL classification, parameters and rendering
//   - pkg/portlet: container capabilities and a reference portal
//   - pkg/viewmapping: servlet-mapping view resolution
//   - pkg/config: YAML and environment configuration
//   - pkg/logger: slog setup with optional Sentry reporting
//   - pkg/view: templ helpers
package facesbridge

// Package bridgeurl analyzes and rewrites the URLs a view template emits
// inside a portlet.
//
// Templates produce opaque strings: absolute URLs, server-relative paths,
// paths relative to the current document, or portlet: URLs such as
// "portlet:action?id=42". A URL classifies the string, parses its query
// into a mutable parameter map, decides whether it targets a view of the
// view framework and finally asks the portlet container for a concrete
// action, render or resource URL.
//
// # Basic Usage
//
// Bind the collaborators of the current request once, then create URLs:
//
//	f := bridgeurl.NewFactory(req, container, cfg,
//		bridgeurl.WithViewResolver(resolver),
//		bridgeurl.WithPreservedActionParams(preserved),
//		bridgeurl.WithLogger(log),
//	)
//
//	u := f.RenderURL("/app/views/bar.xhtml?x=1", "/views/foo.xhtml")
//	u.IsFacesViewTarget()   // true: same directory and extension
//	u.ContextRelativePath() // "/views/bar.xhtml"
//	href := u.String()      // rendered by the container
//
// # Classification
//
// IsAbsolute, IsRelative, IsOpaque, IsHierarchical, IsPathRelative,
// IsPortletScheme, IsExternal and IsEscaped are derived from the raw string
// once and cached. The URL is parsed with net/url; a string the parser
// rejects is logged and treated as an empty URL.
//
// # Parameters
//
// The query is parsed on first access. "&amp;" is accepted as separator,
// a repeated name keeps its last value and "a=b=c" is logged and skipped.
// The map keeps insertion order and may be changed with SetParameter and
// RemoveParameter before rendering.
//
// # Rendering
//
// Format renders the URL without the container: reserved parameters
// (PortletModeParam, WindowStateParam, SecureParam) with unknown values
// are dropped and the view-id parameter is appended for view targets.
// String goes through the container (see ToBaseURL) and keeps the escape
// style of the input. Request render parameters are merged into container
// URLs except the view-state parameter, preserved action parameters and
// names the URL already carries.
//
// # Concurrency
//
// A URL caches its derived values without locking. Create it, use it and
// drop it on the request goroutine.
package bridgeurl

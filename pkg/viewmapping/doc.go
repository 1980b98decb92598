// Package viewmapping resolves request paths to view ids using servlet
// mapping conventions.
//
// Two mapping forms are supported:
//
//   - extension mappings such as "*.faces": "/a/b.faces" resolves to
//     "/a/b.xhtml" (the first default suffix whose file exists)
//   - prefix mappings such as "/faces/*": "/faces/a/b.xhtml" resolves to
//     "/a/b.xhtml"
//
// A Resolver satisfies bridgeurl.ViewResolver:
//
//	r, err := viewmapping.New(
//		viewmapping.WithMappings(cfg.ServletMappings...),
//		viewmapping.WithDefaultSuffixes(cfg.DefaultSuffixes...),
//		viewmapping.WithFS(os.DirFS("web")),
//	)
//	factory := bridgeurl.NewFactory(req, container, cfg, bridgeurl.WithViewResolver(r))
package viewmapping

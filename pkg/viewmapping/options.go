package viewmapping

import "io/fs"

// Option configures a Resolver.
type Option func(*Resolver)

// WithMappings sets the servlet mappings, replacing the defaults.
func WithMappings(patterns ...string) Option {
	return func(r *Resolver) {
		r.patterns = patterns
	}
}

// WithDefaultSuffixes sets the view file suffixes tried for extension
// mappings, in order.
func WithDefaultSuffixes(suffixes ...string) Option {
	return func(r *Resolver) {
		r.suffixes = suffixes
	}
}

// WithFS makes extension mappings resolve only to files that exist in fsys.
func WithFS(fsys fs.FS) Option {
	return func(r *Resolver) {
		r.fsys = fsys
	}
}

package viewmapping

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

var (
	defaultMappings = []string{"*.faces", "*.jsf", "/faces/*"}
	defaultSuffixes = []string{".xhtml", ".jsp"}
)

// Resolver maps context-relative paths to view ids.
type Resolver struct {
	fsys       fs.FS
	patterns   []string
	suffixes   []string
	extensions []string
	prefixes   []string
}

// New builds a Resolver. It fails with ErrInvalidMapping when a pattern is
// neither "*.ext" nor "/prefix/*".
func New(opts ...Option) (*Resolver, error) {
	r := &Resolver{
		patterns: defaultMappings,
		suffixes: defaultSuffixes,
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, p := range r.patterns {
		switch {
		case strings.HasPrefix(p, "*.") && len(p) > 2 && !strings.Contains(p[2:], "/"):
			r.extensions = append(r.extensions, p[1:])
		case strings.HasPrefix(p, "/") && strings.HasSuffix(p, "/*"):
			r.prefixes = append(r.prefixes, strings.TrimSuffix(p, "/*"))
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidMapping, p)
		}
	}
	return r, nil
}

// ViewIDFromPath returns the view id served at p, if any mapping matches.
func (r *Resolver) ViewIDFromPath(p string) (string, bool) {
	for _, prefix := range r.prefixes {
		if rest, ok := strings.CutPrefix(p, prefix+"/"); ok && rest != "" {
			return "/" + rest, true
		}
	}

	ext := path.Ext(p)
	if ext == "" {
		return "", false
	}
	for _, e := range r.extensions {
		if e != ext {
			continue
		}
		base := strings.TrimSuffix(p, ext)
		for _, suffix := range r.suffixes {
			if r.exists(base + suffix) {
				return base + suffix, true
			}
		}
	}
	return "", false
}

func (r *Resolver) exists(viewID string) bool {
	if r.fsys == nil {
		return true
	}
	_, err := fs.Stat(r.fsys, strings.TrimPrefix(viewID, "/"))
	return err == nil
}

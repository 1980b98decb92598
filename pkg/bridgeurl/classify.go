package bridgeurl

import "strings"

// IsAbsolute reports whether the URL has a scheme.
func (u *URL) IsAbsolute() bool {
	return u.parsed().Scheme != ""
}

// IsRelative reports whether the URL has no scheme.
func (u *URL) IsRelative() bool {
	return !u.IsAbsolute()
}

// IsOpaque reports whether the URL is absolute and its scheme-specific
// part does not start with a slash, like "mailto:a@b" or "portlet:render".
func (u *URL) IsOpaque() bool {
	return u.IsAbsolute() && !strings.HasPrefix(u.SchemeSpecificPart(), "/")
}

// IsHierarchical is the complement of IsOpaque.
func (u *URL) IsHierarchical() bool {
	return u.hierarchical.get(func() bool {
		return (u.IsAbsolute() && strings.HasPrefix(u.SchemeSpecificPart(), "/")) || u.IsRelative()
	})
}

// IsPortletScheme reports whether the URL uses the portlet: scheme.
func (u *URL) IsPortletScheme() bool {
	return u.isPortletScheme.get(func() bool {
		// url.Parse lowercases the scheme; the keyword is case sensitive.
		return u.parsed().Scheme == portletScheme && strings.HasPrefix(u.raw, portletPrefix)
	})
}

// IsPathRelative reports whether the URL path is relative to the current
// document, like "foo.xhtml" or "../foo.xhtml".
func (u *URL) IsPathRelative() bool {
	return u.pathRelative.get(func() bool {
		path := u.parsed().Path
		return path != "" && (!strings.HasPrefix(path, "/") || strings.HasPrefix(path, relativePathPrefix))
	})
}

// IsExternal reports whether the URL points outside the portlet
// application: any absolute URL other than portlet:, and any relative URL
// that starts with neither "/" nor "../".
func (u *URL) IsExternal() bool {
	return u.external.get(func() bool {
		if u.IsPortletScheme() {
			return false
		}
		if u.IsAbsolute() {
			return true
		}
		return !strings.HasPrefix(u.raw, "/") && !strings.HasPrefix(u.raw, relativePathPrefix)
	})
}

// IsEscaped reports whether the query uses "&amp;" as separator: every
// ampersand after the first question mark starts "&amp;". A query without
// ampersands is not escaped.
func (u *URL) IsEscaped() bool {
	return u.escaped.get(func() bool {
		q := strings.IndexByte(u.raw, '?')
		if q < 0 {
			return false
		}
		query := u.raw[q+1:]
		if !strings.Contains(query, "&") {
			return false
		}
		for i := strings.IndexByte(query, '&'); i >= 0; {
			if !strings.HasPrefix(query[i:], "&amp;") {
				return false
			}
			next := strings.IndexByte(query[i+1:], '&')
			if next < 0 {
				break
			}
			i += next + 1
		}
		return true
	})
}

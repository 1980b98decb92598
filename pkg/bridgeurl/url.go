package bridgeurl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/dmitrymomot/facesbridge/pkg/portlet"
)

const (
	portletScheme      = "portlet"
	portletPrefix      = "portlet:"
	relativePathPrefix = "../"
)

// lazy holds a value computed on first use.
type lazy[T any] struct {
	value T
	set   bool
}

func (l *lazy[T]) get(compute func() T) T {
	if !l.set {
		l.value = compute()
		l.set = true
	}
	return l.value
}

// URL is a URL produced by a view template, analyzed with respect to the
// portlet container. Derived properties are computed on first use and
// cached; parameter changes are visible to every later operation.
type URL struct {
	factory *Factory
	build   BuildFunc
	params  *Parameters

	raw           string
	currentViewID string
	contextPath   string

	parseErr            error
	uri                 lazy[*url.URL]
	contextRelativePath lazy[string]
	phase               lazy[portlet.Phase]
	escaped             lazy[bool]
	external            lazy[bool]
	facesViewTarget     lazy[bool]
	hierarchical        lazy[bool]
	pathRelative        lazy[bool]
	isPortletScheme     lazy[bool]

	kind            portlet.Phase
	secure          bool
	selfReferencing bool
}

// Raw returns the URL exactly as the template produced it.
func (u *URL) Raw() string { return u.raw }

// CurrentViewID returns the view being rendered when the URL was created.
func (u *URL) CurrentViewID() string { return u.currentViewID }

// Kind returns the phase variant the URL was created for.
func (u *URL) Kind() portlet.Phase { return u.kind }

// IsSecure reports whether the caller asked for a secure URL.
func (u *URL) IsSecure() bool {
	return u.secure
}

// SetSecure marks the URL as secure or not.
func (u *URL) SetSecure(secure bool) {
	u.secure = secure
}

// IsSelfReferencing reports whether the URL points back to the current view.
func (u *URL) IsSelfReferencing() bool {
	return u.selfReferencing
}

// SetSelfReferencing marks whether the URL points back to the current view.
func (u *URL) SetSelfReferencing(selfReferencing bool) {
	u.selfReferencing = selfReferencing
}

func (u *URL) log() *slog.Logger {
	return u.factory.logger
}

func (u *URL) ctx() context.Context {
	return u.factory.ctx
}

// parsed returns the parsed form of the raw URL. A URL the parser rejects
// is logged and replaced by an empty URL.
func (u *URL) parsed() *url.URL {
	return u.uri.get(func() *url.URL {
		parsed, err := url.Parse(u.raw)
		if err != nil {
			u.parseErr = fmt.Errorf("%w: %w", ErrMalformedURL, err)
			u.log().ErrorContext(u.ctx(), "failed to parse URL",
				slog.String("url", u.raw),
				slog.String("error", err.Error()),
			)
			return &url.URL{}
		}
		return parsed
	})
}

// Err returns an ErrMalformedURL error when the raw URL could not be
// parsed. Such a URL is treated as empty by every predicate.
func (u *URL) Err() error {
	u.parsed()
	return u.parseErr
}

// SchemeSpecificPart returns everything after "scheme:" without the
// fragment, e.g. "//example.com/img.png" for "https://example.com/img.png".
func (u *URL) SchemeSpecificPart() string {
	p := u.parsed()
	var b strings.Builder
	if p.Opaque != "" {
		b.WriteString(p.Opaque)
	} else {
		if p.Host != "" || p.User != nil {
			b.WriteString("//")
			if p.User != nil {
				b.WriteString(p.User.String())
				b.WriteByte('@')
			}
			b.WriteString(p.Host)
		}
		b.WriteString(p.EscapedPath())
	}
	if p.RawQuery != "" || p.ForceQuery {
		b.WriteByte('?')
		b.WriteString(p.RawQuery)
	}
	return b.String()
}

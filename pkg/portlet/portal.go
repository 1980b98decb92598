package portlet

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Portal is an in-memory Container that renders portal-style URLs:
//
//	<base>?p_p_id=<id>&p_p_lifecycle=<0|1|2>[&p_p_mode=..][&p_p_state=..]&_<id>_<name>=<value>
//
// It is safe for concurrent use; the URLs it issues are not.
type Portal struct {
	opts *portalOptions
}

// NewPortal creates a reference portal with the given options.
func NewPortal(opts ...PortalOption) *Portal {
	o := defaultPortalOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Portal{opts: o}
}

// PortletID returns the id used to namespace parameters.
func (p *Portal) PortletID() string {
	return p.opts.portletID
}

// Namespace returns the prefix applied to parameter names.
func (p *Portal) Namespace() string {
	return "_" + p.opts.portletID + "_"
}

func (p *Portal) CreateActionURL() PortletURL { return p.newURL(PhaseAction) }
func (p *Portal) CreateRenderURL() PortletURL { return p.newURL(PhaseRender) }
func (p *Portal) CreateResourceURL() BaseURL  { return p.newURL(PhaseResource) }

func (p *Portal) newURL(phase Phase) *portalURL {
	return &portalURL{
		portal: p,
		phase:  phase,
		params: orderedmap.New[string, []string](),
	}
}

// portalURL is a builder issued by Portal.
type portalURL struct {
	portal *Portal
	params *orderedmap.OrderedMap[string, []string]
	mode   Mode
	state  WindowState
	phase  Phase
	secure bool
}

func (u *portalURL) SetParameter(name string, values []string) {
	u.params.Set(name, append([]string(nil), values...))
}

func (u *portalURL) SetSecure(secure bool) error {
	if secure && !u.portal.opts.secureAllowed {
		return ErrSecurity
	}
	u.secure = secure
	return nil
}

func (u *portalURL) SetPortletMode(mode Mode) error {
	m := Mode(strings.ToLower(string(mode)))
	if !u.portal.opts.modes[m] {
		return fmt.Errorf("%w: %q", ErrInvalidPortletMode, mode)
	}
	u.mode = m
	return nil
}

func (u *portalURL) SetWindowState(state WindowState) error {
	s := WindowState(strings.ToLower(string(state)))
	if !u.portal.opts.states[s] {
		return fmt.Errorf("%w: %q", ErrInvalidWindowState, state)
	}
	u.state = s
	return nil
}

func (u *portalURL) Write(w io.Writer, escape bool) error {
	_, err := io.WriteString(w, u.render(escape))
	return err
}

func (u *portalURL) String() string {
	return u.render(false)
}

func (u *portalURL) render(escape bool) string {
	amp := "&"
	if escape {
		amp = "&amp;"
	}

	base := u.portal.opts.baseURL
	if u.secure && strings.HasPrefix(base, "http://") {
		base = "https://" + strings.TrimPrefix(base, "http://")
	}

	var b strings.Builder
	b.WriteString(base)
	if strings.Contains(base, "?") {
		b.WriteString(amp)
	} else {
		b.WriteByte('?')
	}

	b.WriteString("p_p_id=")
	b.WriteString(url.QueryEscape(u.portal.opts.portletID))
	b.WriteString(amp + "p_p_lifecycle=")
	b.WriteString(u.phase.lifecycle())
	if u.mode != "" {
		b.WriteString(amp + "p_p_mode=")
		b.WriteString(string(u.mode))
	}
	if u.state != "" {
		b.WriteString(amp + "p_p_state=")
		b.WriteString(string(u.state))
	}

	ns := u.portal.Namespace()
	for pair := u.params.Oldest(); pair != nil; pair = pair.Next() {
		name := url.QueryEscape(ns + pair.Key)
		for _, v := range pair.Value {
			b.WriteString(amp)
			b.WriteString(name)
			b.WriteByte('=')
			b.WriteString(url.QueryEscape(v))
		}
	}
	return b.String()
}

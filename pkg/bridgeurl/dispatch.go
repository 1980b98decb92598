package bridgeurl

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/facesbridge/pkg/portlet"
)

// ToBaseURL materializes the URL.
//
// portlet: URLs become a container URL of the keyword phase. External
// URLs and relative URLs that do not target a view are rendered by Format
// and returned as a plain string URL. Relative view targets become a
// container URL of the URL's Kind. Container URLs receive the reserved
// mode, window-state and secure settings, the URL parameters, the view-id
// parameter when needed and the request render parameters.
//
// The only error is ErrNoContainer (or ErrUnknownPhase for a URL without
// Kind) when a container URL is required; a BuildFunc may return its own.
func (u *URL) ToBaseURL() (portlet.BaseURL, error) {
	if u.build != nil {
		return u.build(u)
	}

	switch {
	case u.IsPortletScheme():
		return u.containerURL(u.PortletPhase())
	case u.IsExternal(), !u.IsFacesViewTarget():
		return u.stringURL(), nil
	default:
		return u.containerURL(u.kind)
	}
}

// String renders the URL through the container. Escaped URLs are written
// in escaped form. On failure the container-free Format output is used.
func (u *URL) String() string {
	base, err := u.ToBaseURL()
	if err != nil {
		u.log().ErrorContext(u.ctx(), "failed to build portlet URL",
			slog.String("url", u.raw),
			slog.String("error", err.Error()),
		)
		return u.stringURL().String()
	}

	if !u.IsEscaped() {
		return base.String()
	}

	var b strings.Builder
	if err := base.Write(&b, true); err != nil {
		u.log().ErrorContext(u.ctx(), "failed to write escaped URL",
			slog.String("url", u.raw),
			slog.String("error", err.Error()),
		)
		return base.String()
	}
	return b.String()
}

// PlainString renders the URL through the container without escaping,
// regardless of IsEscaped.
func (u *URL) PlainString() string {
	base, err := u.ToBaseURL()
	if err != nil {
		u.log().ErrorContext(u.ctx(), "failed to build portlet URL",
			slog.String("url", u.raw),
			slog.String("error", err.Error()),
		)
		return u.stringURL().String()
	}
	return base.String()
}

func (u *URL) containerURL(phase portlet.Phase) (portlet.BaseURL, error) {
	c := u.factory.container
	if c == nil {
		return nil, ErrNoContainer
	}

	var base portlet.BaseURL
	switch phase {
	case portlet.PhaseAction:
		base = c.CreateActionURL()
	case portlet.PhaseRender:
		base = c.CreateRenderURL()
	case portlet.PhaseResource:
		base = c.CreateResourceURL()
	default:
		return nil, fmt.Errorf("%w: %s", portlet.ErrUnknownPhase, phase)
	}

	modeChanged := u.applyReserved(base, phase)

	params := u.ParameterMap()
	var foundViewID, foundViewPath bool
	for _, name := range params.Names() {
		if reserved, _ := isReserved(name, ""); reserved {
			continue
		}
		foundViewID = foundViewID || name == ViewIDParam
		foundViewPath = foundViewPath || name == ViewPathParam
		base.SetParameter(name, params.Values(name))
	}

	// portlet: URLs always address a view; for others a mode change
	// lets the portlet pick the view of the new mode.
	var injected []string
	if !foundViewID && !foundViewPath && (u.IsPortletScheme() || !modeChanged) && u.IsFacesViewTarget() {
		name := u.ViewIDParameterName()
		base.SetParameter(name, []string{u.ContextRelativePath()})
		injected = append(injected, name)
	}

	// The portal's render state must not replace the target view.
	u.setRenderParameters(base, injected...)
	return base, nil
}

// applyReserved hands valid mode, window-state and secure parameters to
// the container. Resource URLs take the secure setting only. Setter
// failures are logged. It reports whether a mode change was requested.
func (u *URL) applyReserved(base portlet.BaseURL, phase portlet.Phase) bool {
	params := u.ParameterMap()
	modeChanged := false

	if pu, ok := base.(portlet.PortletURL); ok && phase != portlet.PhaseResource {
		if mode := params.Get(PortletModeParam); portlet.IsValidMode(mode) {
			modeChanged = true
			if err := pu.SetPortletMode(portlet.Mode(mode)); err != nil {
				u.log().ErrorContext(u.ctx(), "failed to set portlet mode",
					slog.String("mode", mode),
					slog.String("error", err.Error()),
				)
			}
		}
		if state := params.Get(WindowStateParam); portlet.IsValidWindowState(state) {
			if err := pu.SetWindowState(portlet.WindowState(state)); err != nil {
				u.log().ErrorContext(u.ctx(), "failed to set window state",
					slog.String("window_state", state),
					slog.String("error", err.Error()),
				)
			}
		}
	}

	secure := u.secure
	if token := params.Get(SecureParam); portlet.IsBooleanToken(token) {
		secure = portlet.ParseBool(token)
	}
	if secure {
		if err := base.SetSecure(true); err != nil {
			u.log().ErrorContext(u.ctx(), "failed to set secure URL", slog.String("error", err.Error()))
		}
	}

	return modeChanged
}

// stringURL wraps the Format output of URLs the container does not render.
func (u *URL) stringURL() *stringURL {
	return &stringURL{value: strings.TrimSuffix(u.Format(false), "?")}
}

// stringURL is a BaseURL backed by a literal string.
type stringURL struct {
	value string
}

func (s *stringURL) SetParameter(name string, values []string) {
	for _, v := range values {
		if strings.Contains(s.value, "?") {
			s.value += "&"
		} else {
			s.value += "?"
		}
		s.value += name + "=" + v
	}
}

func (s *stringURL) SetSecure(bool) error {
	return nil
}

func (s *stringURL) Write(w io.Writer, escape bool) error {
	v := s.value
	if escape {
		v = strings.ReplaceAll(v, "&", "&amp;")
	}
	_, err := io.WriteString(w, v)
	return err
}

func (s *stringURL) String() string {
	return s.value
}

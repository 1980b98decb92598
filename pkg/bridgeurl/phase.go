package bridgeurl

import (
	"log/slog"
	"strings"

	"github.com/dmitrymomot/facesbridge/pkg/portlet"
)

// PortletPhase returns the phase named by the portlet: keyword.
// URLs outside the portlet: scheme return PhaseUnknown and are dispatched
// according to their Kind. An empty URL or an unknown keyword selects the
// resource phase.
func (u *URL) PortletPhase() portlet.Phase {
	return u.phase.get(func() portlet.Phase {
		if u.raw == "" {
			u.log().WarnContext(u.ctx(), "unable to determine portlet phase of an empty URL")
			return portlet.PhaseResource
		}
		if !u.IsPortletScheme() {
			return portlet.PhaseUnknown
		}

		phase, err := portlet.ParsePhase(portletKeyword(u.raw))
		if err != nil {
			u.log().WarnContext(u.ctx(), "invalid keyword after 'portlet:'", slog.String("url", u.raw))
			return portlet.PhaseResource
		}
		return phase
	})
}

// portletKeyword returns the letters that follow "portlet:".
func portletKeyword(raw string) string {
	rest := strings.TrimPrefix(raw, portletPrefix)
	end := strings.IndexFunc(rest, func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < 'A' || r > 'Z')
	})
	if end < 0 {
		return rest
	}
	return rest[:end]
}

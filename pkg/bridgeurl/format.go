package bridgeurl

import (
	"slices"
	"strings"
)

// Format renders the URL as a string without involving the container.
//
// The part before the first "?" is kept (the portlet: keyword is dropped),
// followed by "?" and the parameters in insertion order separated by "&".
// Reserved parameters with unknown values are omitted, as is any name in
// excluded. When the URL carries neither a view-id nor a view-path
// parameter, is not in the portlet: scheme, no mode change is requested
// and it targets a view, the view-id parameter is appended with the
// context-relative path.
func (u *URL) Format(modeChanged bool, excluded ...string) string {
	var b strings.Builder

	prefix := u.raw
	if end := strings.IndexByte(prefix, '?'); end >= 0 {
		prefix = prefix[:end]
	}
	if u.IsPortletScheme() {
		rest := strings.TrimPrefix(prefix, portletPrefix)
		prefix = rest[len(portletKeyword(prefix)):]
	}
	b.WriteString(prefix)
	b.WriteByte('?')

	first := true
	var foundViewID, foundViewPath bool

	params := u.ParameterMap()
	for _, name := range params.Names() {
		value := params.Get(name)

		add := true
		if reserved, valid := isReserved(name, value); reserved {
			add = valid
		} else {
			foundViewID = foundViewID || name == ViewIDParam
			foundViewPath = foundViewPath || name == ViewPathParam
		}

		if !add || slices.Contains(excluded, name) {
			continue
		}
		if !first {
			b.WriteByte('&')
		}
		first = false
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(value)
	}

	if !foundViewID && !foundViewPath && !u.IsPortletScheme() && !modeChanged && u.IsFacesViewTarget() {
		if !first {
			b.WriteByte('&')
		}
		b.WriteString(u.ViewIDParameterName())
		b.WriteByte('=')
		b.WriteString(u.ContextRelativePath())
	}

	return b.String()
}

package bridgeurl

import (
	"log/slog"
	"strings"

	"github.com/dmitrymomot/facesbridge/pkg/portlet"
)

// ContextRelativePath returns the URL path after the context path. External
// URLs have none. A URL without a path resolves to the current view.
func (u *URL) ContextRelativePath() string {
	return u.contextRelativePath.get(func() string {
		if u.IsExternal() {
			return ""
		}

		path := u.parsed().Path
		if path == "" {
			return u.currentViewID
		}
		if pos := strings.Index(path, u.contextPath); pos >= 0 {
			return path[pos+len(u.contextPath):]
		}
		return path
	})
}

// IsFacesViewTarget reports whether the URL addresses a view of the view
// framework: the current view itself, a path the view resolver maps to a
// view, or a path with the same directory and extension as the current view.
func (u *URL) IsFacesViewTarget() bool {
	return u.facesViewTarget.get(func() bool {
		if u.IsExternal() {
			return false
		}

		path := u.ContextRelativePath()
		if u.currentViewID != "" && u.currentViewID == path {
			return true
		}

		if views := u.factory.views; views != nil {
			if _, ok := views.ViewIDFromPath(path); ok {
				return true
			}
		}

		// Navigation rules may name "/a/foo.jsp" while the current view
		// is "/a/bar.jsp".
		if u.currentViewID != "" && matchPathAndExtension(u.currentViewID, path) {
			u.log().DebugContext(u.ctx(), "path has the same directory and extension as the current view",
				slog.String("path", path),
				slog.String("view_id", u.currentViewID),
			)
			return true
		}
		return false
	})
}

// ViewIDParameterName returns the parameter that carries the target view
// id: the resource name for portlet:resource URLs, the render name
// otherwise.
func (u *URL) ViewIDParameterName() string {
	if u.IsPortletScheme() && u.PortletPhase() == portlet.PhaseResource {
		return u.factory.viewIDResourceParam()
	}
	return u.factory.viewIDRenderParam()
}

// matchPathAndExtension reports whether both files share the directory
// (up to the last slash) and the extension (from the first dot). A slash
// or dot at position 0 does not count.
//
// The extension starts at the first dot, so "/a.b/c" has extension ".b/c".
func matchPathAndExtension(file1, file2 string) bool {
	dir1, ok1 := directory(file1)
	dir2, ok2 := directory(file2)
	if ok1 != ok2 || dir1 != dir2 {
		return false
	}

	ext1, ok1 := extension(file1)
	ext2, ok2 := extension(file2)
	return ok1 == ok2 && ext1 == ext2
}

func directory(file string) (string, bool) {
	if i := strings.LastIndexByte(file, '/'); i > 0 {
		return file[:i], true
	}
	return "", false
}

func extension(file string) (string, bool) {
	if i := strings.IndexByte(file, '.'); i > 0 {
		return file[i:], true
	}
	return "", false
}

// Package portlet describes the portal container as seen by the bridge.
//
// The bridge never talks to a concrete portal. It consumes a small set of
// capabilities instead: a Container that issues URL builders for the three
// portlet phases, and a Request that exposes the context path together with
// the public and private render parameters of the current view.
//
// # Capabilities
//
//	type Container interface {
//		CreateActionURL() PortletURL
//		CreateRenderURL() PortletURL
//		CreateResourceURL() BaseURL
//	}
//
// Action and render URLs accept a portlet mode and a window state, resource
// URLs only accept parameters and the secure flag.
//
// # Reference portal
//
// NewPortal returns an in-memory Container that renders portal-style URLs.
// It is used by tests, the bridgeurl CLI and the inspector endpoint:
//
//	portal := portlet.NewPortal(
//		portlet.WithBaseURL("http://localhost:8080/web/guest/home"),
//		portlet.WithPortletID("books"),
//	)
//
//	u := portal.CreateRenderURL()
//	u.SetParameter("id", []string{"42"})
//	_ = u.SetPortletMode(portlet.ModeEdit)
//	fmt.Println(u)
//	// http://localhost:8080/web/guest/home?p_p_id=books&p_p_lifecycle=0&p_p_mode=edit&_books_id=42
//
// # Validation
//
// IsValidMode, IsValidWindowState and IsBooleanToken decide whether a
// reserved bridge parameter carries a value the container understands.
package portlet

package portlet

import (
	"strings"

	"github.com/google/uuid"
)

// PortalOption configures the reference portal.
type PortalOption func(*portalOptions)

type portalOptions struct {
	modes         map[Mode]bool
	states        map[WindowState]bool
	baseURL       string
	portletID     string
	secureAllowed bool
}

func defaultPortalOptions() *portalOptions {
	return &portalOptions{
		baseURL:   "/web/guest/home",
		portletID: "portlet_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:8],
		modes: map[Mode]bool{
			ModeView: true,
			ModeEdit: true,
			ModeHelp: true,
		},
		states: map[WindowState]bool{
			WindowStateNormal:    true,
			WindowStateMaximized: true,
			WindowStateMinimized: true,
		},
		secureAllowed: true,
	}
}

// WithBaseURL sets the page URL every rendered portlet URL starts with.
// Default: "/web/guest/home".
func WithBaseURL(base string) PortalOption {
	return func(o *portalOptions) {
		if base != "" {
			o.baseURL = base
		}
	}
}

// WithPortletID sets the portlet id. Parameter names are namespaced
// as "_<id>_<name>".
// Default: a random id derived from a UUID.
func WithPortletID(id string) PortalOption {
	return func(o *portalOptions) {
		if id != "" {
			o.portletID = id
		}
	}
}

// WithModes restricts the portlet modes the portal accepts.
func WithModes(modes ...Mode) PortalOption {
	return func(o *portalOptions) {
		o.modes = make(map[Mode]bool, len(modes))
		for _, m := range modes {
			o.modes[Mode(strings.ToLower(string(m)))] = true
		}
	}
}

// WithWindowStates restricts the window states the portal accepts.
func WithWindowStates(states ...WindowState) PortalOption {
	return func(o *portalOptions) {
		o.states = make(map[WindowState]bool, len(states))
		for _, s := range states {
			o.states[WindowState(strings.ToLower(string(s)))] = true
		}
	}
}

// WithoutSecure makes SetSecure(true) fail with ErrSecurity.
func WithoutSecure() PortalOption {
	return func(o *portalOptions) {
		o.secureAllowed = false
	}
}

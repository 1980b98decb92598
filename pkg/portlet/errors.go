package portlet

import "errors"

// Sentinel errors returned by URL builders.
var (
	ErrInvalidPortletMode = errors.New("portlet: portlet mode not supported")
	ErrInvalidWindowState = errors.New("portlet: window state not supported")
	ErrSecurity           = errors.New("portlet: secure URLs not supported")
	ErrUnknownPhase       = errors.New("portlet: unknown portlet phase")
)

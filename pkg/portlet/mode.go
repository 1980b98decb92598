package portlet

import "strings"

// Mode is a portlet mode literal.
type Mode string

// Standard portlet modes.
const (
	ModeView Mode = "view"
	ModeEdit Mode = "edit"
	ModeHelp Mode = "help"
)

// WindowState is a window state literal.
type WindowState string

// Standard window states.
const (
	WindowStateNormal    WindowState = "normal"
	WindowStateMaximized WindowState = "maximized"
	WindowStateMinimized WindowState = "minimized"
)

var (
	trueTokens  = []string{"true", "yes", "on", "1"}
	falseTokens = []string{"false", "no", "off", "0"}
)

// IsValidMode reports whether value names a standard portlet mode.
// The comparison ignores case.
func IsValidMode(value string) bool {
	switch Mode(strings.ToLower(value)) {
	case ModeView, ModeEdit, ModeHelp:
		return true
	}
	return false
}

// IsValidWindowState reports whether value names a standard window state.
// The comparison ignores case.
func IsValidWindowState(value string) bool {
	switch WindowState(strings.ToLower(value)) {
	case WindowStateNormal, WindowStateMaximized, WindowStateMinimized:
		return true
	}
	return false
}

// IsBooleanToken reports whether value is one of the accepted boolean tokens.
func IsBooleanToken(value string) bool {
	return isTrueToken(value) || isFalseToken(value)
}

// ParseBool converts a boolean token to its value.
// Anything that is not a true token is false.
func ParseBool(value string) bool {
	return isTrueToken(value)
}

func isTrueToken(value string) bool {
	return containsFold(trueTokens, value)
}

func isFalseToken(value string) bool {
	return containsFold(falseTokens, value)
}

func containsFold(tokens []string, value string) bool {
	for _, t := range tokens {
		if strings.EqualFold(t, value) {
			return true
		}
	}
	return false
}

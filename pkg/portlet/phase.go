package portlet

// Phase identifies the portlet lifecycle phase a URL targets.
type Phase int

const (
	// PhaseUnknown means the phase is decided by the caller context.
	PhaseUnknown Phase = iota
	PhaseAction
	PhaseRender
	PhaseResource
)

func (p Phase) String() string {
	switch p {
	case PhaseAction:
		return "ACTION_PHASE"
	case PhaseRender:
		return "RENDER_PHASE"
	case PhaseResource:
		return "RESOURCE_PHASE"
	default:
		return "UNKNOWN_PHASE"
	}
}

// ParsePhase maps a portlet: keyword (action, render, resource) to a Phase.
func ParsePhase(keyword string) (Phase, error) {
	switch keyword {
	case "action":
		return PhaseAction, nil
	case "render":
		return PhaseRender, nil
	case "resource":
		return PhaseResource, nil
	default:
		return PhaseUnknown, ErrUnknownPhase
	}
}

// lifecycle returns the numeric lifecycle used in rendered portal URLs.
func (p Phase) lifecycle() string {
	switch p {
	case PhaseAction:
		return "1"
	case PhaseResource:
		return "2"
	default:
		return "0"
	}
}

package bridgeurl

// Report is a snapshot of everything the bridge derives from a URL.
type Report struct {
	Parameters          map[string][]string `json:"parameters"`
	URL                 string              `json:"url"`
	Error               string              `json:"error,omitempty"`
	CurrentViewID       string              `json:"current_view_id,omitempty"`
	Kind                string              `json:"kind"`
	PortletPhase        string              `json:"portlet_phase"`
	ContextRelativePath string              `json:"context_relative_path"`
	ViewIDParameterName string              `json:"view_id_parameter_name"`
	Formatted           string              `json:"formatted"`
	Rendered            string              `json:"rendered"`
	Absolute            bool                `json:"absolute"`
	Relative            bool                `json:"relative"`
	Opaque              bool                `json:"opaque"`
	Hierarchical        bool                `json:"hierarchical"`
	PathRelative        bool                `json:"path_relative"`
	PortletScheme       bool                `json:"portlet_scheme"`
	External            bool                `json:"external"`
	Escaped             bool                `json:"escaped"`
	Secure              bool                `json:"secure"`
	SelfReferencing     bool                `json:"self_referencing"`
	FacesViewTarget     bool                `json:"faces_view_target"`
}

// Describe evaluates every predicate and accessor of u.
// Rendered is the container output (see URL.String).
func Describe(u *URL) Report {
	var errMsg string
	if err := u.Err(); err != nil {
		errMsg = err.Error()
	}
	return Report{
		Error:               errMsg,
		URL:                 u.Raw(),
		CurrentViewID:       u.CurrentViewID(),
		Kind:                u.Kind().String(),
		PortletPhase:        u.PortletPhase().String(),
		ContextRelativePath: u.ContextRelativePath(),
		ViewIDParameterName: u.ViewIDParameterName(),
		Parameters:          u.ParameterMap().Map(),
		Formatted:           u.Format(false),
		Rendered:            u.String(),
		Absolute:            u.IsAbsolute(),
		Relative:            u.IsRelative(),
		Opaque:              u.IsOpaque(),
		Hierarchical:        u.IsHierarchical(),
		PathRelative:        u.IsPathRelative(),
		PortletScheme:       u.IsPortletScheme(),
		External:            u.IsExternal(),
		Escaped:             u.IsEscaped(),
		Secure:              u.IsSecure(),
		SelfReferencing:     u.IsSelfReferencing(),
		FacesViewTarget:     u.IsFacesViewTarget(),
	}
}

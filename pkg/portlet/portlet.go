package portlet

import "io"

// BaseURL is a mutable URL builder issued by the container.
type BaseURL interface {
	// SetParameter replaces all values of the named parameter.
	SetParameter(name string, values []string)

	// SetSecure requests a secure (https) URL.
	SetSecure(secure bool) error

	// Write renders the URL to w. When escape is true, XML special
	// characters are escaped (so & becomes &amp;).
	Write(w io.Writer, escape bool) error

	// String renders the URL without escaping.
	String() string
}

// PortletURL is a BaseURL that targets the action or render phase.
type PortletURL interface {
	BaseURL

	SetPortletMode(mode Mode) error
	SetWindowState(state WindowState) error
}

// Container issues URL builders for the three portlet phases.
type Container interface {
	CreateActionURL() PortletURL
	CreateRenderURL() PortletURL
	CreateResourceURL() BaseURL
}

// Request exposes the parts of the current portlet request the bridge reads.
// Returned maps are treated as read-only.
type Request interface {
	ContextPath() string
	PublicParameterMap() map[string][]string
	PrivateParameterMap() map[string][]string
}

// NewRequest returns a Request backed by fixed values.
func NewRequest(contextPath string, public, private map[string][]string) Request {
	return &staticRequest{
		contextPath: contextPath,
		public:      public,
		private:     private,
	}
}

type staticRequest struct {
	public      map[string][]string
	private     map[string][]string
	contextPath string
}

func (r *staticRequest) ContextPath() string                      { return r.contextPath }
func (r *staticRequest) PublicParameterMap() map[string][]string  { return r.public }
func (r *staticRequest) PrivateParameterMap() map[string][]string { return r.private }

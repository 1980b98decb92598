package bridgeurl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/facesbridge/pkg/bridgeurl"
	"github.com/dmitrymomot/facesbridge/pkg/portlet"
)

func TestPortletPhase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		expected portlet.Phase
		warning  string
	}{
		{name: "action", raw: "portlet:action?x=1", expected: portlet.PhaseAction},
		{name: "render", raw: "portlet:render", expected: portlet.PhaseRender},
		{name: "resource", raw: "portlet:resource?r=1", expected: portlet.PhaseResource},
		{name: "unknown keyword", raw: "portlet:bogus", expected: portlet.PhaseResource, warning: "invalid keyword after 'portlet:'"},
		{name: "empty URL", raw: "", expected: portlet.PhaseResource, warning: "unable to determine portlet phase"},
		{name: "plain path", raw: "/app/views/a.xhtml", expected: portlet.PhaseUnknown},
		{name: "external", raw: "http://example.com", expected: portlet.PhaseUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			log, buf := newTestLogger()
			u := newFactory("/app", nil, bridgeurl.WithLogger(log)).ActionURL(tt.raw, "")

			assert.Equal(t, tt.expected, u.PortletPhase())
			assert.Equal(t, tt.expected, u.PortletPhase())
			if tt.warning != "" {
				assert.Contains(t, buf.String(), tt.warning)
				assert.Contains(t, buf.String(), `"level":"WARN"`)
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

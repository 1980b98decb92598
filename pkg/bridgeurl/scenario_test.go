package bridgeurl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/facesbridge/pkg/bridgeurl"
	"github.com/dmitrymomot/facesbridge/pkg/portlet"
)

func newFactory(contextPath string, c portlet.Container, opts ...bridgeurl.Option) *bridgeurl.Factory {
	return bridgeurl.NewFactory(portlet.NewRequest(contextPath, nil, nil), c, testConfig{}, opts...)
}

func TestScenario_PortletSchemeActionWithMode(t *testing.T) {
	t.Parallel()

	c := &mockContainer{}
	u := newFactory("/ctx", c).RenderURL(
		"portlet:action?javax.portlet.faces.PortletMode=view&id=42",
		"/views/home.xhtml",
	)

	assert.Equal(t, portlet.PhaseAction, u.PortletPhase())
	assert.True(t, u.IsPortletScheme())
	assert.False(t, u.IsExternal())
	assert.Equal(t, "?javax.portlet.faces.PortletMode=view&id=42", u.Format(false))

	base, err := u.ToBaseURL()
	require.NoError(t, err)
	require.Same(t, c.last, base)
	assert.Equal(t, portlet.PhaseAction, c.last.phase)
	assert.Equal(t, portlet.ModeView, c.last.mode)
	assert.Equal(t, []string{"42"}, c.last.params["id"])
	assert.NotContains(t, c.last.params, bridgeurl.PortletModeParam)
	assert.Equal(t, []string{"/views/home.xhtml"}, c.last.params[renderViewIDParam])
}

func TestScenario_ExternalAbsoluteURL(t *testing.T) {
	t.Parallel()

	c := &mockContainer{}
	u := newFactory("/ctx", c).RenderURL("https://example.com/img.png", "/views/home.xhtml")

	assert.True(t, u.IsAbsolute())
	assert.True(t, u.IsExternal())
	assert.False(t, u.IsPortletScheme())
	assert.Empty(t, u.ContextRelativePath())
	assert.False(t, u.IsFacesViewTarget())
	assert.Equal(t, "https://example.com/img.png", u.String())
	assert.Nil(t, c.last, "external URLs must not reach the container")
}

func TestScenario_ViewTargetByPathAndExtension(t *testing.T) {
	t.Parallel()

	c := &mockContainer{}
	u := newFactory("/app", c).RenderURL("/app/views/bar.xhtml?x=1", "/views/foo.xhtml")

	assert.Equal(t, "/views/bar.xhtml", u.ContextRelativePath())
	assert.True(t, u.IsFacesViewTarget())
	assert.Equal(t, "/app/views/bar.xhtml?x=1&"+renderViewIDParam+"=/views/bar.xhtml", u.Format(false))

	_, err := u.ToBaseURL()
	require.NoError(t, err)
	assert.Equal(t, portlet.PhaseRender, c.last.phase)
	assert.Equal(t, []string{"x", renderViewIDParam}, c.last.order)
	assert.Equal(t, []string{"/views/bar.xhtml"}, c.last.params[renderViewIDParam])
}

func TestScenario_EscapedQuery(t *testing.T) {
	t.Parallel()

	u := newFactory("/app", &mockContainer{}).RenderURL("/app/page?a=1&amp;b=2&amp;c=3", "")

	assert.True(t, u.IsEscaped())
	assert.Equal(t, map[string][]string{
		"a": {"1"},
		"b": {"2"},
		"c": {"3"},
	}, u.ParameterMap().Map())
	assert.Equal(t, "/app/page?a=1&b=2&c=3", u.Format(false))
	assert.NotContains(t, u.Format(false), "&amp;")

	// Not a view target, so the string form keeps the input escape style.
	assert.Equal(t, "/app/page?a=1&amp;b=2&amp;c=3", u.String())
}

func TestScenario_InvalidReservedValueDropped(t *testing.T) {
	t.Parallel()

	u := newFactory("/app", &mockContainer{}).RenderURL(
		"/app/page?javax.portlet.faces.PortletMode=bogus&id=7",
		"/home",
	)

	assert.Equal(t, "/app/page?id=7&"+renderViewIDParam+"=/page", u.Format(false))
	assert.Equal(t, "bogus", u.Parameter(bridgeurl.PortletModeParam), "invalid values stay in the map")
}

func TestScenario_RenderStateDoesNotReplaceTargetView(t *testing.T) {
	t.Parallel()

	req := portlet.NewRequest("/app", nil, map[string][]string{
		renderViewIDParam: {"/views/a.xhtml"},
		"tab":             {"2"},
	})
	c := &mockContainer{}
	u := bridgeurl.NewFactory(req, c, testConfig{}).RenderURL("/app/views/b.xhtml", "/views/a.xhtml")

	_, err := u.ToBaseURL()
	require.NoError(t, err)
	assert.Equal(t, []string{"/views/b.xhtml"}, c.last.params[renderViewIDParam])
	assert.Equal(t, []string{"2"}, c.last.params["tab"])
}

func TestScenario_RenderStateKeepsViewWhenNotInjected(t *testing.T) {
	t.Parallel()

	req := portlet.NewRequest("/app", nil, map[string][]string{
		renderViewIDParam: {"/views/a.xhtml"},
	})
	c := &mockContainer{}
	u := bridgeurl.NewFactory(req, c, testConfig{}).RenderURL(
		"/app/views/b.xhtml?javax.portlet.faces.PortletMode=edit",
		"/views/a.xhtml",
	)

	_, err := u.ToBaseURL()
	require.NoError(t, err)
	assert.Equal(t, portlet.ModeEdit, c.last.mode)
	assert.Equal(t, []string{"/views/a.xhtml"}, c.last.params[renderViewIDParam])
}

func TestScenario_PublicRenderParameterMerge(t *testing.T) {
	t.Parallel()

	req := portlet.NewRequest("/app",
		map[string][]string{
			"locale":                        {"en"},
			"id":                            {"999"},
			bridgeurl.DefaultViewStateParam: {"state"},
		},
		map[string][]string{
			"tab":       {"2"},
			"preserved": {"p"},
		},
	)
	c := &mockContainer{}
	f := bridgeurl.NewFactory(req, c, testConfig{},
		bridgeurl.WithPreservedActionParams(map[string][]string{"preserved": {"x"}}),
	)

	u := f.RenderURL("/app/views/foo.xhtml?id=1", "/views/foo.xhtml")
	_, err := u.ToBaseURL()
	require.NoError(t, err)

	assert.Equal(t, []string{"en"}, c.last.params["locale"])
	assert.Equal(t, []string{"1"}, c.last.params["id"])
	assert.Equal(t, []string{"2"}, c.last.params["tab"])
	assert.NotContains(t, c.last.params, bridgeurl.DefaultViewStateParam)
	assert.NotContains(t, c.last.params, "preserved")
}

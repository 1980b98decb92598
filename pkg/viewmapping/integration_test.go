package viewmapping_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/facesbridge/pkg/bridgeurl"
	"github.com/dmitrymomot/facesbridge/pkg/config"
	"github.com/dmitrymomot/facesbridge/pkg/portlet"
	"github.com/dmitrymomot/facesbridge/pkg/viewmapping"
)

func TestResolverDrivesViewTargets(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	r, err := viewmapping.New(
		viewmapping.WithMappings(cfg.ServletMappings...),
		viewmapping.WithDefaultSuffixes(cfg.DefaultSuffixes...),
	)
	require.NoError(t, err)

	portal := portlet.NewPortal(portlet.WithPortletID("demo"))
	f := bridgeurl.NewFactory(
		portlet.NewRequest("/app", nil, nil),
		portal,
		cfg,
		bridgeurl.WithViewResolver(r),
	)

	u := f.RenderURL("/app/faces/other/page.xhtml?x=1", "/home.xhtml")
	require.True(t, u.IsFacesViewTarget())
	assert.Equal(t,
		"/web/guest/home?p_p_id=demo&p_p_lifecycle=0&_demo_x=1&_demo__facesViewIdRender=%2Ffaces%2Fother%2Fpage.xhtml",
		u.String(),
	)

	u = f.RenderURL("/app/other/page.html", "/home.xhtml")
	assert.False(t, u.IsFacesViewTarget())
	assert.Equal(t, "/app/other/page.html", u.String())
}

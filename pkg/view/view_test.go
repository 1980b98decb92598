package view_test

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/facesbridge/pkg/bridgeurl"
	"github.com/dmitrymomot/facesbridge/pkg/config"
	"github.com/dmitrymomot/facesbridge/pkg/portlet"
	"github.com/dmitrymomot/facesbridge/pkg/view"
)

func newFactory() *bridgeurl.Factory {
	return bridgeurl.NewFactory(
		portlet.NewRequest("/app", nil, nil),
		portlet.NewPortal(portlet.WithPortletID("demo")),
		config.Default(),
	)
}

func TestHref(t *testing.T) {
	t.Parallel()

	f := newFactory()

	t.Run("escaped view target renders unescaped", func(t *testing.T) {
		t.Parallel()

		u := f.RenderURL("/app/views/a.xhtml?x=1&amp;y=2", "/views/a.xhtml")
		assert.Equal(t,
			templ.SafeURL("/web/guest/home?p_p_id=demo&p_p_lifecycle=0&_demo_x=1&_demo_y=2&_demo__facesViewIdRender=%2Fviews%2Fa.xhtml"),
			view.Href(u),
		)
	})

	t.Run("external", func(t *testing.T) {
		t.Parallel()

		u := f.RenderURL("https://example.com/a?b=c", "/views/a.xhtml")
		assert.Equal(t, templ.SafeURL("https://example.com/a?b=c"), view.Href(u))
	})

	t.Run("unsafe scheme", func(t *testing.T) {
		t.Parallel()

		u := f.RenderURL("javascript:alert(1)", "/views/a.xhtml")
		assert.Equal(t, templ.FailedSanitizationURL, view.Href(u))
	})
}

func TestLink(t *testing.T) {
	t.Parallel()

	f := newFactory()
	u := f.RenderURL("/app/views/a.xhtml?x=1&y=2", "/views/a.xhtml")

	var b strings.Builder
	require.NoError(t, view.Link(u, "Tom & Jerry").Render(context.Background(), &b))
	assert.Equal(t,
		`<a href="/web/guest/home?p_p_id=demo&amp;p_p_lifecycle=0&amp;_demo_x=1&amp;_demo_y=2&amp;_demo__facesViewIdRender=%2Fviews%2Fa.xhtml">Tom &amp; Jerry</a>`,
		b.String(),
	)
}

func TestLink_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var b strings.Builder
	err := view.Link(newFactory().RenderURL("/app/x.xhtml", ""), "x").Render(ctx, &b)
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, b.String())
}

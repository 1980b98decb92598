package bridgeurl_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/facesbridge/pkg/bridgeurl"
	"github.com/dmitrymomot/facesbridge/pkg/logger"
)

func TestWithContext_ExtractorsApplyToDiagnostics(t *testing.T) {
	t.Parallel()

	buf := &logBuffer{}
	log := slog.New(logger.NewLogHandlerDecorator(
		slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}),
		logger.WindowIDExtractor(),
	))
	ctx := logger.WithWindowID(context.Background(), "window-7")

	f := newFactory("/app", &mockContainer{},
		bridgeurl.WithLogger(log),
		bridgeurl.WithContext(ctx),
	)

	assert.Equal(t, "RESOURCE_PHASE", f.RenderURL("portlet:bogus", "").PortletPhase().String())
	f.RenderURL("/app/page?a=b=c", "").ParameterMap()
	assert.True(t, f.RenderURL("/app/views/b.xhtml", "/views/a.xhtml").IsFacesViewTarget())

	out := buf.String()
	assert.Contains(t, out, `"msg":"invalid keyword after 'portlet:'","url":"portlet:bogus","window_id":"window-7"`)
	assert.Contains(t, out, `"msg":"invalid name=value pair in URL"`)
	assert.Contains(t, out, `"msg":"path has the same directory and extension as the current view"`)
	assert.Equal(t, 3, strings.Count(out, `"window_id":"window-7"`))
}

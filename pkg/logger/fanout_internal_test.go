package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFanout(t *testing.T) {
	t.Parallel()

	var debug, errs bytes.Buffer
	h := fanout{
		slog.NewTextHandler(&debug, &slog.HandlerOptions{Level: slog.LevelDebug}),
		slog.NewTextHandler(&errs, &slog.HandlerOptions{Level: slog.LevelError}),
	}
	log := slog.New(h).With(slog.String("portlet", "p1"))

	log.Debug("detail")
	log.Error("broken")

	assert.Contains(t, debug.String(), "msg=detail")
	assert.Contains(t, debug.String(), "msg=broken")
	assert.NotContains(t, errs.String(), "detail")
	assert.Contains(t, errs.String(), "msg=broken portlet=p1")
}

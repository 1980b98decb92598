package bridgeurl_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/dmitrymomot/facesbridge/pkg/portlet"
)

const (
	renderViewIDParam   = "_facesViewIdRender"
	resourceViewIDParam = "_facesViewIdResource"
)

type testConfig struct{}

func (testConfig) ViewIDRenderParameterName() string   { return renderViewIDParam }
func (testConfig) ViewIDResourceParameterName() string { return resourceViewIDParam }

// mockURL records every call the bridge makes on a container URL.
type mockURL struct {
	params    map[string][]string
	order     []string
	mode      portlet.Mode
	state     portlet.WindowState
	modeErr   error
	stateErr  error
	secureErr error
	writeErr  error
	phase     portlet.Phase
	secure    bool
}

func (m *mockURL) SetParameter(name string, values []string) {
	if _, ok := m.params[name]; !ok {
		m.order = append(m.order, name)
	}
	m.params[name] = values
}

func (m *mockURL) SetSecure(secure bool) error {
	if m.secureErr != nil {
		return m.secureErr
	}
	m.secure = secure
	return nil
}

func (m *mockURL) SetPortletMode(mode portlet.Mode) error {
	if m.modeErr != nil {
		return m.modeErr
	}
	m.mode = mode
	return nil
}

func (m *mockURL) SetWindowState(state portlet.WindowState) error {
	if m.stateErr != nil {
		return m.stateErr
	}
	m.state = state
	return nil
}

func (m *mockURL) Write(w io.Writer, escape bool) error {
	if m.writeErr != nil {
		return m.writeErr
	}
	sep := "&"
	if escape {
		sep = "&amp;"
	}
	_, err := io.WriteString(w, m.render(sep))
	return err
}

func (m *mockURL) String() string {
	return m.render("&")
}

func (m *mockURL) render(sep string) string {
	parts := make([]string, 0, len(m.order))
	for _, name := range m.order {
		for _, v := range m.params[name] {
			parts = append(parts, name+"="+v)
		}
	}
	return "portal:" + m.phase.String() + "?" + strings.Join(parts, sep)
}

// mockContainer hands out mockURLs and remembers the last one.
type mockContainer struct {
	last      *mockURL
	modeErr   error
	stateErr  error
	secureErr error
	writeErr  error
}

func (c *mockContainer) CreateActionURL() portlet.PortletURL { return c.newURL(portlet.PhaseAction) }
func (c *mockContainer) CreateRenderURL() portlet.PortletURL { return c.newURL(portlet.PhaseRender) }
func (c *mockContainer) CreateResourceURL() portlet.BaseURL  { return c.newURL(portlet.PhaseResource) }

func (c *mockContainer) newURL(phase portlet.Phase) *mockURL {
	c.last = &mockURL{
		params:    map[string][]string{},
		phase:     phase,
		modeErr:   c.modeErr,
		stateErr:  c.stateErr,
		secureErr: c.secureErr,
		writeErr:  c.writeErr,
	}
	return c.last
}

var errBoom = errors.New("boom")

// logBuffer is a goroutine-safe buffer for captured log output.
type logBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *logBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *logBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestLogger() (*slog.Logger, *logBuffer) {
	buf := &logBuffer{}
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

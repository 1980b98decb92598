package portlet_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/facesbridge/pkg/portlet"
)

func TestIsValidMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value    string
		expected bool
	}{
		{"view", true},
		{"edit", true},
		{"help", true},
		{"VIEW", true},
		{"bogus", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, portlet.IsValidMode(tt.value))
		})
	}
}

func TestIsValidWindowState(t *testing.T) {
	t.Parallel()

	require.True(t, portlet.IsValidWindowState("normal"))
	require.True(t, portlet.IsValidWindowState("Maximized"))
	require.True(t, portlet.IsValidWindowState("minimized"))
	require.False(t, portlet.IsValidWindowState("pop_up"))
	require.False(t, portlet.IsValidWindowState(""))
}

func TestBooleanTokens(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"true", "TRUE", "yes", "on", "1"} {
		require.True(t, portlet.IsBooleanToken(v), v)
		require.True(t, portlet.ParseBool(v), v)
	}
	for _, v := range []string{"false", "No", "off", "0"} {
		require.True(t, portlet.IsBooleanToken(v), v)
		require.False(t, portlet.ParseBool(v), v)
	}
	for _, v := range []string{"", "maybe", "2"} {
		require.False(t, portlet.IsBooleanToken(v), v)
		require.False(t, portlet.ParseBool(v), v)
	}
}

func TestParsePhase(t *testing.T) {
	t.Parallel()

	p, err := portlet.ParsePhase("action")
	require.NoError(t, err)
	require.Equal(t, portlet.PhaseAction, p)

	p, err = portlet.ParsePhase("resource")
	require.NoError(t, err)
	require.Equal(t, portlet.PhaseResource, p)
	require.Equal(t, "RESOURCE_PHASE", p.String())

	p, err = portlet.ParsePhase("bogus")
	require.ErrorIs(t, err, portlet.ErrUnknownPhase)
	require.Equal(t, portlet.PhaseUnknown, p)
}

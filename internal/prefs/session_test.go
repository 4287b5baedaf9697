package prefs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLastPathRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)

	got, err := LoadLastPath()
	require.NoError(t, err)
	require.Empty(t, got)

	require.NoError(t, SaveLastPath("/shopping"))
	require.NoError(t, SaveLastPath("/counter"))

	got, err = LoadLastPath()
	require.NoError(t, err)
	require.Equal(t, "/counter", got)
}

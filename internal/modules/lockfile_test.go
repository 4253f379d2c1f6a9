package modules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLockfileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	lf, err := LoadLockfile(dir)
	require.NoError(t, err)
	require.Empty(t, lf.Dependencies)

	lf.SetDependency("http://example.com/mathutils", "1.0.0", true, "root")
	require.NoError(t, lf.Save())

	reloaded, err := LoadLockfile(dir)
	require.NoError(t, err)
	entry, ok := reloaded.GetDependency("http://example.com/mathutils")
	require.True(t, ok)
	require.Equal(t, "1.0.0", entry.Version)
	require.True(t, entry.Direct)
	require.Contains(t, entry.UsedBy, "root")
}

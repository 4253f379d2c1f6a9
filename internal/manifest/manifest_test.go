package manifest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseDependenciesPathNotVersion(t *testing.T) {
	src := `
package app
version "1.0.0"
files {
}
dependencies {
  mathutils "http://example.com/mathutils",
  vendored "../vendor/util"
}
`
	m, err := Parse("yak.pkg", src)
	require.NoError(t, err)
	require.Len(t, m.Deps, 2)
	require.Equal(t, "mathutils", m.Deps[0].PackageID)
	require.Equal(t, "http://example.com/mathutils", m.Deps[0].Path)
	require.Equal(t, "vendored", m.Deps[1].PackageID)
	require.Equal(t, "../vendor/util", m.Deps[1].Path)
}

func TestParseImportClassifiesPrimitiveByName(t *testing.T) {
	src := `
package app
version "1.0.0"
import mathutils.core {
  int, square
}
`
	m, err := Parse("yak.pkg", src)
	require.NoError(t, err)
	require.Len(t, m.Imports, 1)
	require.Len(t, m.Imports[0].Symbols, 2)
	require.Equal(t, "Primitive", m.Imports[0].Symbols[0].Kind)
	require.Equal(t, "Var", m.Imports[0].Symbols[1].Kind)
}

func TestParseImportAliasKindMismatchIsError(t *testing.T) {
	src := `
package app
version "1.0.0"
import mathutils.core {
  square as SquareType
}
`
	_, err := Parse("yak.pkg", src)
	require.Error(t, err)
}

func TestParseImportDuplicateAliasIsError(t *testing.T) {
	src := `
package app
version "1.0.0"
import mathutils.core {
  square, square
}
`
	_, err := Parse("yak.pkg", src)
	require.Error(t, err)
}

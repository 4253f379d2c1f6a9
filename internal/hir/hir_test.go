package hir

import (
	"testing"

	"github.com/stretchr/testify/require"

	"compiler/internal/parser"
)

func TestFromFileLowersConstantsStructsAndFunctions(t *testing.T) {
	src := "const MAX: int = 1\nstruct Point\n  x: int\n  y: int\nfn :main {} =>\n  return\n"
	f, err := parser.ParseFile("t.yak", src)
	require.NoError(t, err)

	mod, err := FromFile("geom", f)
	require.NoError(t, err)
	require.Equal(t, "geom", mod.ID.Name())
	require.Len(t, mod.ConstantDefs, 1)
	require.Equal(t, "geom#MAX", mod.ConstantDefs[0].ID.Name())
	require.Len(t, mod.StructDefs, 1)
	require.Equal(t, "geom#Point", mod.StructDefs[0].ID.Name())
	require.Len(t, mod.StructDefs[0].Fields, 2)
	require.Equal(t, "geom#int", mod.StructDefs[0].Fields[0].Type.Name())
	require.Len(t, mod.FunctionDefs, 1)
	require.True(t, mod.FunctionDefs[0].ID.IsMain)
}

func TestFromFileLowersParamTypes(t *testing.T) {
	src := "fn :add {a: int, b: int} int =>\n  return a\n"
	f, err := parser.ParseFile("t.yak", src)
	require.NoError(t, err)

	mod, err := FromFile("mathutils", f)
	require.NoError(t, err)
	require.Len(t, mod.FunctionDefs, 1)
	require.Len(t, mod.FunctionDefs[0].Params, 2)
	require.Equal(t, "mathutils#int", mod.FunctionDefs[0].Params[0].Type.Name())
	require.Equal(t, "mathutils#int", mod.FunctionDefs[0].Params[1].Type.Name())
}

func TestFromFileRejectsEmptyPackageID(t *testing.T) {
	f, err := parser.ParseFile("t.yak", "const X: int = 1\n")
	require.NoError(t, err)
	_, err = FromFile("", f)
	require.Error(t, err)
}

func TestMergeDeduplicatesByModuleName(t *testing.T) {
	var h Hir
	h.Merge(ModuleDef{ID: NewModuleID("a")})
	h.Merge(ModuleDef{ID: NewModuleID("a")})
	h.Merge(ModuleDef{ID: NewModuleID("b")})
	require.Len(t, h.Modules, 2)
}

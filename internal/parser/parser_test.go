package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"compiler/internal/ast"
)

func TestParseConstInteger(t *testing.T) {
	f, err := ParseFile("t.yak", "const MAX: int = 100\n")
	require.NoError(t, err)
	require.Len(t, f.Stmts, 1)
	decl, ok := f.Stmts[0].(*ast.ConstDecl)
	require.True(t, ok)
	require.Equal(t, "MAX", decl.Name)
	lit, ok := decl.Value.(*ast.IntLiteral)
	require.True(t, ok)
	require.EqualValues(t, 100, lit.Value)
}

func TestParseStructWithNestedGenerics(t *testing.T) {
	src := "struct Box\n  items: List[Map[str, List[int]]]\n"
	f, err := ParseFile("t.yak", src)
	require.NoError(t, err)
	decl, ok := f.Stmts[0].(*ast.StructDecl)
	require.True(t, ok)
	require.Equal(t, "Box", decl.Name)
	require.Len(t, decl.Fields, 1)
	gt, ok := decl.Fields[0].FieldType.(*ast.GenericType)
	require.True(t, ok)
	require.Equal(t, "List", gt.Name)
	inner, ok := gt.Args[0].(*ast.GenericType)
	require.True(t, ok)
	require.Equal(t, "Map", inner.Name)
}

func TestParseFunctionWithIfElifElse(t *testing.T) {
	src := "fn :classify {n: int} str =>\n" +
		"  if n == 0 then\n" +
		"    return \"zero\"\n" +
		"  elif n == 1 then\n" +
		"    return \"one\"\n" +
		"  else\n" +
		"    return \"many\"\n"
	f, err := ParseFile("t.yak", src)
	require.NoError(t, err)
	fn, ok := f.Stmts[0].(*ast.FuncDecl)
	require.True(t, ok)
	require.Equal(t, ":classify", fn.Name)
	require.Len(t, fn.Body, 1)
	ifs, ok := fn.Body[0].(*ast.IfStmt)
	require.True(t, ok)
	require.Len(t, ifs.Elifs, 1)
	require.NotNil(t, ifs.Else)
}

func TestParseTypeDecl(t *testing.T) {
	f, err := ParseFile("t.yak", "type UserId int\n")
	require.NoError(t, err)
	decl, ok := f.Stmts[0].(*ast.TypeDecl)
	require.True(t, ok)
	require.Equal(t, "UserId", decl.Name)
	nt, ok := decl.BaseType.(*ast.NamedType)
	require.True(t, ok)
	require.Equal(t, "int", nt.Name)
}

func TestParsePrimitiveDecl(t *testing.T) {
	f, err := ParseFile("t.yak", "primitive Celsius float64\n")
	require.NoError(t, err)
	decl, ok := f.Stmts[0].(*ast.PrimitiveDecl)
	require.True(t, ok)
	require.Equal(t, "Celsius", decl.Name)
	nt, ok := decl.BaseType.(*ast.NamedType)
	require.True(t, ok)
	require.Equal(t, "float64", nt.Name)
}

func TestTopLevelIndentationRejected(t *testing.T) {
	_, err := ParseFile("t.yak", "  const X: int = 1\n")
	require.Error(t, err)
}

func TestPowerOperatorIsLeftAssociative(t *testing.T) {
	f, err := ParseFile("t.yak", "const X: int = 2 ** 3 ** 2\n")
	require.NoError(t, err)
	decl := f.Stmts[0].(*ast.ConstDecl)
	outer, ok := decl.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	// left associative means the left child is itself the `2 ** 3` group
	_, leftIsBinary := outer.Lhs.(*ast.BinaryExpr)
	require.True(t, leftIsBinary, "** must bind left-to-right, not right-to-left")
}

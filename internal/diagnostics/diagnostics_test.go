package diagnostics

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"compiler/internal/source"
)

func TestReportHasErrors(t *testing.T) {
	r := Report{
		{Message: "unused import", Severity: Warning, Phase: ParsingPhase},
	}
	require.False(t, r.HasErrors())

	r = append(r, &Diagnostic{Message: "unexpected token", Severity: Error, Phase: LexingPhase})
	require.True(t, r.HasErrors())
}

func TestSourceSnippetReadsOffendingLine(t *testing.T) {
	dir := t.TempDir()
	file := dir + "/sample.yak"
	require.NoError(t, os.WriteFile(file, []byte("let x: int = 1\n"), 0o644))

	loc := source.NewLocation(&source.Position{Line: 1, Column: 5}, &source.Position{Line: 1, Column: 6})
	snippet, underline, ok := sourceSnippet(file, loc, 1)
	require.True(t, ok)
	require.Contains(t, snippet, "let x: int = 1")
	require.Contains(t, underline, "^")
}

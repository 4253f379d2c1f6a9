package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"compiler/internal/token"
)

func kinds(toks []token.Token) []token.TOKEN {
	out := make([]token.TOKEN, 0, len(toks))
	for _, t := range toks {
		out = append(out, t.Kind)
	}
	return out
}

func TestIndentEmittedOncePerLine(t *testing.T) {
	toks, err := Tokenize("t.yak", "let x = 1\n  let y = 2\n")
	require.NoError(t, err)

	var indents []int
	for _, tok := range toks {
		if tok.Kind == token.INDENT_TOKEN {
			indents = append(indents, tok.Indent)
		}
	}
	require.Equal(t, []int{0, 2}, indents)
}

func TestOperatorDisambiguation(t *testing.T) {
	cases := map[string]token.TOKEN{
		"=":   token.ASSIGN_TOKEN,
		"==":  token.EQ_TOKEN,
		"=>":  token.FAT_ARROW_TOKEN,
		"!":   token.NOT_TOKEN,
		"!=":  token.NEQ_TOKEN,
		">":   token.GT_TOKEN,
		">=":  token.GTE_TOKEN,
		">>":  token.SHR_TOKEN,
		">>=": token.SHR_ASSIGN_TOKEN,
		"**":  token.EXP_TOKEN,
		"//":  token.IDIV_TOKEN,
		"::":  token.DCOLON_TOKEN,
		"^=":  token.XOR_ASSIGN_TOKEN,
	}
	for src, want := range cases {
		toks, err := Tokenize("t.yak", src)
		require.NoError(t, err, src)
		// toks[0] is the Indent(0) that opens the first line
		require.Equal(t, want, toks[1].Kind, src)
	}
}

func TestFuncAndTraitIdentifiers(t *testing.T) {
	toks, err := Tokenize("t.yak", ":doThing ^Comparable")
	require.NoError(t, err)
	require.Equal(t, token.FUNC_ID_TOKEN, toks[1].Kind)
	require.Equal(t, ":doThing", toks[1].Lexeme)

	var trait *token.Token
	for i := range toks {
		if toks[i].Kind == token.TRAIT_ID_TOKEN {
			trait = &toks[i]
		}
	}
	require.NotNil(t, trait)
	require.Equal(t, "^Comparable", trait.Lexeme)
}

func TestIdentityResolutionOrder(t *testing.T) {
	toks, err := Tokenize("t.yak", "value Type pkg.sub pkg.Thing")
	require.NoError(t, err)
	require.Equal(t, []token.TOKEN{
		token.INDENT_TOKEN,
		token.VAR_ID_TOKEN, token.SP_TOKEN,
		token.TYPE_ID_TOKEN, token.SP_TOKEN,
		token.PACKAGE_ID_TOKEN, token.SP_TOKEN,
		token.PACKAGE_TYPE_ID_TOKEN,
		token.EOF_TOKEN,
	}, kinds(toks))
}

func TestNumberLiteralBoundary(t *testing.T) {
	toks, err := Tokenize("t.yak", "9223372036854775807 18446744073709551615 -5 3.14")
	require.NoError(t, err)

	var lits []token.Token
	for _, tok := range toks {
		switch tok.Kind {
		case token.INT_TOKEN, token.UINT_TOKEN, token.FLOAT_TOKEN:
			lits = append(lits, tok)
		}
	}
	require.Len(t, lits, 4)
	require.Equal(t, token.INT_TOKEN, lits[0].Kind, "signed max stays signed")
	require.Equal(t, token.UINT_TOKEN, lits[1].Kind, "beyond signed max becomes unsigned")
	require.Equal(t, token.INT_TOKEN, lits[2].Kind)
	require.Equal(t, token.FLOAT_TOKEN, lits[3].Kind)
}

func TestStringWithEscapedQuote(t *testing.T) {
	toks, err := Tokenize("t.yak", `"say \"hi\""`)
	require.NoError(t, err)
	require.Equal(t, token.STRING_TOKEN, toks[1].Kind)
	require.Equal(t, `"say \"hi\""`, toks[1].Lexeme)
}

func TestUnrecognizedTokenErrors(t *testing.T) {
	_, err := Tokenize("t.yak", "@@@")
	require.Error(t, err)
}

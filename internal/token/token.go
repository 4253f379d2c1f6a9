// Package token defines the lexical token vocabulary shared by the
// lexer and parser.
package token

import "compiler/internal/source"

type TOKEN string

const (
	// Trivia. Unlike most lexers these are never discarded — the parser
	// decides when a Space, Newline or Indent run is significant.
	SP_TOKEN      TOKEN = "Space"
	NL_TOKEN      TOKEN = "Newline"
	INDENT_TOKEN  TOKEN = "Indent"
	COMMENT_TOKEN TOKEN = "Comment"
	EOF_TOKEN     TOKEN = "EOF"

	// Literals and identifiers.
	INT_TOKEN    TOKEN = "LitInt"
	FLOAT_TOKEN  TOKEN = "LitFloat"
	UINT_TOKEN   TOKEN = "LitUInt"
	STRING_TOKEN TOKEN = "LitString"
	BYTE_TOKEN   TOKEN = "LitByte"
	BOOL_TOKEN   TOKEN = "LitBool"

	VAR_ID_TOKEN          TOKEN = "IdVar"
	PACKAGE_ID_TOKEN      TOKEN = "IdPackage"
	FUNC_ID_TOKEN         TOKEN = "IdFunc"
	PACKAGE_FUNC_ID_TOKEN TOKEN = "IdPackageFunc"
	TYPE_ID_TOKEN         TOKEN = "IdType"
	PACKAGE_TYPE_ID_TOKEN TOKEN = "IdPackageType"
	TRAIT_ID_TOKEN        TOKEN = "IdTrait"
	PACKAGE_TRAIT_ID      TOKEN = "IdPackageTrait"

	// Keywords.
	KW_AS        TOKEN = "KwAs"
	KW_BREAK     TOKEN = "KwBreak"
	KW_CASE      TOKEN = "KwCase"
	KW_CONST     TOKEN = "KwConst"
	KW_CONTINUE  TOKEN = "KwContinue"
	KW_ELIF      TOKEN = "KwElif"
	KW_ELSE      TOKEN = "KwElse"
	KW_ENUM      TOKEN = "KwEnum"
	KW_FN        TOKEN = "KwFn"
	KW_FOR       TOKEN = "KwFor"
	KW_IF        TOKEN = "KwIf"
	KW_IMPL      TOKEN = "KwImpl"
	KW_IN        TOKEN = "KwIn"
	KW_LAZY      TOKEN = "KwLazy"
	KW_LET       TOKEN = "KwLet"
	KW_MATCH     TOKEN = "KwMatch"
	KW_PRIMITIVE TOKEN = "KwPrimitive"
	KW_RETURN    TOKEN = "KwReturn"
	KW_SELF      TOKEN = "KwSelf"
	KW_STRUCT    TOKEN = "KwStruct"
	KW_TEST      TOKEN = "KwTest"
	KW_TESTCASE  TOKEN = "KwTestCase"
	KW_THEN      TOKEN = "KwThen"
	KW_TRAIT     TOKEN = "KwTrait"
	KW_TYPE      TOKEN = "KwType"
	KW_WHILE     TOKEN = "KwWhile"

	// Package manifest keywords.
	KW_PACKAGE     TOKEN = "KwPackage"
	KW_VERSION     TOKEN = "KwVersion"
	KW_DESCRIPTION TOKEN = "KwDescription"
	KW_DEPS        TOKEN = "KwDependencies"
	KW_EXPORT      TOKEN = "KwExport"
	KW_IMPORT      TOKEN = "KwImport"
	KW_FILES       TOKEN = "KwFiles"

	// Punctuation.
	BRACE_L_TOKEN   TOKEN = "BraceL"
	BRACE_R_TOKEN   TOKEN = "BraceR"
	BRACKET_L_TOKEN TOKEN = "BracketL"
	BRACKET_R_TOKEN TOKEN = "BracketR"
	PAREN_L_TOKEN   TOKEN = "ParenL"
	PAREN_R_TOKEN   TOKEN = "ParenR"
	COLON_TOKEN     TOKEN = "Colon"
	DCOLON_TOKEN    TOKEN = "DoubleColon"
	COMMA_TOKEN     TOKEN = "Comma"
	DOT_TOKEN       TOKEN = "Dot"
	EXCLAIM_TOKEN   TOKEN = "PunctExclamation"

	// Operators, in the exact disambiguation order the lexer resolves
	// them on single-character lookahead.
	ASSIGN_TOKEN        TOKEN = "OpAssign"
	EQ_TOKEN            TOKEN = "OpEqual"
	FAT_ARROW_TOKEN     TOKEN = "OpFatArrow"
	NOT_TOKEN           TOKEN = "OpUnaryNot"
	NEQ_TOKEN           TOKEN = "OpNotEqual"
	GT_TOKEN            TOKEN = "OpGreater"
	GTE_TOKEN           TOKEN = "OpGreaterEqual"
	SHR_TOKEN           TOKEN = "OpShiftRight"
	SHR_ASSIGN_TOKEN    TOKEN = "OpAssignShiftRight"
	LT_TOKEN            TOKEN = "OpLess"
	LTE_TOKEN           TOKEN = "OpLessEqual"
	SHL_TOKEN           TOKEN = "OpShiftLeft"
	SHL_ASSIGN_TOKEN    TOKEN = "OpAssignShiftLeft"
	PLUS_TOKEN          TOKEN = "OpPlus"
	UPLUS_TOKEN         TOKEN = "OpUnaryPlus"
	PLUS_ASSIGN_TOKEN   TOKEN = "OpAssignPlus"
	MINUS_TOKEN         TOKEN = "OpMinus"
	UMINUS_TOKEN        TOKEN = "OpUnaryMinus"
	MINUS_ASSIGN_TOKEN  TOKEN = "OpAssignMinus"
	DIV_TOKEN           TOKEN = "OpDiv"
	IDIV_TOKEN          TOKEN = "OpIntDiv"
	DIV_ASSIGN_TOKEN    TOKEN = "OpAssignDiv"
	MUL_TOKEN           TOKEN = "OpMul"
	EXP_TOKEN           TOKEN = "OpExp"
	MUL_ASSIGN_TOKEN    TOKEN = "OpAssignMul"
	MOD_TOKEN           TOKEN = "OpMod"
	MOD_ASSIGN_TOKEN    TOKEN = "OpAssignMod"
	BIT_AND_TOKEN       TOKEN = "OpBitwiseAnd"
	AND_TOKEN           TOKEN = "OpLogicalAnd"
	BIT_OR_TOKEN        TOKEN = "OpBitwiseOr"
	OR_TOKEN            TOKEN = "OpLogicalOr"
	BIT_XOR_TOKEN       TOKEN = "OpBitwiseXor"
	XOR_ASSIGN_TOKEN    TOKEN = "OpAssignBitwiseXOr"

	IDENTIFIER_TOKEN TOKEN = "Identifier" // fallback, never emitted once identity rules are exhaustive
)

// Token is one lexical unit: its kind, its exact source text and the
// span it occupies. Trivia tokens (Space, Newline, Indent, Comment)
// carry the same shape so the parser can consume them uniformly.
type Token struct {
	Kind    TOKEN
	Lexeme  string
	Indent  int // only meaningful when Kind == INDENT_TOKEN
	Location source.Location
}

func New(kind TOKEN, lexeme string, start, end *source.Position) Token {
	return Token{Kind: kind, Lexeme: lexeme, Location: *source.NewLocation(start, end)}
}

func (t Token) String() string {
	return string(t.Kind) + "(" + t.Lexeme + ")"
}

// IsTrivia reports whether this token is whitespace-class trivia that
// most statement-level parsing skips over but never discards at the
// lexer.
func (t Token) IsTrivia() bool {
	switch t.Kind {
	case SP_TOKEN, NL_TOKEN, INDENT_TOKEN, COMMENT_TOKEN:
		return true
	default:
		return false
	}
}

var keywords = map[string]TOKEN{
	"as": KW_AS, "break": KW_BREAK, "case": KW_CASE, "const": KW_CONST,
	"continue": KW_CONTINUE, "elif": KW_ELIF, "else": KW_ELSE, "enum": KW_ENUM,
	"fn": KW_FN, "for": KW_FOR, "if": KW_IF, "impl": KW_IMPL, "in": KW_IN,
	"lazy": KW_LAZY, "let": KW_LET, "match": KW_MATCH, "primitive": KW_PRIMITIVE,
	"return": KW_RETURN, "self": KW_SELF, "struct": KW_STRUCT, "test": KW_TEST,
	"testcase": KW_TESTCASE, "then": KW_THEN, "trait": KW_TRAIT, "type": KW_TYPE,
	"while": KW_WHILE,
	"package": KW_PACKAGE, "version": KW_VERSION, "description": KW_DESCRIPTION,
	"dependencies": KW_DEPS, "export": KW_EXPORT, "import": KW_IMPORT, "files": KW_FILES,
}

// LookupKeyword returns the keyword token for word, if any.
func LookupKeyword(word string) (TOKEN, bool) {
	kw, ok := keywords[word]
	return kw, ok
}

package parser

import (
	"fmt"
	"strings"

	"compiler/internal/ast"
	"compiler/internal/lexer"
	"compiler/internal/source"
	"compiler/internal/token"
)

// Parser is the recursive-descent statement parser. Recoverable
// per-declaration failures are appended to Errors; Parse fails with a
// summary once Errors is non-empty, exactly as the resolver/lowerer
// downstream expect.
type Parser struct {
	c      *cursor
	file   string
	Errors []error
}

// New builds a parser directly over an already-lexed token stream.
func New(file string, toks []token.Token) *Parser {
	return &Parser{c: newCursor(toks), file: file}
}

// ParseFile lexes and parses src in one step.
func ParseFile(file, src string) (*ast.File, error) {
	toks, err := lexer.Tokenize(file, src)
	if err != nil {
		return nil, err
	}
	return New(file, toks).Parse()
}

// Parse consumes the whole token stream and returns the file's
// top-level statement list.
func (p *Parser) Parse() (*ast.File, error) {
	f := &ast.File{Path: p.file}
	start := p.c.peek().Location.Start

	for !p.c.eof() {
		p.c.skipTrivia()
		if p.c.eof() {
			break
		}
		if p.c.peek().Kind == token.INDENT_TOKEN {
			indentTok := p.c.next()
			if indentTok.Indent > 0 {
				p.Errors = append(p.Errors, &ParseError{
					Pos: *indentTok.Location.Start, Msg: "top-level indentation not allowed",
				})
			}
			continue
		}

		stmt, err := p.parseTopLevel()
		if err != nil {
			p.Errors = append(p.Errors, err)
			p.recoverToNextTopLevel()
			continue
		}
		f.Stmts = append(f.Stmts, stmt)
	}

	end := p.c.peek().Location.End
	f.Location = *source.NewLocation(start, end)

	if len(p.Errors) > 0 {
		return f, p.summarizeErrors()
	}
	return f, nil
}

func (p *Parser) summarizeErrors() error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d parse error(s) in %s:\n", len(p.Errors), p.file)
	for _, e := range p.Errors {
		fmt.Fprintf(&sb, "  - %s\n", e)
	}
	return fmt.Errorf("%s", sb.String())
}

// recoverToNextTopLevel skips tokens until the next top-level Indent(0)
// boundary so a single bad declaration doesn't abort the whole file.
func (p *Parser) recoverToNextTopLevel() {
	for !p.c.eof() {
		if p.c.peek().Kind == token.INDENT_TOKEN && p.c.peek().Indent == 0 {
			return
		}
		p.c.next()
	}
}

func (p *Parser) parseTopLevel() (ast.Stmt, error) {
	tok := p.c.peek()
	switch tok.Kind {
	case token.KW_CONST:
		return p.parseConstDecl()
	case token.KW_STRUCT:
		return p.parseStructDecl()
	case token.KW_ENUM:
		return p.parseEnumDecl()
	case token.KW_TRAIT:
		return p.parseTraitDecl()
	case token.KW_FN:
		return p.parseFuncDecl("")
	case token.KW_IMPL:
		return p.parseImplDecl()
	case token.KW_TEST:
		return p.parseTestDecl()
	case token.KW_TYPE:
		return p.parseTypeDecl()
	case token.KW_PRIMITIVE:
		return p.parsePrimitiveDecl()
	case token.KW_LET:
		return p.parseVarDecl(false)
	default:
		return nil, &ParseError{Pos: *tok.Location.Start, Msg: "unexpected top-level token " + string(tok.Kind)}
	}
}

func (p *Parser) parseConstDecl() (ast.Stmt, error) {
	kw, _ := p.c.expect(token.KW_CONST)
	p.c.skipTrivia()
	// constant names may be lower-case (VarId) or upper-case (`MAX`,
	// which the lexer classifies as a TypeId)
	name := p.c.peek()
	if name.Kind != token.VAR_ID_TOKEN && name.Kind != token.TYPE_ID_TOKEN {
		return nil, &ParseError{Pos: *name.Location.Start,
			Msg: fmt.Sprintf("expected a constant name, got %s %q", name.Kind, name.Lexeme)}
	}
	p.c.next()
	p.c.skipTrivia()
	if _, err := p.c.expect(token.COLON_TOKEN); err != nil {
		return nil, err
	}
	p.c.skipTrivia()
	ty, err := p.parseType()
	if err != nil {
		return nil, err
	}
	p.c.skipTrivia()
	if _, err := p.c.expect(token.ASSIGN_TOKEN); err != nil {
		return nil, err
	}
	p.c.skipTrivia()
	ep := newExprParser(p.c)
	val, err := ep.Parse()
	if err != nil {
		return nil, err
	}
	return &ast.ConstDecl{Name: name.Lexeme, VarType: ty, Value: val,
		Location: *source.NewLocation(kw.Location.Start, val.Loc().End)}, nil
}

func (p *Parser) parseVarDecl(lazy bool) (ast.Stmt, error) {
	kw := p.c.next() // KW_LET or KW_LAZY already peeked by caller
	p.c.skipTrivia()
	name, err := p.c.expect(token.VAR_ID_TOKEN)
	if err != nil {
		return nil, err
	}
	var ty ast.Type
	p.c.skipSpaceAndComment()
	if p.c.at(token.COLON_TOKEN) {
		p.c.next()
		p.c.skipTrivia()
		ty, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}
	p.c.skipTrivia()
	if _, err := p.c.expect(token.ASSIGN_TOKEN); err != nil {
		return nil, err
	}
	p.c.skipTrivia()
	ep := newExprParser(p.c)
	val, err := ep.Parse()
	if err != nil {
		return nil, err
	}
	return &ast.VarDecl{Name: name.Lexeme, VarType: ty, Value: val, Lazy: lazy,
		Location: *source.NewLocation(kw.Location.Start, val.Loc().End)}, nil
}

// parseStructDecl parses `struct TypeName[Generics]` followed by an
// indented field list (§6's illustrative BNF: `struct type NL
// indent_block(field)`), one `name: Type` per line.
func (p *Parser) parseStructDecl() (ast.Stmt, error) {
	kw, _ := p.c.expect(token.KW_STRUCT)
	p.c.skipTrivia()
	name, err := p.c.expect(token.TYPE_ID_TOKEN)
	if err != nil {
		return nil, err
	}
	generics, err := p.parseOptionalGenericsParams()
	if err != nil {
		return nil, err
	}

	indentTok, err := p.consumeToIndent()
	if err != nil {
		return nil, err
	}
	if indentTok.Indent == 0 {
		return nil, &ParseError{Pos: *indentTok.Location.Start, Msg: "expected an indented field list"}
	}
	level := indentTok.Indent

	var fields []ast.Field
	num := 0
	end := *indentTok.Location.End
	for {
		fname, err := p.c.expect(token.VAR_ID_TOKEN)
		if err != nil {
			return nil, err
		}
		p.c.skipTrivia()
		if _, err := p.c.expect(token.COLON_TOKEN); err != nil {
			return nil, err
		}
		p.c.skipTrivia()
		fty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		fields = append(fields, ast.Field{Name: fname.Lexeme, FieldNum: num, FieldType: fty,
			Location: *source.NewLocation(fname.Location.Start, fty.Loc().End)})
		num++
		end = *fty.Loc().End

		if !p.atSiblingKeyword(level, token.VAR_ID_TOKEN) {
			break
		}
		p.c.next() // consume Indent(level)
	}

	return &ast.StructDecl{Name: name.Lexeme, Generics: generics, Fields: fields,
		Location: *source.NewLocation(kw.Location.Start, &end)}, nil
}

func (p *Parser) parseOptionalGenericsParams() ([]string, error) {
	p.c.skipSpaceAndComment()
	if !p.c.at(token.BRACKET_L_TOKEN) {
		return nil, nil
	}
	p.c.next()
	var names []string
	for {
		p.c.skipTrivia()
		t, err := p.c.expect(token.TYPE_ID_TOKEN)
		if err != nil {
			return nil, err
		}
		names = append(names, t.Lexeme)
		p.c.skipTrivia()
		if p.c.at(token.COMMA_TOKEN) {
			p.c.next()
			continue
		}
		break
	}
	if _, err := p.c.expect(token.BRACKET_R_TOKEN); err != nil {
		return nil, err
	}
	return names, nil
}

// parseEnumDecl parses `enum TypeName` followed by an indented variant
// list (§6: `enum type_id NL indent_block(variant)`). Each variant is a
// TypeId optionally followed by a brace body classified per §4.2: a
// Colon anywhere inside makes it a Struct variant, bare type names make
// it a Tuple variant, and an empty or absent body makes it a None
// variant.
func (p *Parser) parseEnumDecl() (ast.Stmt, error) {
	kw, _ := p.c.expect(token.KW_ENUM)
	p.c.skipTrivia()
	name, err := p.c.expect(token.TYPE_ID_TOKEN)
	if err != nil {
		return nil, err
	}

	indentTok, err := p.consumeToIndent()
	if err != nil {
		return nil, err
	}
	if indentTok.Indent == 0 {
		return nil, &ParseError{Pos: *indentTok.Location.Start, Msg: "expected an indented variant list"}
	}
	level := indentTok.Indent

	var variants []ast.EnumVariant
	end := *indentTok.Location.End
	for {
		v, err := p.c.expect(token.TYPE_ID_TOKEN)
		if err != nil {
			return nil, err
		}
		variant := ast.EnumVariant{Name: v.Lexeme, Kind: ast.EnumVariantNone, Location: v.Location}
		end = *v.Location.End

		p.c.skipSpaceAndComment()
		if p.c.at(token.BRACE_L_TOKEN) {
			kind, fields, types, braceEnd, err := p.parseEnumVariantBody()
			if err != nil {
				return nil, err
			}
			variant.Kind = kind
			variant.Fields = fields
			variant.Types = types
			variant.Location = *source.NewLocation(v.Location.Start, braceEnd)
			end = *braceEnd
		}
		variants = append(variants, variant)

		if !p.atSiblingKeyword(level, token.TYPE_ID_TOKEN) {
			break
		}
		p.c.next() // consume Indent(level)
	}

	return &ast.EnumDecl{Name: name.Lexeme, Variants: variants,
		Location: *source.NewLocation(kw.Location.Start, &end)}, nil
}

// parseEnumVariantBody parses one variant's brace-delimited body. The
// caller has already peeked the opening brace but not consumed it.
func (p *Parser) parseEnumVariantBody() (ast.EnumVariantKind, []ast.Field, []ast.Type, *source.Position, error) {
	if _, err := p.c.expect(token.BRACE_L_TOKEN); err != nil {
		return "", nil, nil, nil, err
	}

	isStruct := p.groupContainsBeforeClose(token.COLON_TOKEN)

	if isStruct {
		var fields []ast.Field
		num := 0
		for {
			p.c.skipTrivia()
			if p.c.at(token.BRACE_R_TOKEN) {
				break
			}
			fname, err := p.c.expect(token.VAR_ID_TOKEN)
			if err != nil {
				return "", nil, nil, nil, err
			}
			p.c.skipTrivia()
			if _, err := p.c.expect(token.COLON_TOKEN); err != nil {
				return "", nil, nil, nil, err
			}
			p.c.skipTrivia()
			fty, err := p.parseType()
			if err != nil {
				return "", nil, nil, nil, err
			}
			fields = append(fields, ast.Field{Name: fname.Lexeme, FieldNum: num, FieldType: fty,
				Location: *source.NewLocation(fname.Location.Start, fty.Loc().End)})
			num++
			p.c.skipTrivia()
			if p.c.at(token.COMMA_TOKEN) {
				p.c.next()
				continue
			}
			break
		}
		end, err := p.c.expect(token.BRACE_R_TOKEN)
		if err != nil {
			return "", nil, nil, nil, err
		}
		return ast.EnumVariantStruct, fields, nil, end.Location.End, nil
	}

	var types []ast.Type
	for {
		p.c.skipTrivia()
		if p.c.at(token.BRACE_R_TOKEN) {
			break
		}
		ty, err := p.parseType()
		if err != nil {
			return "", nil, nil, nil, err
		}
		types = append(types, ty)
		p.c.skipTrivia()
		if p.c.at(token.COMMA_TOKEN) {
			p.c.next()
			continue
		}
		break
	}
	end, err := p.c.expect(token.BRACE_R_TOKEN)
	if err != nil {
		return "", nil, nil, nil, err
	}
	kind := ast.EnumVariantTuple
	if len(types) == 0 {
		kind = ast.EnumVariantNone
	}
	return kind, nil, types, end.Location.End, nil
}

// groupContainsBeforeClose scans forward, without consuming anything,
// from directly inside an already-opened (balance 1) brace group for
// kind before the matching close — the same lookahead the Pratt
// parser uses to tell a struct value from a tuple value.
func (p *Parser) groupContainsBeforeClose(kind token.TOKEN) bool {
	balance := 1
	for i := 0; ; i++ {
		tok := p.c.peekAt(i)
		switch tok.Kind {
		case token.EOF_TOKEN:
			return false
		case token.BRACE_L_TOKEN:
			balance++
		case token.BRACE_R_TOKEN:
			balance--
			if balance == 0 {
				return false
			}
		case kind:
			if balance == 1 {
				return true
			}
		}
	}
}

func (p *Parser) parseTraitDecl() (ast.Stmt, error) {
	kw, _ := p.c.expect(token.KW_TRAIT)
	p.c.skipTrivia()
	name, err := p.c.expect(token.TRAIT_ID_TOKEN)
	if err != nil {
		return nil, err
	}
	p.c.skipTrivia()
	if _, err := p.c.expect(token.BRACE_L_TOKEN); err != nil {
		return nil, err
	}
	var methods []ast.FuncSignature
	for {
		p.c.skipTrivia()
		if p.c.at(token.BRACE_R_TOKEN) {
			break
		}
		sig, err := p.parseFuncSignature()
		if err != nil {
			return nil, err
		}
		methods = append(methods, sig)
		p.c.skipTrivia()
		if p.c.at(token.COMMA_TOKEN) {
			p.c.next()
			continue
		}
	}
	end, err := p.c.expect(token.BRACE_R_TOKEN)
	if err != nil {
		return nil, err
	}
	return &ast.TraitDecl{Name: name.Lexeme, Methods: methods,
		Location: *source.NewLocation(kw.Location.Start, end.Location.End)}, nil
}

// parseFuncSignature parses a bare, body-less trait method shape:
// `:name {params} [ReturnType]`. There is no arrow between the params
// and the return type; its presence is decided by what follows the
// closing brace not being a separator.
func (p *Parser) parseFuncSignature() (ast.FuncSignature, error) {
	name, err := p.c.expect(token.FUNC_ID_TOKEN)
	if err != nil {
		return ast.FuncSignature{}, err
	}
	params, err := p.parseParamList()
	if err != nil {
		return ast.FuncSignature{}, err
	}
	var ret ast.Type
	end := name.Location.End
	p.c.skipSpaceAndComment()
	if !p.c.at(token.COMMA_TOKEN) && !p.c.at(token.BRACE_R_TOKEN) && !p.c.at(token.NL_TOKEN) {
		ret, err = p.parseType()
		if err != nil {
			return ast.FuncSignature{}, err
		}
		end = ret.Loc().End
	}
	return ast.FuncSignature{Name: name.Lexeme, Params: params, Returns: ret,
		Location: *source.NewLocation(name.Location.Start, end)}, nil
}

// parseParamList parses a function's brace-delimited argument list:
// `{ (name: Type)* }`, per §4.2 ("Input args are a brace-delimited
// list of (name: Type)").
func (p *Parser) parseParamList() ([]ast.Param, error) {
	p.c.skipSpaceAndComment()
	if _, err := p.c.expect(token.BRACE_L_TOKEN); err != nil {
		return nil, err
	}
	var params []ast.Param
	for {
		p.c.skipTrivia()
		if p.c.at(token.BRACE_R_TOKEN) {
			break
		}
		pname, err := p.c.expect(token.VAR_ID_TOKEN)
		if err != nil {
			return nil, err
		}
		p.c.skipTrivia()
		if _, err := p.c.expect(token.COLON_TOKEN); err != nil {
			return nil, err
		}
		p.c.skipTrivia()
		pty, err := p.parseType()
		if err != nil {
			return nil, err
		}
		params = append(params, ast.Param{Name: pname.Lexeme, ParamType: pty,
			Location: *source.NewLocation(pname.Location.Start, pty.Loc().End)})
		p.c.skipTrivia()
		if p.c.at(token.COMMA_TOKEN) {
			p.c.next()
			continue
		}
		break
	}
	if _, err := p.c.expect(token.BRACE_R_TOKEN); err != nil {
		return nil, err
	}
	return params, nil
}

// parseFuncDecl parses `fn :name[Generics] self {params} ReturnType => body`.
// self and ReturnType are both optional; there is no arrow between the
// param list and the return type, only the mandatory `=>` before the body.
func (p *Parser) parseFuncDecl(structName string) (ast.Stmt, error) {
	kw, _ := p.c.expect(token.KW_FN)
	p.c.skipTrivia()
	name, err := p.c.expect(token.FUNC_ID_TOKEN)
	if err != nil {
		return nil, err
	}
	generics, err := p.parseOptionalGenericsParams()
	if err != nil {
		return nil, err
	}
	p.c.skipSpaceAndComment()
	isSelf := false
	if p.c.at(token.KW_SELF) {
		p.c.next()
		isSelf = true
	}
	params, err := p.parseParamList()
	if err != nil {
		return nil, err
	}
	var ret ast.Type
	p.c.skipSpaceAndComment()
	if !p.c.at(token.FAT_ARROW_TOKEN) {
		ret, err = p.parseType()
		if err != nil {
			return nil, err
		}
		p.c.skipSpaceAndComment()
	}
	if _, err := p.c.expect(token.FAT_ARROW_TOKEN); err != nil {
		return nil, err
	}
	body, end, err := p.parseIndentBlock()
	if err != nil {
		return nil, err
	}
	return &ast.FuncDecl{Name: name.Lexeme, StructName: structName, IsSelf: isSelf, Generics: generics,
		Params: params, Returns: ret, Body: body,
		Location: *source.NewLocation(kw.Location.Start, &end)}, nil
}

func (p *Parser) parseImplDecl() (ast.Stmt, error) {
	kw, _ := p.c.expect(token.KW_IMPL)
	p.c.skipTrivia()
	trait, err := p.c.expect(token.TRAIT_ID_TOKEN)
	if err != nil {
		return nil, err
	}
	p.c.skipTrivia()
	if _, err := p.c.expect(token.KW_FOR); err != nil {
		return nil, err
	}
	p.c.skipTrivia()
	ty, err := p.c.expect(token.TYPE_ID_TOKEN)
	if err != nil {
		return nil, err
	}
	p.c.skipTrivia()
	if _, err := p.c.expect(token.BRACE_L_TOKEN); err != nil {
		return nil, err
	}
	var methods []*ast.FuncDecl
	for {
		p.c.skipTrivia()
		if p.c.at(token.BRACE_R_TOKEN) {
			break
		}
		m, err := p.parseFuncDecl(ty.Lexeme)
		if err != nil {
			return nil, err
		}
		methods = append(methods, m.(*ast.FuncDecl))
	}
	end, err := p.c.expect(token.BRACE_R_TOKEN)
	if err != nil {
		return nil, err
	}
	return &ast.ImplDecl{TraitName: trait.Lexeme, TypeName: ty.Lexeme, Methods: methods,
		Location: *source.NewLocation(kw.Location.Start, end.Location.End)}, nil
}

// parseTestDecl parses `test "description"` followed by an indented
// list of `testcase "name" => body` entries, one indent level deeper
// for consistency with every other body-bearing declaration.
func (p *Parser) parseTestDecl() (ast.Stmt, error) {
	kw, _ := p.c.expect(token.KW_TEST)
	p.c.skipTrivia()
	desc, err := p.c.expect(token.STRING_TOKEN)
	if err != nil {
		return nil, err
	}
	indentTok, err := p.consumeToIndent()
	if err != nil {
		return nil, err
	}
	if indentTok.Indent == 0 {
		return nil, &ParseError{Pos: *indentTok.Location.Start, Msg: "expected an indented testcase list"}
	}
	level := indentTok.Indent

	var cases []ast.TestCase
	end := *indentTok.Location.End
	for {
		ckw, err := p.c.expect(token.KW_TESTCASE)
		if err != nil {
			return nil, err
		}
		p.c.skipTrivia()
		cname, err := p.c.expect(token.STRING_TOKEN)
		if err != nil {
			return nil, err
		}
		p.c.skipSpaceAndComment()
		if _, err := p.c.expect(token.FAT_ARROW_TOKEN); err != nil {
			return nil, err
		}
		body, bodyEnd, err := p.parseIndentBlock()
		if err != nil {
			return nil, err
		}
		cases = append(cases, ast.TestCase{Name: stripQuotes(cname.Lexeme), Body: body,
			Location: *source.NewLocation(ckw.Location.Start, &bodyEnd)})
		end = bodyEnd

		if !p.atSiblingKeyword(level, token.KW_TESTCASE) {
			break
		}
		p.c.next() // consume Indent(level)
	}

	return &ast.TestDecl{Description: stripQuotes(desc.Lexeme), Cases: cases,
		Location: *source.NewLocation(kw.Location.Start, &end)}, nil
}

// parseTypeDecl parses `type Name BaseType`, a bare TypeStmt with no
// field list naming an alias for an existing type.
func (p *Parser) parseTypeDecl() (ast.Stmt, error) {
	kw, _ := p.c.expect(token.KW_TYPE)
	p.c.skipTrivia()
	name, err := p.c.expect(token.TYPE_ID_TOKEN)
	if err != nil {
		return nil, err
	}
	p.c.skipTrivia()
	base, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.TypeDecl{Name: name.Lexeme, BaseType: base,
		Location: *source.NewLocation(kw.Location.Start, base.Loc().End)}, nil
}

// parsePrimitiveDecl parses `primitive Name BaseType`, per the same
// bare-TypeStmt-with-no-fields shape as a type declaration; behavior
// for a generic primitive is left undefined.
func (p *Parser) parsePrimitiveDecl() (ast.Stmt, error) {
	kw, _ := p.c.expect(token.KW_PRIMITIVE)
	p.c.skipTrivia()
	name, err := p.c.expect(token.TYPE_ID_TOKEN)
	if err != nil {
		return nil, err
	}
	p.c.skipTrivia()
	base, err := p.parseType()
	if err != nil {
		return nil, err
	}
	return &ast.PrimitiveDecl{Name: name.Lexeme, BaseType: base,
		Location: *source.NewLocation(kw.Location.Start, base.Loc().End)}, nil
}

package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"compiler/internal/ast"
	"compiler/internal/source"
	"compiler/internal/token"
)

type assoc int

const (
	leftAssoc assoc = iota
	rightAssoc
)

type opInfo struct {
	prec  int
	assoc assoc
	class ast.BinOpClass
}

// infixTable is the exact precedence/associativity table the
// expression grammar is specified against. ** is deliberately left
// associative even though exponentiation conventionally associates to
// the right — preserved as-is rather than "fixed".
var infixTable = map[token.TOKEN]opInfo{
	token.OR_TOKEN:     {30, leftAssoc, ast.LogicalClass},
	token.AND_TOKEN:    {40, leftAssoc, ast.LogicalClass},
	token.EQ_TOKEN:     {50, leftAssoc, ast.BooleanClass},
	token.NEQ_TOKEN:    {50, leftAssoc, ast.BooleanClass},
	token.LT_TOKEN:     {50, leftAssoc, ast.BooleanClass},
	token.LTE_TOKEN:    {50, leftAssoc, ast.BooleanClass},
	token.GT_TOKEN:     {50, leftAssoc, ast.BooleanClass},
	token.GTE_TOKEN:    {50, leftAssoc, ast.BooleanClass},
	token.BIT_OR_TOKEN: {60, rightAssoc, ast.BitwiseClass},
	token.BIT_XOR_TOKEN:{70, rightAssoc, ast.BitwiseClass},
	token.BIT_AND_TOKEN:{80, rightAssoc, ast.BitwiseClass},
	token.SHL_TOKEN:    {90, rightAssoc, ast.BitwiseClass},
	token.SHR_TOKEN:    {90, rightAssoc, ast.BitwiseClass},
	token.PLUS_TOKEN:   {100, leftAssoc, ast.ArithClass},
	token.MINUS_TOKEN:  {100, leftAssoc, ast.ArithClass},
	token.MUL_TOKEN:    {110, leftAssoc, ast.ArithClass},
	token.DIV_TOKEN:    {110, leftAssoc, ast.ArithClass},
	token.IDIV_TOKEN:   {110, leftAssoc, ast.ArithClass},
	token.MOD_TOKEN:    {110, leftAssoc, ast.ArithClass},
	token.EXP_TOKEN:    {120, leftAssoc, ast.ArithClass},
}

const prefixPrec = 140

// ExprParser is the Pratt expression parser, parameterized only over
// the shared cursor so the statement parser can drive it inline.
type ExprParser struct {
	c *cursor
}

func newExprParser(c *cursor) *ExprParser {
	return &ExprParser{c: c}
}

// Parse parses one expression at minimum precedence 0.
func (p *ExprParser) Parse() (ast.Expr, error) {
	return p.parseBinding(0)
}

func (p *ExprParser) parseBinding(minPrec int) (ast.Expr, error) {
	lhs, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for {
		p.c.skipSpaceAndComment()
		tok := p.c.peek()
		info, ok := infixTable[tok.Kind]
		if !ok || info.prec < minPrec {
			return lhs, nil
		}
		p.c.next()
		p.c.skipSpaceAndComment()

		nextMin := info.prec + 1
		if info.assoc == rightAssoc {
			nextMin = info.prec
		}
		rhs, err := p.parseBinding(nextMin)
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{
			Lhs: lhs, Op: string(tok.Kind), Class: info.class, Rhs: rhs,
			Location: *source.NewLocation(lhs.Loc().Start, rhs.Loc().End),
		}
	}
}

func (p *ExprParser) parsePrefix() (ast.Expr, error) {
	p.c.skipSpaceAndComment()
	tok := p.c.peek()

	var op ast.UnaryOp
	switch tok.Kind {
	case token.UPLUS_TOKEN, token.PLUS_TOKEN:
		op = ast.UnaryPlus
	case token.UMINUS_TOKEN, token.MINUS_TOKEN:
		op = ast.UnaryMinus
	case token.NOT_TOKEN:
		op = ast.UnaryNot
	default:
		return p.parsePrimary()
	}

	p.c.next()
	rhs, err := p.parseBinding(prefixPrec)
	if err != nil {
		return nil, err
	}
	return &ast.UnaryExpr{Op: op, Expr: rhs, Location: *source.NewLocation(tok.Location.Start, rhs.Loc().End)}, nil
}

func (p *ExprParser) parsePrimary() (ast.Expr, error) {
	p.c.skipSpaceAndComment()
	tok := p.c.peek()

	switch tok.Kind {
	case token.BOOL_TOKEN:
		p.c.next()
		return &ast.BoolLiteral{Value: tok.Lexeme == "true", Location: tok.Location}, nil

	case token.STRING_TOKEN:
		p.c.next()
		return &ast.StringLiteral{Value: stripQuotes(tok.Lexeme), Location: tok.Location}, nil

	case token.INT_TOKEN:
		p.c.next()
		return parseIntLiteral(tok)

	case token.UINT_TOKEN:
		p.c.next()
		v, err := strconv.ParseUint(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, &ParseError{Pos: *tok.Location.Start, Msg: "invalid unsigned literal: " + tok.Lexeme}
		}
		return &ast.UIntLiteral{Value: v, Raw: tok.Lexeme, Location: tok.Location}, nil

	case token.FLOAT_TOKEN:
		p.c.next()
		v, err := strconv.ParseFloat(tok.Lexeme, 64)
		if err != nil {
			return nil, &ParseError{Pos: *tok.Location.Start, Msg: "invalid float literal: " + tok.Lexeme}
		}
		return &ast.FloatLiteral{Value: v, Raw: tok.Lexeme, Location: tok.Location}, nil

	case token.VAR_ID_TOKEN, token.PACKAGE_ID_TOKEN:
		p.c.next()
		return &ast.Identifier{Name: tok.Lexeme, Location: tok.Location}, nil

	case token.FUNC_ID_TOKEN, token.PACKAGE_FUNC_ID_TOKEN:
		p.c.next()
		return p.parseCallValue(tok)

	case token.TYPE_ID_TOKEN, token.PACKAGE_TYPE_ID_TOKEN:
		p.c.next()
		return p.parseTypeValue(tok)

	case token.PAREN_L_TOKEN:
		p.c.next()
		inner, err := p.Parse()
		if err != nil {
			return nil, err
		}
		end, err := p.c.expect(token.PAREN_R_TOKEN)
		if err != nil {
			return nil, err
		}
		return &ast.ParenExpr{Inner: inner, Location: *source.NewLocation(tok.Location.Start, end.Location.End)}, nil

	default:
		return nil, &ParseError{Pos: *tok.Location.Start, Msg: fmt.Sprintf("unexpected token %s %q in expression", tok.Kind, tok.Lexeme)}
	}
}

// parseIntLiteral classifies a bare digit run the same way the
// original source does at the value-construction boundary: negative
// lexemes parse signed, lexemes with a decimal point parse as float
// (handled earlier by the lexer), everything else parses unsigned and
// is only narrowed to int here when it fits.
func parseIntLiteral(tok token.Token) (ast.Expr, error) {
	if strings.Contains(tok.Lexeme, "-") {
		v, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, &ParseError{Pos: *tok.Location.Start, Msg: "invalid signed literal: " + tok.Lexeme}
		}
		return &ast.IntLiteral{Value: v, Raw: tok.Lexeme, Location: tok.Location}, nil
	}
	v, err := strconv.ParseUint(tok.Lexeme, 10, 64)
	if err != nil {
		return nil, &ParseError{Pos: *tok.Location.Start, Msg: "invalid integer literal: " + tok.Lexeme}
	}
	if v > math.MaxInt64 {
		return &ast.UIntLiteral{Value: v, Raw: tok.Lexeme, Location: tok.Location}, nil
	}
	return &ast.IntLiteral{Value: int64(v), Raw: tok.Lexeme, Location: tok.Location}, nil
}

// parseCallValue collects the brace-balanced group following a FuncId
// token as its comma-separated argument list.
func (p *ExprParser) parseCallValue(id token.Token) (ast.Expr, error) {
	p.c.skipSpaceAndComment()
	if _, err := p.c.expect(token.BRACE_L_TOKEN); err != nil {
		return nil, err
	}
	var args []ast.Expr
	for {
		p.c.skipTrivia()
		if p.c.at(token.BRACE_R_TOKEN) {
			break
		}
		arg, err := p.Parse()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		p.c.skipTrivia()
		if p.c.at(token.COMMA_TOKEN) {
			p.c.next()
			continue
		}
		break
	}
	end, err := p.c.expect(token.BRACE_R_TOKEN)
	if err != nil {
		return nil, err
	}
	return &ast.CallExpr{FuncID: id.Lexeme, Args: args, Location: *source.NewLocation(id.Location.Start, end.Location.End)}, nil
}

// parseTypeValue turns a TypeId value into an enum, struct or tuple
// value. A `::` directly after the TypeId makes an enum value
// (`Color::Red`); otherwise a brace group must follow, and it is a
// struct value when it contains a Colon at its own nesting level, else
// a tuple value.
func (p *ExprParser) parseTypeValue(id token.Token) (ast.Expr, error) {
	p.c.skipSpaceAndComment()

	if p.c.at(token.DCOLON_TOKEN) {
		p.c.next()
		p.c.skipTrivia()
		variant, err := p.c.expect(token.TYPE_ID_TOKEN)
		if err != nil {
			return nil, err
		}
		return &ast.EnumValueExpr{TypeName: id.Lexeme, Variant: variant.Lexeme,
			Location: *source.NewLocation(id.Location.Start, variant.Location.End)}, nil
	}

	if _, err := p.c.expect(token.BRACE_L_TOKEN); err != nil {
		return nil, err
	}

	// Peek ahead for a Colon before the matching brace closes to decide
	// struct-value vs tuple-value, mirroring "group contains Colon".
	isStruct := p.groupContainsBeforeClose(token.COLON_TOKEN)

	if isStruct {
		fields := map[string]ast.Expr{}
		var order []string
		for {
			p.c.skipTrivia()
			if p.c.at(token.BRACE_R_TOKEN) {
				break
			}
			name, err := p.c.expect(token.VAR_ID_TOKEN)
			if err != nil {
				return nil, err
			}
			p.c.skipTrivia()
			if _, err := p.c.expect(token.COLON_TOKEN); err != nil {
				return nil, err
			}
			p.c.skipTrivia()
			val, err := p.Parse()
			if err != nil {
				return nil, err
			}
			fields[name.Lexeme] = val
			order = append(order, name.Lexeme)
			p.c.skipTrivia()
			if p.c.at(token.COMMA_TOKEN) {
				p.c.next()
				continue
			}
			break
		}
		end, err := p.c.expect(token.BRACE_R_TOKEN)
		if err != nil {
			return nil, err
		}
		return &ast.StructValueExpr{TypeName: id.Lexeme, Fields: fields, Order: order,
			Location: *source.NewLocation(id.Location.Start, end.Location.End)}, nil
	}

	var elems []ast.Expr
	for {
		p.c.skipTrivia()
		if p.c.at(token.BRACE_R_TOKEN) {
			break
		}
		val, err := p.Parse()
		if err != nil {
			return nil, err
		}
		elems = append(elems, val)
		p.c.skipTrivia()
		if p.c.at(token.COMMA_TOKEN) {
			p.c.next()
			continue
		}
		break
	}
	end, err := p.c.expect(token.BRACE_R_TOKEN)
	if err != nil {
		return nil, err
	}
	return &ast.TupleValueExpr{TypeName: id.Lexeme, Elements: elems,
		Location: *source.NewLocation(id.Location.Start, end.Location.End)}, nil
}

// groupContainsBeforeClose looks ahead, without consuming, for kind
// before the brace group (assumed already opened, balance 1) closes.
func (p *ExprParser) groupContainsBeforeClose(kind token.TOKEN) bool {
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

func stripQuotes(lexeme string) string {
	if len(lexeme) >= 2 && lexeme[0] == '"' && lexeme[len(lexeme)-1] == '"' {
		return lexeme[1 : len(lexeme)-1]
	}
	return lexeme
}

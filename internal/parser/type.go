package parser

import (
	"compiler/internal/ast"
	"compiler/internal/source"
	"compiler/internal/token"
)

// parseType parses a NamedType or a GenericType with an arbitrarily
// deep bracketed argument list, e.g. `List[Map[str, Pair[int, int]]]`.
func (p *Parser) parseType() (ast.Type, error) {
	p.c.skipTrivia()
	name, err := p.expectAny(token.TYPE_ID_TOKEN, token.PACKAGE_TYPE_ID_TOKEN, token.VAR_ID_TOKEN, token.PACKAGE_ID_TOKEN)
	if err != nil {
		return nil, err
	}

	p.c.skipSpaceAndComment()
	if !p.c.at(token.BRACKET_L_TOKEN) {
		return &ast.NamedType{Name: name.Lexeme, Location: name.Location}, nil
	}

	p.c.next() // consume '['
	var args []ast.Type
	for {
		p.c.skipTrivia()
		arg, err := p.parseType()
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
	end, err := p.c.expect(token.BRACKET_R_TOKEN)
	if err != nil {
		return nil, err
	}
	return &ast.GenericType{Name: name.Lexeme, Args: args,
		Location: *source.NewLocation(name.Location.Start, end.Location.End)}, nil
}

func (p *Parser) expectAny(kinds ...token.TOKEN) (token.Token, error) {
	p.c.skipTrivia()
	got := p.c.peek()
	for _, k := range kinds {
		if got.Kind == k {
			return p.c.next(), nil
		}
	}
	return token.Token{}, &ParseError{Pos: *got.Location.Start, Msg: "expected a type name, got " + string(got.Kind)}
}

// Package manifest parses yak.pkg package manifest files: the
// package/version/description/files/dependencies/import/export
// sections a resolver needs to walk a dependency graph.
package manifest

import (
	"fmt"
	"strings"

	"compiler/internal/ast"
	"compiler/internal/lexer"
	"compiler/internal/semver"
	"compiler/internal/symbol"
	"compiler/internal/token"
)

// ManifestError reports a malformed yak.pkg document.
type ManifestError struct {
	File string
	Msg  string
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("%s: %s", e.File, e.Msg)
}

// Dependency is one `dependencies` entry: a local dependency id paired
// with the location to load it from, either a relative filesystem path
// or an http(s) URL.
type Dependency struct {
	PackageID string
	Path      string
}

// Manifest is the parsed form of one yak.pkg file.
type Manifest struct {
	PackageID   string
	Version     string
	Description string
	Files       []string
	Deps        []Dependency
	Imports     []ast.ImportStmt
	Exports     []ast.ExportStmt

	// IsRoot marks the manifest that started a resolve, as opposed to
	// one reached transitively through a dependency edge.
	IsRoot bool
	// SourceURL is set when the manifest was fetched remotely rather
	// than read off the local filesystem.
	SourceURL string
}

type cursor struct {
	toks []token.Token
	pos  int
	file string
}

func (c *cursor) peek() token.Token {
	if c.pos >= len(c.toks) {
		return token.Token{Kind: token.EOF_TOKEN}
	}
	return c.toks[c.pos]
}

func (c *cursor) next() token.Token {
	t := c.peek()
	if c.pos < len(c.toks) {
		c.pos++
	}
	return t
}

func (c *cursor) skip() {
	for {
		switch c.peek().Kind {
		case token.SP_TOKEN, token.NL_TOKEN, token.COMMENT_TOKEN, token.INDENT_TOKEN:
			c.next()
		default:
			return
		}
	}
}

func (c *cursor) expect(kind token.TOKEN) (token.Token, error) {
	c.skip()
	if c.peek().Kind != kind {
		got := c.peek()
		return token.Token{}, &ManifestError{File: c.file,
			Msg: fmt.Sprintf("expected %s, got %s %q at %s", kind, got.Kind, got.Lexeme, got.Location.String())}
	}
	return c.next(), nil
}

func (c *cursor) at(kind token.TOKEN) bool {
	c.skip()
	return c.peek().Kind == kind
}

// Parse lexes and parses a yak.pkg document.
func Parse(file, src string) (*Manifest, error) {
	toks, err := lexer.Tokenize(file, src)
	if err != nil {
		return nil, err
	}
	c := &cursor{toks: toks, file: file}
	m := &Manifest{}

	for !c.at(token.EOF_TOKEN) {
		tok := c.peek()
		switch tok.Kind {
		case token.KW_PACKAGE:
			c.next()
			id, err := c.expect(token.PACKAGE_ID_TOKEN)
			if err != nil {
				id2, err2 := c.expect(token.VAR_ID_TOKEN)
				if err2 != nil {
					return nil, err
				}
				id = id2
			}
			m.PackageID = id.Lexeme

		case token.KW_VERSION:
			c.next()
			v, err := c.expect(token.STRING_TOKEN)
			if err != nil {
				return nil, err
			}
			ver := strings.Trim(v.Lexeme, `"`)
			if !semver.IsValid(ver) {
				return nil, &ManifestError{File: file, Msg: "invalid semver version: " + ver}
			}
			m.Version = ver

		case token.KW_DESCRIPTION:
			c.next()
			d, err := c.expect(token.STRING_TOKEN)
			if err != nil {
				return nil, err
			}
			m.Description = strings.Trim(d.Lexeme, `"`)

		case token.KW_FILES:
			c.next()
			files, err := parseStringList(c)
			if err != nil {
				return nil, err
			}
			m.Files = files

		case token.KW_DEPS:
			c.next()
			deps, err := parseDependencies(c)
			if err != nil {
				return nil, err
			}
			m.Deps = deps

		case token.KW_IMPORT:
			imp, err := parseImport(c)
			if err != nil {
				return nil, err
			}
			m.Imports = append(m.Imports, imp)

		case token.KW_EXPORT:
			exp, err := parseExport(c)
			if err != nil {
				return nil, err
			}
			m.Exports = append(m.Exports, exp)

		default:
			return nil, &ManifestError{File: file,
				Msg: fmt.Sprintf("unexpected manifest token %s %q", tok.Kind, tok.Lexeme)}
		}
	}

	if m.PackageID == "" {
		return nil, &ManifestError{File: file, Msg: "manifest missing required `package` section"}
	}
	if m.Version == "" {
		return nil, &ManifestError{File: file, Msg: "manifest missing required `version` section"}
	}
	return m, nil
}

func parseStringList(c *cursor) ([]string, error) {
	if _, err := c.expect(token.BRACE_L_TOKEN); err != nil {
		return nil, err
	}
	var out []string
	for {
		c.skip()
		if c.at(token.BRACE_R_TOKEN) {
			break
		}
		s, err := c.expect(token.STRING_TOKEN)
		if err != nil {
			return nil, err
		}
		out = append(out, strings.Trim(s.Lexeme, `"`))
		c.skip()
		if c.at(token.COMMA_TOKEN) {
			c.next()
			continue
		}
		break
	}
	if _, err := c.expect(token.BRACE_R_TOKEN); err != nil {
		return nil, err
	}
	return out, nil
}

// parseDependencies parses `dependencies { (<id> <string>)* }` per
// §4.5: each entry is a local dependency id followed by its path, a
// relative filesystem location or an http(s) URL — there is no
// separate version slot and no colon separator.
func parseDependencies(c *cursor) ([]Dependency, error) {
	if _, err := c.expect(token.BRACE_L_TOKEN); err != nil {
		return nil, err
	}
	var deps []Dependency
	for {
		c.skip()
		if c.at(token.BRACE_R_TOKEN) {
			break
		}
		nameTok := c.peek()
		var name string
		switch nameTok.Kind {
		case token.PACKAGE_ID_TOKEN, token.VAR_ID_TOKEN:
			name = nameTok.Lexeme
			c.next()
		default:
			return nil, &ManifestError{File: c.file, Msg: "expected a dependency package name"}
		}
		pathTok, err := c.expect(token.STRING_TOKEN)
		if err != nil {
			return nil, err
		}
		deps = append(deps, Dependency{PackageID: name, Path: strings.Trim(pathTok.Lexeme, `"`)})
		c.skip()
		if c.at(token.COMMA_TOKEN) {
			c.next()
			continue
		}
		break
	}
	if _, err := c.expect(token.BRACE_R_TOKEN); err != nil {
		return nil, err
	}
	return deps, nil
}

func parseSymbolRefs(c *cursor) ([]ast.SymbolRef, error) {
	if _, err := c.expect(token.BRACE_L_TOKEN); err != nil {
		return nil, err
	}
	scope := symbol.NewScope(nil)
	var refs []ast.SymbolRef
	for {
		c.skip()
		if c.at(token.BRACE_R_TOKEN) {
			break
		}
		ref, symRef, err := symbolRef(c)
		if err != nil {
			return nil, err
		}
		if err := scope.Declare(symRef); err != nil {
			return nil, &ManifestError{File: c.file, Msg: err.Error()}
		}
		refs = append(refs, ref)
		c.skip()
		if c.at(token.COMMA_TOKEN) {
			c.next()
			continue
		}
		break
	}
	if _, err := c.expect(token.BRACE_R_TOKEN); err != nil {
		return nil, err
	}
	return refs, nil
}

// symbolRef parses one `<symbol> [as <symbol>]` entry of an
// import/export list, classifying it through symbol.ClassifyName (so a
// lowercase primitive-type or builtin name is reclassified off of
// Var/Type rather than staying a plain identifier) and validating any
// alias through symbol.NewRef. The returned symbol.Ref is the caller's
// key for detecting a duplicate alias within the same list via Scope.
func symbolRef(c *cursor) (ast.SymbolRef, symbol.Ref, error) {
	tok := c.peek()
	kind, ok := tokenSymbolKind(tok.Kind)
	if !ok {
		return ast.SymbolRef{}, symbol.Ref{}, &ManifestError{File: c.file, Msg: "expected a symbol reference in import/export list"}
	}
	c.next()
	kind = symbol.ClassifyName(kind, tok.Lexeme)

	alias := ""
	c.skip()
	if c.at(token.KW_AS) {
		c.next()
		aliasTok := c.peek()
		if _, ok := tokenSymbolKind(aliasTok.Kind); !ok {
			return ast.SymbolRef{}, symbol.Ref{}, &ManifestError{File: c.file, Msg: "alias must itself be a symbol reference"}
		}
		c.next()
		alias = aliasTok.Lexeme
	}

	symRef, err := symbol.NewRef(kind, tok.Lexeme, alias)
	if err != nil {
		return ast.SymbolRef{}, symbol.Ref{}, &ManifestError{File: c.file, Msg: err.Error()}
	}

	ref := ast.SymbolRef{Kind: string(kind), ID: tok.Lexeme, Alias: alias, Location: tok.Location}
	return ref, symRef, nil
}

// tokenSymbolKind maps a raw identifier token to the identity rule
// that lexed it; the Primitive/Builtin refinement is purely
// name-based and applied afterward by symbol.ClassifyName.
func tokenSymbolKind(kind token.TOKEN) (symbol.Kind, bool) {
	switch kind {
	case token.VAR_ID_TOKEN:
		return symbol.KindVar, true
	case token.FUNC_ID_TOKEN:
		return symbol.KindFunc, true
	case token.TYPE_ID_TOKEN:
		return symbol.KindType, true
	case token.TRAIT_ID_TOKEN:
		return symbol.KindTrait, true
	default:
		return "", false
	}
}

func parseImport(c *cursor) (ast.ImportStmt, error) {
	kw, _ := c.expect(token.KW_IMPORT)
	pkg, err := c.expect(token.PACKAGE_ID_TOKEN)
	if err != nil {
		return ast.ImportStmt{}, err
	}
	syms, err := parseSymbolRefs(c)
	if err != nil {
		return ast.ImportStmt{}, err
	}
	return ast.ImportStmt{Package: pkg.Lexeme, Symbols: syms, Location: kw.Location}, nil
}

func parseExport(c *cursor) (ast.ExportStmt, error) {
	kw, _ := c.expect(token.KW_EXPORT)
	pkgName := ""
	if c.at(token.PACKAGE_ID_TOKEN) {
		pkgName = c.next().Lexeme
	}
	syms, err := parseSymbolRefs(c)
	if err != nil {
		return ast.ExportStmt{}, err
	}
	return ast.ExportStmt{Package: pkgName, Symbols: syms, Location: kw.Location}, nil
}

// Package symbol tracks kinded symbol references (Var, Func, Type,
// Trait, Primitive, Builtin) produced by import/export statements, and
// validates that an `as` alias never changes a symbol's kind.
package symbol

import "fmt"

// Kind classifies the identity rule a symbol's token was resolved
// against.
type Kind string

const (
	KindVar       Kind = "Var"
	KindFunc      Kind = "Func"
	KindType      Kind = "Type"
	KindTrait     Kind = "Trait"
	KindPrimitive Kind = "Primitive"
	KindBuiltin   Kind = "Builtin"
)

var primitives = map[string]bool{
	"bool": true, "byte": true, "char": true,
	"float": true, "float32": true, "float64": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"str": true,
	"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
}

var builtins = map[string]bool{
	"List": true, "Map": true, "Maybe": true, "None": true, "Option": true, "Set": true, "Self": true,
}

// ClassifyName refines a raw identifier into Primitive/Builtin when the
// name matches one of those fixed vocabularies, else returns the kind
// as-is.
func ClassifyName(kind Kind, name string) Kind {
	if primitives[name] {
		return KindPrimitive
	}
	if builtins[name] {
		return KindBuiltin
	}
	return kind
}

// Ref is one resolved symbol: its id (including any FuncId ':' or
// TraitId '^' sigil), its kind, and the alias it is visible under in
// the importing scope (equal to ID when there is no `as` clause).
type Ref struct {
	Kind  Kind
	ID    string
	Alias string
}

// SymbolError reports an alias whose kind disagrees with its source
// symbol, or a duplicate declaration in one scope.
type SymbolError struct {
	Msg string
}

func (e *SymbolError) Error() string { return e.Msg }

// NewRef validates kind-matching between an id and an optional alias
// before constructing a Ref; an empty alias means "not aliased".
func NewRef(kind Kind, id, alias string) (Ref, error) {
	if alias != "" {
		aliasKind := inferKindFromSigil(alias, kind)
		if aliasKind != kind {
			return Ref{}, &SymbolError{Msg: fmt.Sprintf(
				"alias %q does not match kind %s of symbol %q", alias, kind, id)}
		}
	}
	resolved := alias
	if resolved == "" {
		resolved = id
	}
	return Ref{Kind: kind, ID: id, Alias: resolved}, nil
}

// inferKindFromSigil re-derives a Kind from an alias's lexical shape
// (':' prefix => Func, '^' prefix => Trait, upper-case start => Type,
// else Var) so NewRef can catch a caller accidentally aliasing a
// function to a variable-shaped name or similar.
func inferKindFromSigil(name string, fallback Kind) Kind {
	if name == "" {
		return fallback
	}
	switch name[0] {
	case ':':
		return KindFunc
	case '^':
		return KindTrait
	}
	if name[0] >= 'A' && name[0] <= 'Z' {
		return KindType
	}
	return KindVar
}

// Scope is a flat, optionally-nested table of visible symbols, mirroring
// the teacher's scoped symbol table but specialized to reference
// tracking rather than type/value storage.
type Scope struct {
	symbols map[string]Ref
	parent  *Scope
}

func NewScope(parent *Scope) *Scope {
	return &Scope{symbols: make(map[string]Ref), parent: parent}
}

// Declare adds a symbol visible under its alias, erroring on a
// redeclaration within the same scope.
func (s *Scope) Declare(ref Ref) error {
	if _, exists := s.symbols[ref.Alias]; exists {
		return &SymbolError{Msg: fmt.Sprintf("symbol %q already declared in this scope", ref.Alias)}
	}
	s.symbols[ref.Alias] = ref
	return nil
}

// Lookup walks outward through parent scopes until it finds name.
func (s *Scope) Lookup(name string) (Ref, bool) {
	if ref, ok := s.symbols[name]; ok {
		return ref, true
	}
	if s.parent != nil {
		return s.parent.Lookup(name)
	}
	return Ref{}, false
}

package ast

import "compiler/internal/source"

// NamedType is a bare TypeId or a package-qualified TypeId reference,
// e.g. `int`, `Point`, `pkg.Point`.
type NamedType struct {
	Name string
	source.Location
}

func (n *NamedType) INode()                {}
func (n *NamedType) typeNode()              {}
func (n *NamedType) Loc() *source.Location { return &n.Location }

// GenericType is a named type applied to bracketed type arguments,
// e.g. `List[Map[str, int]]`, nested arbitrarily deep.
type GenericType struct {
	Name string
	Args []Type
	source.Location
}

func (n *GenericType) INode()                {}
func (n *GenericType) typeNode()              {}
func (n *GenericType) Loc() *source.Location { return &n.Location }

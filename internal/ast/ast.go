// Package ast defines the syntax tree produced by the statement and
// expression parsers.
package ast

import "compiler/internal/source"

// Node is the root of every tree element: it knows its own source span.
type Node interface {
	INode()
	Loc() *source.Location
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that does not produce a value.
type Stmt interface {
	Node
	stmtNode()
}

// Type is any node occupying a type position.
type Type interface {
	Node
	typeNode()
}

// File is the root of one parsed source file: the flat statement list
// a recursive-descent top-level loop collects, in source order.
type File struct {
	Path  string
	Stmts []Stmt
	source.Location
}

func (f *File) INode()                {}
func (f *File) Loc() *source.Location { return &f.Location }

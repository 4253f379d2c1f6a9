package ast

import "compiler/internal/source"

// Value literals, mirroring the primary rules of the expression parser.

type IntLiteral struct {
	Value int64
	Raw   string
	source.Location
}

func (n *IntLiteral) INode()                {}
func (n *IntLiteral) exprNode()              {}
func (n *IntLiteral) Loc() *source.Location { return &n.Location }

type UIntLiteral struct {
	Value uint64
	Raw   string
	source.Location
}

func (n *UIntLiteral) INode()                {}
func (n *UIntLiteral) exprNode()              {}
func (n *UIntLiteral) Loc() *source.Location { return &n.Location }

type FloatLiteral struct {
	Value float64
	Raw   string
	source.Location
}

func (n *FloatLiteral) INode()                {}
func (n *FloatLiteral) exprNode()              {}
func (n *FloatLiteral) Loc() *source.Location { return &n.Location }

type StringLiteral struct {
	Value string // quotes stripped
	source.Location
}

func (n *StringLiteral) INode()                {}
func (n *StringLiteral) exprNode()              {}
func (n *StringLiteral) Loc() *source.Location { return &n.Location }

type BoolLiteral struct {
	Value bool
	source.Location
}

func (n *BoolLiteral) INode()                {}
func (n *BoolLiteral) exprNode()              {}
func (n *BoolLiteral) Loc() *source.Location { return &n.Location }

// Identifier is a bare variable/package reference.
type Identifier struct {
	Name string
	source.Location
}

func (n *Identifier) INode()                {}
func (n *Identifier) exprNode()              {}
func (n *Identifier) Loc() *source.Location { return &n.Location }

// UnaryOp enumerates the prefix operators the Pratt parser supports.
type UnaryOp string

const (
	UnaryPlus  UnaryOp = "+"
	UnaryMinus UnaryOp = "-"
	UnaryNot   UnaryOp = "!"
)

type UnaryExpr struct {
	Op   UnaryOp
	Expr Expr
	source.Location
}

func (n *UnaryExpr) INode()                {}
func (n *UnaryExpr) exprNode()              {}
func (n *UnaryExpr) Loc() *source.Location { return &n.Location }

// BinOpClass groups operators by family, mirroring the original's
// Op::{Logical,Arith,Boolean,Bitwise} split.
type BinOpClass string

const (
	LogicalClass BinOpClass = "logical"
	ArithClass   BinOpClass = "arith"
	BooleanClass BinOpClass = "boolean"
	BitwiseClass BinOpClass = "bitwise"
)

type BinaryExpr struct {
	Lhs   Expr
	Op    string
	Class BinOpClass
	Rhs   Expr
	source.Location
}

func (n *BinaryExpr) INode()                {}
func (n *BinaryExpr) exprNode()              {}
func (n *BinaryExpr) Loc() *source.Location { return &n.Location }

// CallExpr is a func-id value, e.g. `:doThing{ ... }`.
type CallExpr struct {
	FuncID string
	Args   []Expr
	source.Location
}

func (n *CallExpr) INode()                {}
func (n *CallExpr) exprNode()              {}
func (n *CallExpr) Loc() *source.Location { return &n.Location }

// StructValueExpr is a TypeId value containing at least one `field:
// value` pair, e.g. `Point{ x: 1, y: 2 }`.
type StructValueExpr struct {
	TypeName string
	Fields   map[string]Expr
	Order    []string // preserves source order for stable output
	source.Location
}

func (n *StructValueExpr) INode()                {}
func (n *StructValueExpr) exprNode()              {}
func (n *StructValueExpr) Loc() *source.Location { return &n.Location }

// EnumValueExpr is a TypeId value containing a `::` variant selector,
// e.g. `Color::Red`.
type EnumValueExpr struct {
	TypeName string
	Variant  string
	source.Location
}

func (n *EnumValueExpr) INode()                {}
func (n *EnumValueExpr) exprNode()              {}
func (n *EnumValueExpr) Loc() *source.Location { return &n.Location }

// TupleValueExpr is a TypeId value with neither `:` nor `::` inside its
// braces, e.g. `Pair{ 1, 2 }`.
type TupleValueExpr struct {
	TypeName string
	Elements []Expr
	source.Location
}

func (n *TupleValueExpr) INode()                {}
func (n *TupleValueExpr) exprNode()              {}
func (n *TupleValueExpr) Loc() *source.Location { return &n.Location }

// ParenExpr preserves an explicitly parenthesized group.
type ParenExpr struct {
	Inner Expr
	source.Location
}

func (n *ParenExpr) INode()                {}
func (n *ParenExpr) exprNode()              {}
func (n *ParenExpr) Loc() *source.Location { return &n.Location }

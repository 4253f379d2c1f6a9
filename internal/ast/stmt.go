package ast

import "compiler/internal/source"

// ExprStmt wraps a bare expression used as a statement.
type ExprStmt struct {
	Expr Expr
	source.Location
}

func (n *ExprStmt) INode()                {}
func (n *ExprStmt) stmtNode()              {}
func (n *ExprStmt) Loc() *source.Location { return &n.Location }

// VarDecl is a `let name: Type = expr` or `lazy name: Type = expr`.
type VarDecl struct {
	Name    string
	VarType Type // nil when the type is inferred from Value
	Value   Expr
	Lazy    bool
	source.Location
}

func (n *VarDecl) INode()                {}
func (n *VarDecl) stmtNode()              {}
func (n *VarDecl) Loc() *source.Location { return &n.Location }

// ConstDecl is a `const NAME: Type = expr`.
type ConstDecl struct {
	Name    string
	VarType Type
	Value   Expr
	source.Location
}

func (n *ConstDecl) INode()                {}
func (n *ConstDecl) stmtNode()              {}
func (n *ConstDecl) Loc() *source.Location { return &n.Location }

// Field is one struct field: `name: Type`.
type Field struct {
	Name     string
	FieldNum int
	FieldType Type
	source.Location
}

// StructDecl is a `struct TypeName[Generics]` followed by an indented
// list of `field: Type` lines.
type StructDecl struct {
	Name     string
	Generics []string
	Fields   []Field
	source.Location
}

func (n *StructDecl) INode()                {}
func (n *StructDecl) stmtNode()              {}
func (n *StructDecl) Loc() *source.Location { return &n.Location }

// EnumVariantKind classifies a variant's optional brace body: a Colon
// anywhere inside it makes a Struct variant, bare type names make a
// Tuple variant, and an empty or absent body makes a None variant.
type EnumVariantKind string

const (
	EnumVariantNone   EnumVariantKind = "none"
	EnumVariantTuple  EnumVariantKind = "tuple"
	EnumVariantStruct EnumVariantKind = "struct"
)

// EnumVariant is one line of an enum's indented variant list.
type EnumVariant struct {
	Name   string
	Kind   EnumVariantKind
	Fields []Field // populated for EnumVariantStruct
	Types  []Type  // populated for EnumVariantTuple
	source.Location
}

// EnumDecl is an `enum TypeName` followed by an indented variant list.
type EnumDecl struct {
	Name     string
	Variants []EnumVariant
	source.Location
}

func (n *EnumDecl) INode()                {}
func (n *EnumDecl) stmtNode()              {}
func (n *EnumDecl) Loc() *source.Location { return &n.Location }

// TraitDecl is a `trait ^Name { :method {params} Type, ... }`.
type TraitDecl struct {
	Name    string
	Methods []FuncSignature
	source.Location
}

func (n *TraitDecl) INode()                {}
func (n *TraitDecl) stmtNode()              {}
func (n *TraitDecl) Loc() *source.Location { return &n.Location }

// FuncSignature is a bare, body-less method shape, used inside traits.
type FuncSignature struct {
	Name    string
	Params  []Param
	Returns Type
	source.Location
}

// Param is one function parameter: `name: Type`.
type Param struct {
	Name      string
	ParamType Type
	source.Location
}

// FuncDecl is a `fn :name[Generics] self {params...} ReturnType => body`,
// optionally scoped to a struct (a method) when StructName is non-empty.
type FuncDecl struct {
	Name       string // the FuncId lexeme, including leading ':'
	StructName string // non-empty for struct methods
	IsSelf     bool
	Generics   []string
	Params     []Param
	Returns    Type
	Body       []Stmt
	source.Location
}

func (n *FuncDecl) INode()                {}
func (n *FuncDecl) stmtNode()              {}
func (n *FuncDecl) Loc() *source.Location { return &n.Location }

// ImplDecl is an `impl ^TraitName for TypeName { fn ... }`.
type ImplDecl struct {
	TraitName string
	TypeName  string
	Methods   []*FuncDecl
	source.Location
}

func (n *ImplDecl) INode()                {}
func (n *ImplDecl) stmtNode()              {}
func (n *ImplDecl) Loc() *source.Location { return &n.Location }

// TestDecl is a `test "description"` followed by an indented list of
// `testcase "name" =>` entries.
type TestDecl struct {
	Description string
	Cases       []TestCase
	source.Location
}

func (n *TestDecl) INode()                {}
func (n *TestDecl) stmtNode()              {}
func (n *TestDecl) Loc() *source.Location { return &n.Location }

// TestCase is one `testcase "name" =>` with its indented body, inside a
// TestDecl.
type TestCase struct {
	Name string
	Body []Stmt
	source.Location
}

// IfStmt is an `if cond then` / `elif cond then` / `else` chain, each
// link followed by an indented body; Elifs may be empty and Else may be
// nil.
type IfStmt struct {
	Cond  Expr
	Then  []Stmt
	Elifs []ElifClause
	Else  []Stmt
	source.Location
}

func (n *IfStmt) INode()                {}
func (n *IfStmt) stmtNode()              {}
func (n *IfStmt) Loc() *source.Location { return &n.Location }

// ElifClause is one `elif cond then` link, with its indented body, in
// an IfStmt chain.
type ElifClause struct {
	Cond Expr
	Body []Stmt
	source.Location
}

// ForStmt is a `for name in iterable` followed by an indented body.
type ForStmt struct {
	Var      string
	Iterable Expr
	Body     []Stmt
	source.Location
}

func (n *ForStmt) INode()                {}
func (n *ForStmt) stmtNode()              {}
func (n *ForStmt) Loc() *source.Location { return &n.Location }

// WhileStmt is a `while cond` followed by an indented body, looping
// while cond holds.
type WhileStmt struct {
	Cond Expr
	Body []Stmt
	source.Location
}

func (n *WhileStmt) INode()                {}
func (n *WhileStmt) stmtNode()              {}
func (n *WhileStmt) Loc() *source.Location { return &n.Location }

// NestedBlockStmt is a bare indented block with no introducing
// keyword: a line indented deeper than its enclosing block without a
// control-flow statement to own the deeper indent.
type NestedBlockStmt struct {
	Body []Stmt
	source.Location
}

func (n *NestedBlockStmt) INode()                {}
func (n *NestedBlockStmt) stmtNode()              {}
func (n *NestedBlockStmt) Loc() *source.Location { return &n.Location }

// MatchStmt is a `match expr` followed by an indented list of `case
// Pattern` entries.
type MatchStmt struct {
	Subject Expr
	Cases   []MatchCase
	source.Location
}

func (n *MatchStmt) INode()                {}
func (n *MatchStmt) stmtNode()              {}
func (n *MatchStmt) Loc() *source.Location { return &n.Location }

// MatchCase is one `case Pattern` with its indented body.
type MatchCase struct {
	Pattern Expr
	Body    []Stmt
	source.Location
}

// ReturnStmt is a `return expr?`.
type ReturnStmt struct {
	Value Expr // nil for a bare return
	source.Location
}

func (n *ReturnStmt) INode()                {}
func (n *ReturnStmt) stmtNode()              {}
func (n *ReturnStmt) Loc() *source.Location { return &n.Location }

// BreakStmt / ContinueStmt are loop control statements with no payload.
type BreakStmt struct{ source.Location }

func (n *BreakStmt) INode()                {}
func (n *BreakStmt) stmtNode()              {}
func (n *BreakStmt) Loc() *source.Location { return &n.Location }

type ContinueStmt struct{ source.Location }

func (n *ContinueStmt) INode()                {}
func (n *ContinueStmt) stmtNode()              {}
func (n *ContinueStmt) Loc() *source.Location { return &n.Location }

// AssignStmt is `identifier = expr` (re-assignment, not declaration).
type AssignStmt struct {
	Target string
	Value  Expr
	source.Location
}

func (n *AssignStmt) INode()                {}
func (n *AssignStmt) stmtNode()              {}
func (n *AssignStmt) Loc() *source.Location { return &n.Location }

// SymbolRef is one entry of an import/export symbol list, with an
// optional `as` alias. Kind records which identity rule classified the
// original token (Var, Func, Type, Trait, Primitive, Builtin) so an
// alias can be validated against it.
type SymbolRef struct {
	Kind  string
	ID    string
	Alias string // empty when no `as` clause is present
	source.Location
}

// TypeDecl is a `type Name BaseType` alias declaration.
type TypeDecl struct {
	Name     string
	BaseType Type
	source.Location
}

func (n *TypeDecl) INode()                {}
func (n *TypeDecl) stmtNode()              {}
func (n *TypeDecl) Loc() *source.Location { return &n.Location }

// PrimitiveDecl is a `primitive Name BaseType` declaration: a bare
// TypeStmt with no fields, naming a new primitive in terms of an
// existing one.
type PrimitiveDecl struct {
	Name     string
	BaseType Type
	source.Location
}

func (n *PrimitiveDecl) INode()                {}
func (n *PrimitiveDecl) stmtNode()              {}
func (n *PrimitiveDecl) Loc() *source.Location { return &n.Location }

// ImportStmt is an `import pkg { symbol, symbol as alias, ... }`.
type ImportStmt struct {
	Package string
	Symbols []SymbolRef
	source.Location
}

func (n *ImportStmt) INode()                {}
func (n *ImportStmt) stmtNode()              {}
func (n *ImportStmt) Loc() *source.Location { return &n.Location }

// ExportStmt is an `export { symbol, ... }` or `export pkg { symbol }`.
type ExportStmt struct {
	Package string // empty when exporting local symbols
	Symbols []SymbolRef
	source.Location
}

func (n *ExportStmt) INode()                {}
func (n *ExportStmt) stmtNode()              {}
func (n *ExportStmt) Loc() *source.Location { return &n.Location }

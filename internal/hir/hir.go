package hir

import (
	"fmt"

	"compiler/internal/ast"
)

// LoweringError reports a declaration the lowerer could not place —
// generally a missing package id, since every definition's stable name
// is scoped by its owning package.
type LoweringError struct {
	Msg string
}

func (e *LoweringError) Error() string { return e.Msg }

// FieldDef is one lowered struct field.
type FieldDef struct {
	ID   FieldID
	Type TypeID
}

// StructDef is a lowered struct type. Enum and trait declarations are
// recorded on ModuleDef by TypeID only, with no variants or methods;
// an impl's methods lower to ordinary FunctionDefs scoped to the
// implementing type.
type StructDef struct {
	ID     TypeID
	Fields []FieldDef
}

// ParamDef is one lowered function parameter.
type ParamDef struct {
	ID   FunctionArgID
	Type TypeID
}

// FunctionDef is a lowered function or method.
type FunctionDef struct {
	ID     FunctionID
	Params []ParamDef
}

// ConstantDef is a lowered package-level constant.
type ConstantDef struct {
	ID ConstantID
}

// ModuleDef is everything lowered from one package's AST.
type ModuleDef struct {
	ID           ModuleID
	StructDefs   []StructDef
	FunctionDefs []FunctionDef
	ConstantDefs []ConstantDef
	EnumDefs     []TypeID // placeholder: no member data lowered yet
	TraitDefs    []TypeID // placeholder: no member data lowered yet
}

// Hir is the fully lowered program: one ModuleDef per package reached
// by the resolver, root first.
type Hir struct {
	Modules []ModuleDef
}

// opts threads the package scope (and, for methods, the owning struct
// name) through a single declaration's lowering, mirroring the
// original lowerer's per-call options struct instead of a persistent
// lowering-context object.
type opts struct {
	pkgID      string
	structName string
}

// FromFile lowers one package's parsed file into a ModuleDef. pkgID is
// the package's effective name: the manifest's `as` alias if present,
// else its own declared name.
func FromFile(pkgID string, file *ast.File) (ModuleDef, error) {
	if pkgID == "" {
		return ModuleDef{}, &LoweringError{Msg: "cannot lower a file with no package id"}
	}

	mod := ModuleDef{ID: NewModuleID(pkgID)}

	for _, stmt := range file.Stmts {
		switch s := stmt.(type) {
		case *ast.ConstDecl:
			def, err := lowerConstant(s, opts{pkgID: pkgID})
			if err != nil {
				return ModuleDef{}, err
			}
			mod.ConstantDefs = append(mod.ConstantDefs, def)

		case *ast.StructDecl:
			def, err := lowerStruct(s, opts{pkgID: pkgID})
			if err != nil {
				return ModuleDef{}, err
			}
			mod.StructDefs = append(mod.StructDefs, def)

		case *ast.FuncDecl:
			def, err := lowerFunction(s, opts{pkgID: pkgID})
			if err != nil {
				return ModuleDef{}, err
			}
			mod.FunctionDefs = append(mod.FunctionDefs, def)

		case *ast.EnumDecl:
			mod.EnumDefs = append(mod.EnumDefs, NewTypeID(pkgID, s.Name))

		case *ast.TraitDecl:
			mod.TraitDefs = append(mod.TraitDefs, NewTypeID(pkgID, s.Name))

		case *ast.ImplDecl:
			for _, m := range s.Methods {
				def, err := lowerFunction(m, opts{pkgID: pkgID, structName: s.TypeName})
				if err != nil {
					return ModuleDef{}, err
				}
				mod.FunctionDefs = append(mod.FunctionDefs, def)
			}
		}
	}

	return mod, nil
}

func lowerConstant(stmt *ast.ConstDecl, o opts) (ConstantDef, error) {
	if o.pkgID == "" {
		return ConstantDef{}, &LoweringError{Msg: fmt.Sprintf("constant %q lowered with no package id", stmt.Name)}
	}
	return ConstantDef{ID: NewConstantID(o.pkgID, stmt.Name)}, nil
}

func lowerStruct(stmt *ast.StructDecl, o opts) (StructDef, error) {
	if o.pkgID == "" {
		return StructDef{}, &LoweringError{Msg: fmt.Sprintf("struct %q lowered with no package id", stmt.Name)}
	}
	def := StructDef{ID: NewTypeID(o.pkgID, stmt.Name)}
	for _, f := range stmt.Fields {
		def.Fields = append(def.Fields, FieldDef{
			ID:   NewFieldID(o.pkgID, stmt.Name, f.Name, f.FieldNum),
			Type: typeIDFor(o.pkgID, f.FieldType),
		})
	}
	return def, nil
}

// typeIDFor resolves a parsed type reference to the TypeID a backend
// would key it by. Generic type arguments are not represented in the
// id yet — only the named head of the reference is kept.
func typeIDFor(pkgID string, ty ast.Type) TypeID {
	switch t := ty.(type) {
	case *ast.NamedType:
		return NewTypeID(pkgID, t.Name)
	case *ast.GenericType:
		return NewTypeID(pkgID, t.Name)
	default:
		return TypeID{}
	}
}

func lowerFunction(stmt *ast.FuncDecl, o opts) (FunctionDef, error) {
	if o.pkgID == "" {
		return FunctionDef{}, &LoweringError{Msg: fmt.Sprintf("function %q lowered with no package id", stmt.Name)}
	}
	def := FunctionDef{ID: NewFunctionID(o.pkgID, o.structName, stmt.Name)}
	for i, p := range stmt.Params {
		def.Params = append(def.Params, ParamDef{
			ID:   NewFunctionArgID(p.Name, i),
			Type: typeIDFor(o.pkgID, p.ParamType),
		})
	}
	return def, nil
}

// Merge appends mod to h unless a module with the same name is already
// present, used by the resolver to fold each transitively resolved
// dependency's lowering into one program-wide Hir.
func (h *Hir) Merge(mod ModuleDef) {
	for i := range h.Modules {
		if h.Modules[i].ID.Name() == mod.ID.Name() {
			return
		}
	}
	h.Modules = append(h.Modules, mod)
}

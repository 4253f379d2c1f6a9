// Package hir lowers a parsed package into stable, symbolically-named
// IDs a backend can key definitions by, independent of source spans.
package hir

import "fmt"

// ModuleID names one package's lowered module, keyed by its effective
// name (the manifest's `as` alias if the importer gave one, else the
// package's own declared name).
type ModuleID struct {
	PkgName string
}

func NewModuleID(pkgName string) ModuleID { return ModuleID{PkgName: pkgName} }
func (m ModuleID) Name() string           { return m.PkgName }

// TypeID names one struct/enum type: "pkg#TypeName".
type TypeID struct {
	PkgName  string
	TypeName string
}

func NewTypeID(pkgName, typeName string) TypeID { return TypeID{PkgName: pkgName, TypeName: typeName} }
func (t TypeID) Name() string                   { return fmt.Sprintf("%s#%s", t.PkgName, t.TypeName) }

// FieldID names one struct field: "@pkg/Struct.field".
type FieldID struct {
	PkgName    string
	StructName string
	FieldName  string
	FieldNum   int
}

func NewFieldID(pkgName, structName, fieldName string, fieldNum int) FieldID {
	return FieldID{PkgName: pkgName, StructName: structName, FieldName: fieldName, FieldNum: fieldNum}
}
func (f FieldID) Name() string {
	return fmt.Sprintf("@%s/%s.%s", f.PkgName, f.StructName, f.FieldName)
}

// FunctionID names one function or method. IsMain is set exactly when
// the function is named ":main" and is not a struct method.
type FunctionID struct {
	PkgName    string
	StructName string // empty for free functions
	FuncName   string
	IsMain     bool
}

func NewFunctionID(pkgName, structName, funcName string) FunctionID {
	return FunctionID{
		PkgName:    pkgName,
		StructName: structName,
		FuncName:   funcName,
		IsMain:     funcName == ":main" && structName == "",
	}
}

func (f FunctionID) Name() string {
	if f.StructName != "" {
		return fmt.Sprintf("%s#%s%s", f.PkgName, f.StructName, f.FuncName)
	}
	return fmt.Sprintf("%s%s", f.PkgName, f.FuncName)
}

// FunctionArgID names one parameter within a function's own namespace.
type FunctionArgID struct {
	ArgName string
	ArgNum  int
}

func NewFunctionArgID(argName string, argNum int) FunctionArgID {
	return FunctionArgID{ArgName: argName, ArgNum: argNum}
}
func (a FunctionArgID) Name() string { return a.ArgName }

// ConstantID names one package-level constant: "pkg#NAME".
type ConstantID struct {
	PkgName   string
	ConstName string
}

func NewConstantID(pkgName, constName string) ConstantID {
	return ConstantID{PkgName: pkgName, ConstName: constName}
}
func (c ConstantID) Name() string { return fmt.Sprintf("%s#%s", c.PkgName, c.ConstName) }

package typegen

import "go/ast"

// Result holds the types declared by one Go package.
// This is language-agnostic - each Generator formats it differently.
type Result struct {
	// PackageName is the Go package that was processed
	PackageName string

	// ImportPath is the package's import path, empty for parsed sources
	ImportPath string

	// Structs are the exported struct types, sorted by name
	Structs []Struct

	// Enums are string types with typed constants, sorted by name
	// e.g., type Status string; const StatusDone Status = "done"
	Enums []Enum

	// Consts are untyped string constants, sorted by name
	// e.g., const Version = "1.0.0"
	Consts []Const

	// Aliases maps exported named types without constants to their
	// underlying type, e.g. type Level int → Aliases["Level"] = int
	Aliases map[string]ast.Expr

	// TypePositions maps type names to their source location
	TypePositions map[string]Position
}

// Struct is an exported Go struct.
type Struct struct {
	Name   string
	Doc    []string
	Fields []Field
}

// Field is one exported struct field.
type Field struct {
	// Name is the Go field name, or the type name of an embedded field
	Name string

	// JSONName is the name from the json tag, empty when the tag has none
	JSONName string

	// Omitempty is set by json:",omitempty"
	Omitempty bool

	// Embedded fields are flattened into the enclosing type
	Embedded bool

	// Type is the field's Go type expression
	Type ast.Expr

	// CustomType overrides the generated type (darttype:"Type")
	CustomType string

	// CustomOptional forces the field optional (darttype:",optional")
	CustomOptional bool

	Doc []string
}

// Optional reports whether the field may be absent from the JSON object.
func (f Field) Optional() bool {
	_, isPointer := f.Type.(*ast.StarExpr)
	return f.Omitempty || f.CustomOptional || isPointer
}

// WireName is the key the field is encoded under.
func (f Field) WireName() string {
	if f.JSONName != "" {
		return f.JSONName
	}
	return f.Name
}

// Enum is a string type with a closed set of typed constants.
type Enum struct {
	Name   string
	Doc    []string
	Values []EnumValue
}

// EnumValue is one typed constant of an Enum.
type EnumValue struct {
	// Name is the Go constant name
	Name  string
	Value string
	Doc   []string
}

// Const is an untyped string constant.
type Const struct {
	Name  string
	Value string
	Doc   []string
}

// Position represents a source code location
type Position struct {
	// File is the base name of the source file
	File string
	// Line is the line number where the type is defined
	Line int
}

// TypeNames returns the names of every generated type in output order:
// enums, then structs.
func (r *Result) TypeNames() []string {
	names := make([]string, 0, len(r.Enums)+len(r.Structs))
	for _, e := range r.Enums {
		names = append(names, e.Name)
	}
	for _, s := range r.Structs {
		names = append(names, s.Name)
	}
	return names
}

// FindStruct returns the struct named name.
func (r *Result) FindStruct(name string) (Struct, bool) {
	for _, s := range r.Structs {
		if s.Name == name {
			return s, true
		}
	}
	return Struct{}, false
}

// IsEmpty reports whether nothing would be generated.
func (r *Result) IsEmpty() bool {
	return len(r.Structs)+len(r.Enums)+len(r.Consts) == 0
}

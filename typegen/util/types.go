package util

import (
	"go/ast"
)

// TypeConverterConfig configures how Go types are converted to target language types.
type TypeConverterConfig struct {
	// TypeMapping maps Go type names to target language types. Qualified
	// names ("time.Time") and "[]byte" are looked up as written.
	TypeMapping map[string]string

	// ArrayFormat formats an array type given the element type
	// e.g., Dart: "List<%s>"
	ArrayFormat func(elemType string) string

	// MapFormat formats a map type given key and value types
	// e.g., Dart: "Map<%s, %s>"
	MapFormat func(keyType, valType string) string

	// NullableFormat marks a pointer element or map value as nullable.
	// Nil leaves nested pointers unmarked.
	NullableFormat func(typ string) string

	// StringMapUnknownType is the special type for map[string]interface{}
	// e.g., Dart: "Map<String, dynamic>"
	StringMapUnknownType string

	// UnknownType is returned for interface{} and unrecognized types
	// e.g., Dart: "dynamic"
	UnknownType string

	// StringType is the target language's string type (for map special case detection)
	StringType string
}

// ConvertGoType converts a Go AST type expression to a target language type string.
// The config parameter provides language-specific formatting rules.
func ConvertGoType(expr ast.Expr, config *TypeConverterConfig) string {
	switch t := expr.(type) {
	case *ast.Ident:
		// Go's `any` is an alias for interface{}
		if t.Name == "any" {
			return config.UnknownType
		}
		// Basic type or type reference in same package
		if mapped, ok := config.TypeMapping[t.Name]; ok {
			return mapped
		}
		// Assume it's a reference to another type in the same package
		return t.Name

	case *ast.SelectorExpr:
		// Qualified type like time.Time
		if ident, ok := t.X.(*ast.Ident); ok {
			fullName := ident.Name + "." + t.Sel.Name
			if mapped, ok := config.TypeMapping[fullName]; ok {
				return mapped
			}
			// Unknown qualified type - return just the type name
			return t.Sel.Name
		}
		return config.UnknownType

	case *ast.StarExpr:
		// Pointer type - get the underlying type
		return ConvertGoType(t.X, config)

	case *ast.ArrayType:
		if ident, ok := t.Elt.(*ast.Ident); ok && ident.Name == "byte" {
			if mapped, ok := config.TypeMapping["[]byte"]; ok {
				return mapped
			}
		}
		return config.ArrayFormat(convertNested(t.Elt, config))

	case *ast.MapType:
		keyType := ConvertGoType(t.Key, config)
		valType := convertNested(t.Value, config)

		// Special case for map[string]interface{}
		if keyType == config.StringType && valType == config.UnknownType {
			return config.StringMapUnknownType
		}

		return config.MapFormat(keyType, valType)

	case *ast.InterfaceType:
		// interface{} -> unknown/Any type
		return config.UnknownType

	default:
		return config.UnknownType
	}
}

// convertNested converts an element type, marking pointers nullable.
func convertNested(expr ast.Expr, config *TypeConverterConfig) string {
	typ := ConvertGoType(expr, config)
	if IsPointerType(expr) && config.NullableFormat != nil {
		return config.NullableFormat(typ)
	}
	return typ
}

// IsPointerType checks if the AST expression represents a pointer type.
func IsPointerType(expr ast.Expr) bool {
	_, ok := expr.(*ast.StarExpr)
	return ok
}

package code

import "strings"

// TypeName is a reference to a Dart type. Rendering it through a %T
// placeholder registers Library with the Writer's import collector.
type TypeName struct {
	// Name is the simple name, e.g. "String" or "JsonKey". It may already
	// contain type arguments ("Map<String, dynamic>") when built from raw text.
	Name string
	// Library is the import URI that declares the type, empty for core types.
	Library string
	// Arguments are the type arguments rendered between angle brackets.
	Arguments []TypeName
	// Nullable appends the "?" marker.
	Nullable bool
}

// Core Dart types.
var (
	Dynamic  = Type("dynamic")
	Void     = Type("void")
	Object   = Type("Object")
	String   = Type("String")
	Int      = Type("int")
	Double   = Type("double")
	Num      = Type("num")
	Bool     = Type("bool")
	DateTime = Type("DateTime")
)

// Type returns a reference to a type without a library.
func Type(name string) TypeName {
	return TypeName{Name: name}
}

// TypeFrom returns a reference to a type declared in library.
func TypeFrom(library, name string) TypeName {
	return TypeName{Name: name, Library: library}
}

// ListOf returns List<elem>.
func ListOf(elem TypeName) TypeName {
	return Type("List").WithArguments(elem)
}

// MapOf returns Map<key, value>.
func MapOf(key, value TypeName) TypeName {
	return Type("Map").WithArguments(key, value)
}

// FutureOf returns Future<elem>.
func FutureOf(elem TypeName) TypeName {
	return Type("Future").WithArguments(elem)
}

// WithArguments returns a copy of t with the given type arguments.
func (t TypeName) WithArguments(args ...TypeName) TypeName {
	t.Arguments = append([]TypeName(nil), args...)
	return t
}

// AsNullable returns a nullable copy of t.
func (t TypeName) AsNullable() TypeName {
	t.Nullable = true
	return t
}

// NonNullable returns a non-nullable copy of t.
func (t TypeName) NonNullable() TypeName {
	t.Nullable = false
	return t
}

// IsZero reports whether t references no type at all.
func (t TypeName) IsZero() bool {
	return strings.TrimSpace(t.Name) == ""
}

// Libraries returns the import URIs referenced by t and its arguments, in
// depth-first order.
func (t TypeName) Libraries() []string {
	var libs []string
	if t.Library != "" {
		libs = append(libs, t.Library)
	}
	for _, arg := range t.Arguments {
		libs = append(libs, arg.Libraries()...)
	}
	return libs
}

func (t TypeName) String() string {
	var sb strings.Builder
	t.writeTo(&sb)
	return sb.String()
}

func (t TypeName) writeTo(sb *strings.Builder) {
	sb.WriteString(t.Name)
	if len(t.Arguments) > 0 {
		sb.WriteByte('<')
		for i, arg := range t.Arguments {
			if i > 0 {
				sb.WriteString(", ")
			}
			arg.writeTo(sb)
		}
		sb.WriteByte('>')
	}
	if t.Nullable {
		sb.WriteByte('?')
	}
}

// Named is implemented by spec nodes that can be referenced with %N. The
// returned identifier already carries the private "_" prefix when needed.
type Named interface {
	Identifier() string
}

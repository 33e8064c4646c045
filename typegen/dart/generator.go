// Package dart generates Dart model classes from Go types.
//
// Structs become immutable classes with a const constructor; with
// json_serializable enabled they are annotated with @JsonSerializable() and
// get fromJson/toJson members delegating to the generated part file. String
// types with constants become enums, untyped string constants become
// top-level constants.
package dart

import (
	"regexp"
	"strings"

	"github.com/teranos/dartpoet/dart/code"
	"github.com/teranos/dartpoet/dart/spec"
	"github.com/teranos/dartpoet/errors"
	"github.com/teranos/dartpoet/typegen"
	"github.com/teranos/dartpoet/typegen/util"
)

// JSONAnnotationLibrary declares the json_serializable annotations.
const JSONAnnotationLibrary = "package:json_annotation/json_annotation.dart"

// TypeMapping defines how Go types map to Dart types. A trailing "?" marks
// the field optional.
var TypeMapping = map[string]string{
	"string":                 "String",
	"int":                    "int",
	"int8":                   "int",
	"int16":                  "int",
	"int32":                  "int",
	"int64":                  "int",
	"uint":                   "int",
	"uint8":                  "int",
	"uint16":                 "int",
	"uint32":                 "int",
	"uint64":                 "int",
	"byte":                   "int",
	"rune":                   "int",
	"float32":                "double",
	"float64":                "double",
	"bool":                   "bool",
	"[]byte":                 "String", // base64 encoded by encoding/json
	"time.Time":              "DateTime",
	"time.Duration":          "int", // nanoseconds
	"json.RawMessage":        "dynamic",
	"map[string]interface{}": "Map<String, dynamic>",
	// SQL nullable types
	"sql.NullString": "String?",
	"sql.NullInt64":  "int?",
	"sql.NullInt32":  "int?",
	"sql.NullBool":   "bool?",
	"sql.NullTime":   "DateTime?",
}

// dartKeywords are reserved words that can't name a field or enum value
var dartKeywords = map[string]bool{
	"assert": true, "break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "default": true, "do": true, "else": true,
	"enum": true, "extends": true, "false": true, "final": true, "finally": true,
	"for": true, "if": true, "in": true, "is": true, "new": true, "null": true,
	"rethrow": true, "return": true, "super": true, "switch": true, "this": true,
	"throw": true, "true": true, "try": true, "var": true, "void": true,
	"while": true, "with": true,
}

var identPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// toDartIdent makes s usable as a Dart identifier.
// Adds an underscore suffix for reserved words
func toDartIdent(s string) string {
	if dartKeywords[s] {
		return s + "_"
	}
	return s
}

// Options control the generated code.
type Options struct {
	// Header lines are written as comments at the top of every file
	Header []string

	// Indent is the indentation unit, two spaces when empty
	Indent string

	// JSONSerializable adds json_serializable annotations and members
	JSONSerializable bool

	// NullSafe emits "?" and required; without it optional fields are
	// plain types
	NullSafe bool
}

// Generator implements typegen.Generator for Dart
type Generator struct {
	opts Options
}

var _ typegen.Generator = (*Generator)(nil)

// NewGenerator creates a new Dart generator
func NewGenerator(opts Options) *Generator {
	return &Generator{opts: opts}
}

// Language returns "dart"
func (g *Generator) Language() string {
	return "dart"
}

// FileExtension returns "dart"
func (g *Generator) FileExtension() string {
	return "dart"
}

// FileName returns the name of the file generated for result, e.g.
// "pulse_async.dart" for package pulseAsync.
func (g *Generator) FileName(result *typegen.Result) string {
	return util.ToSnakeCase(result.PackageName) + "." + g.FileExtension()
}

// GenerateFile renders every type of result into one file.
func (g *Generator) GenerateFile(result *typegen.Result) (*spec.File, error) {
	name := g.FileName(result)
	conv := g.converter(result)

	source := result.ImportPath
	if source == "" {
		source = result.PackageName
	}
	header := append(append([]string(nil), g.opts.Header...), "Source: "+source)

	file := spec.NewFile(name).Header(header...)
	if g.opts.Indent != "" {
		file.Indent(g.opts.Indent)
	}
	if g.opts.JSONSerializable && len(result.Structs) > 0 {
		part, err := spec.NewPart(strings.TrimSuffix(name, ".dart") + ".g.dart").Build()
		if err != nil {
			return nil, err
		}
		file.Directives(part)
	}

	for _, e := range result.Enums {
		enum, err := g.buildEnum(e)
		if err != nil {
			return nil, errors.Wrapf(err, "enum %s", e.Name)
		}
		file.Types(enum)
	}
	for _, s := range result.Structs {
		class, err := g.buildClass(s, result, conv)
		if err != nil {
			return nil, errors.Wrapf(err, "struct %s", s.Name)
		}
		file.Types(class)
	}
	if len(result.Consts) > 0 {
		consts, err := g.buildConsts(result.Consts)
		if err != nil {
			return nil, err
		}
		file.Types(consts)
	}
	return file.Build()
}

// converter returns the type conversion rules for result. Named non-struct
// types resolve to their underlying Dart type.
func (g *Generator) converter(result *typegen.Result) *util.TypeConverterConfig {
	mapping := make(map[string]string, len(TypeMapping)+len(result.Aliases))
	for k, v := range TypeMapping {
		mapping[k] = v
	}
	conv := &util.TypeConverterConfig{
		TypeMapping: mapping,
		ArrayFormat: func(elem string) string { return "List<" + elem + ">" },
		MapFormat:   func(key, val string) string { return "Map<" + key + ", " + val + ">" },
		NullableFormat: func(typ string) string {
			if !g.opts.NullSafe || typ == "dynamic" || strings.HasSuffix(typ, "?") {
				return typ
			}
			return typ + "?"
		},
		StringMapUnknownType: "Map<String, dynamic>",
		UnknownType:          "dynamic",
		StringType:           "String",
	}
	// resolve against the base mapping so aliases of aliases stay stable
	base := *conv
	base.TypeMapping = TypeMapping
	for name, underlying := range result.Aliases {
		mapping[name] = util.ConvertGoType(underlying, &base)
	}
	return conv
}

func (g *Generator) annotation(name, format string, args ...any) *spec.Annotation {
	b := spec.NewAnnotationOf(code.TypeFrom(JSONAnnotationLibrary, name))
	if format == "" {
		return b.Call().MustBuild()
	}
	return b.Content(format, args...).MustBuild()
}

func (g *Generator) buildEnum(e typegen.Enum) (*spec.Class, error) {
	enum := spec.NewEnum(e.Name).Docs(e.Doc...)
	seen := map[string]bool{}
	for _, v := range e.Values {
		name := enumEntryName(e.Name, v, seen)
		seen[name] = true

		entry := spec.NewEnumEntry(name).Docs(v.Doc...)
		if g.opts.JSONSerializable {
			entry.Annotations(g.annotation("JsonValue", "%C", v.Value))
		}
		built, err := entry.Build()
		if err != nil {
			return nil, err
		}
		enum.EnumEntries(built)
	}
	return enum.Build()
}

// enumEntryName derives the Dart name of an enum value from the value
// itself ("in_progress" -> inProgress), falling back to the Go constant name
// without the type prefix (StatusInProgress -> inProgress).
func enumEntryName(typeName string, v typegen.EnumValue, seen map[string]bool) string {
	candidates := []string{
		util.ToCamelCase(v.Value),
		util.ToCamelCase(strings.TrimPrefix(v.Name, typeName)),
		util.ToCamelCase(v.Name),
	}
	for _, c := range candidates {
		c = toDartIdent(c)
		if identPattern.MatchString(c) && !seen[c] {
			return c
		}
	}
	return toDartIdent(util.ToCamelCase(v.Name))
}

// classField is a struct field resolved for Dart.
type classField struct {
	name     string
	wire     string
	typ      string
	optional bool
	doc      []string
}

func (g *Generator) buildClass(s typegen.Struct, result *typegen.Result, conv *util.TypeConverterConfig) (*spec.Class, error) {
	class := spec.NewClass(s.Name).Docs(s.Doc...)
	if g.opts.JSONSerializable {
		class.Annotations(g.annotation("JsonSerializable", ""))
	}

	fields := g.resolveFields(s, result, conv)
	params := make([]*spec.Parameter, 0, len(fields))
	for _, f := range fields {
		nullable := g.opts.NullSafe && f.optional && f.typ != "dynamic"
		prop := spec.NewProperty(f.name, code.Type(f.typ)).
			Nullable(nullable).
			Modifiers(spec.Final).
			Docs(f.doc...)
		if g.opts.JSONSerializable && f.wire != f.name {
			prop.Annotations(g.annotation("JsonKey", "name: %C", f.wire))
		}
		built, err := prop.Build()
		if err != nil {
			return nil, errors.Wrapf(err, "field %s", f.name)
		}
		class.Properties(built)

		param, err := spec.NewFieldParameter(f.name).
			Named(true).
			Required(g.opts.NullSafe && !f.optional).
			Build()
		if err != nil {
			return nil, errors.Wrapf(err, "field %s", f.name)
		}
		params = append(params, param)
	}

	ctor, err := spec.NewConstructor(s.Name).Const().Parameters(params...).Build()
	if err != nil {
		return nil, err
	}
	class.Constructors(ctor)

	if g.opts.JSONSerializable {
		jsonMap := code.MapOf(code.String, code.Dynamic)
		fromJSON, err := spec.NewNamedConstructor(s.Name, "fromJson").
			Factory().
			Lambda(true).
			Parameters(spec.NewParameter("json", jsonMap).MustBuild()).
			Initializer("_$%LFromJson(json);", s.Name).
			Build()
		if err != nil {
			return nil, err
		}
		toJSON, err := spec.NewFunction("toJson").
			Returns(jsonMap).
			Lambda(true).
			Body("_$%LToJson(this)", s.Name).
			Build()
		if err != nil {
			return nil, err
		}
		class.Constructors(fromJSON).Functions(toJSON)
	}
	return class.Build()
}

// resolveFields flattens embedded structs of the same package and converts
// field types. Fields declared on s win over promoted ones, as in
// encoding/json.
func (g *Generator) resolveFields(s typegen.Struct, result *typegen.Result, conv *util.TypeConverterConfig) []classField {
	var out []classField
	taken := map[string]bool{}
	for _, f := range s.Fields {
		if !f.Embedded {
			taken[f.WireName()] = true
		}
	}

	var walk func(s typegen.Struct, depth int, visiting map[string]bool)
	walk = func(s typegen.Struct, depth int, visiting map[string]bool) {
		for _, f := range s.Fields {
			if f.Embedded {
				if inner, ok := result.FindStruct(f.Name); ok && !visiting[f.Name] {
					visiting[f.Name] = true
					walk(inner, depth+1, visiting)
					delete(visiting, f.Name)
					continue
				}
			}
			wire := f.WireName()
			if depth > 0 && taken[wire] {
				continue
			}
			taken[wire] = true
			out = append(out, g.resolveField(f, conv))
		}
	}
	walk(s, 0, map[string]bool{s.Name: true})
	return out
}

func (g *Generator) resolveField(f typegen.Field, conv *util.TypeConverterConfig) classField {
	typ := f.CustomType
	if typ == "" {
		typ = util.ConvertGoType(f.Type, conv)
	}
	optional := f.Optional()
	if strings.HasSuffix(typ, "?") {
		optional = true
		typ = strings.TrimSuffix(typ, "?")
	}
	return classField{
		name:     toDartIdent(util.ToCamelCase(f.Name)),
		wire:     f.WireName(),
		typ:      typ,
		optional: optional,
		doc:      f.Doc,
	}
}

func (g *Generator) buildConsts(consts []typegen.Const) (*spec.Class, error) {
	lib := spec.NewLibrary()
	for _, c := range consts {
		prop, err := spec.NewProperty(toDartIdent(util.ToCamelCase(c.Name)), code.String).
			Modifiers(spec.Const).
			Initializer("%C", c.Value).
			Docs(c.Doc...).
			Build()
		if err != nil {
			return nil, errors.Wrapf(err, "const %s", c.Name)
		}
		lib.Properties(prop)
	}
	return lib.Build()
}

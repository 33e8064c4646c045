// Package model decodes declarative descriptions of Dart files from YAML or
// TOML and turns them into spec trees.
//
// A model file lists files; every file lists its directives and
// declarations:
//
//	files:
//	  - name: user
//	    imports:
//	      - path: package:json_annotation/json_annotation.dart
//	    parts: [user.g.dart]
//	    classes:
//	      - name: User
//	        annotations: [{name: JsonSerializable, call: true}]
//	        properties:
//	          - {name: id, type: int, modifiers: [final]}
//
// Types are written as Dart source ("List<String>"). A type declared in a
// library that should be imported automatically is written "Name@uri", e.g.
// "Client@package:http/http.dart". Bodies, initializers and annotation
// arguments are raw Dart and are emitted verbatim.
package model

// Document is the root of a model file.
type Document struct {
	// Indent and Header apply to every file that sets neither.
	Indent string      `yaml:"indent,omitempty" toml:"indent,omitempty"`
	Header []string    `yaml:"header,omitempty" toml:"header,omitempty"`
	Files  []FileModel `yaml:"files" toml:"files"`
}

// FileModel describes one Dart file.
type FileModel struct {
	Name       string           `yaml:"name" toml:"name"`
	Indent     string           `yaml:"indent,omitempty" toml:"indent,omitempty"`
	Header     []string         `yaml:"header,omitempty" toml:"header,omitempty"`
	Library    string           `yaml:"library,omitempty" toml:"library,omitempty"`
	PartOf     string           `yaml:"part_of,omitempty" toml:"part_of,omitempty"`
	Imports    []ImportModel    `yaml:"imports,omitempty" toml:"imports,omitempty"`
	Exports    []ImportModel    `yaml:"exports,omitempty" toml:"exports,omitempty"`
	Parts      []string         `yaml:"parts,omitempty" toml:"parts,omitempty"`
	Classes    []ClassModel     `yaml:"classes,omitempty" toml:"classes,omitempty"`
	Extensions []ExtensionModel `yaml:"extensions,omitempty" toml:"extensions,omitempty"`

	// Top-level members, rendered after the classes.
	Properties []PropertyModel `yaml:"properties,omitempty" toml:"properties,omitempty"`
	Functions  []FunctionModel `yaml:"functions,omitempty" toml:"functions,omitempty"`
}

// ImportModel is an import or export directive.
type ImportModel struct {
	Path     string   `yaml:"path" toml:"path"`
	As       string   `yaml:"as,omitempty" toml:"as,omitempty"`
	Deferred bool     `yaml:"deferred,omitempty" toml:"deferred,omitempty"`
	Show     []string `yaml:"show,omitempty" toml:"show,omitempty"`
	Hide     []string `yaml:"hide,omitempty" toml:"hide,omitempty"`
}

// AnnotationModel is "@Name" or "@Name(args...)". Call keeps the
// parentheses when there are no arguments.
type AnnotationModel struct {
	Name      string   `yaml:"name" toml:"name"`
	Args      []string `yaml:"args,omitempty" toml:"args,omitempty"`
	Call      bool     `yaml:"call,omitempty" toml:"call,omitempty"`
	Multiline bool     `yaml:"multiline,omitempty" toml:"multiline,omitempty"`
}

// ClassModel is a class, abstract class, mixin or enum.
type ClassModel struct {
	Name           string             `yaml:"name" toml:"name"`
	Kind           string             `yaml:"kind,omitempty" toml:"kind,omitempty"` // class (default), abstract, mixin, enum
	Modifiers      []string           `yaml:"modifiers,omitempty" toml:"modifiers,omitempty"`
	TypeParameters []string           `yaml:"type_parameters,omitempty" toml:"type_parameters,omitempty"`
	Extends        string             `yaml:"extends,omitempty" toml:"extends,omitempty"`
	With           []string           `yaml:"with,omitempty" toml:"with,omitempty"`
	Implements     []string           `yaml:"implements,omitempty" toml:"implements,omitempty"`
	On             []string           `yaml:"on,omitempty" toml:"on,omitempty"`
	Docs           []string           `yaml:"docs,omitempty" toml:"docs,omitempty"`
	Annotations    []AnnotationModel  `yaml:"annotations,omitempty" toml:"annotations,omitempty"`
	Entries        []EnumEntryModel   `yaml:"entries,omitempty" toml:"entries,omitempty"`
	Constants      []PropertyModel    `yaml:"constants,omitempty" toml:"constants,omitempty"`
	Properties     []PropertyModel    `yaml:"properties,omitempty" toml:"properties,omitempty"`
	Constructors   []ConstructorModel `yaml:"constructors,omitempty" toml:"constructors,omitempty"`
	Functions      []FunctionModel    `yaml:"functions,omitempty" toml:"functions,omitempty"`
	EndWithNewLine bool               `yaml:"end_with_newline,omitempty" toml:"end_with_newline,omitempty"`
}

// EnumEntryModel is one enum value.
type EnumEntryModel struct {
	Name        string            `yaml:"name" toml:"name"`
	Args        []string          `yaml:"args,omitempty" toml:"args,omitempty"`
	Docs        []string          `yaml:"docs,omitempty" toml:"docs,omitempty"`
	Annotations []AnnotationModel `yaml:"annotations,omitempty" toml:"annotations,omitempty"`
}

// PropertyModel is a field, constant or top-level variable. An empty type
// declares it with its modifiers only, or with var.
type PropertyModel struct {
	Name        string            `yaml:"name" toml:"name"`
	Type        string            `yaml:"type,omitempty" toml:"type,omitempty"`
	Nullable    bool              `yaml:"nullable,omitempty" toml:"nullable,omitempty"`
	Modifiers   []string          `yaml:"modifiers,omitempty" toml:"modifiers,omitempty"`
	Initializer string            `yaml:"initializer,omitempty" toml:"initializer,omitempty"`
	Docs        []string          `yaml:"docs,omitempty" toml:"docs,omitempty"`
	Annotations []AnnotationModel `yaml:"annotations,omitempty" toml:"annotations,omitempty"`
}

// ParameterModel is a function or constructor parameter. An empty type
// declares an initializing formal (this.name, or super.name with Super).
type ParameterModel struct {
	Name        string            `yaml:"name" toml:"name"`
	Type        string            `yaml:"type,omitempty" toml:"type,omitempty"`
	Super       bool              `yaml:"super,omitempty" toml:"super,omitempty"`
	Named       bool              `yaml:"named,omitempty" toml:"named,omitempty"`
	Required    bool              `yaml:"required,omitempty" toml:"required,omitempty"`
	Nullable    bool              `yaml:"nullable,omitempty" toml:"nullable,omitempty"`
	Default     string            `yaml:"default,omitempty" toml:"default,omitempty"`
	Modifiers   []string          `yaml:"modifiers,omitempty" toml:"modifiers,omitempty"`
	Annotations []AnnotationModel `yaml:"annotations,omitempty" toml:"annotations,omitempty"`
}

// ConstructorModel is a constructor of the enclosing class. Name selects a
// named constructor (Class.name).
type ConstructorModel struct {
	Name        string            `yaml:"name,omitempty" toml:"name,omitempty"`
	Const       bool              `yaml:"const,omitempty" toml:"const,omitempty"`
	Factory     bool              `yaml:"factory,omitempty" toml:"factory,omitempty"`
	Lambda      bool              `yaml:"lambda,omitempty" toml:"lambda,omitempty"`
	Modifiers   []string          `yaml:"modifiers,omitempty" toml:"modifiers,omitempty"`
	Parameters  []ParameterModel  `yaml:"parameters,omitempty" toml:"parameters,omitempty"`
	Initializer string            `yaml:"initializer,omitempty" toml:"initializer,omitempty"`
	Body        string            `yaml:"body,omitempty" toml:"body,omitempty"`
	Docs        []string          `yaml:"docs,omitempty" toml:"docs,omitempty"`
	Annotations []AnnotationModel `yaml:"annotations,omitempty" toml:"annotations,omitempty"`
}

// FunctionModel is a method, accessor, typedef or top-level function.
type FunctionModel struct {
	Name           string            `yaml:"name" toml:"name"`
	Returns        string            `yaml:"returns,omitempty" toml:"returns,omitempty"`
	Async          bool              `yaml:"async,omitempty" toml:"async,omitempty"`
	Lambda         bool              `yaml:"lambda,omitempty" toml:"lambda,omitempty"`
	Getter         bool              `yaml:"getter,omitempty" toml:"getter,omitempty"`
	Setter         bool              `yaml:"setter,omitempty" toml:"setter,omitempty"`
	Typedef        bool              `yaml:"typedef,omitempty" toml:"typedef,omitempty"`
	Modifiers      []string          `yaml:"modifiers,omitempty" toml:"modifiers,omitempty"`
	TypeParameters []string          `yaml:"type_parameters,omitempty" toml:"type_parameters,omitempty"`
	Parameters     []ParameterModel  `yaml:"parameters,omitempty" toml:"parameters,omitempty"`
	Body           string            `yaml:"body,omitempty" toml:"body,omitempty"`
	Docs           []string          `yaml:"docs,omitempty" toml:"docs,omitempty"`
	Annotations    []AnnotationModel `yaml:"annotations,omitempty" toml:"annotations,omitempty"`
}

// ExtensionModel is an extension on an existing type.
type ExtensionModel struct {
	Name           string            `yaml:"name,omitempty" toml:"name,omitempty"`
	On             string            `yaml:"on" toml:"on"`
	TypeParameters []string          `yaml:"type_parameters,omitempty" toml:"type_parameters,omitempty"`
	Docs           []string          `yaml:"docs,omitempty" toml:"docs,omitempty"`
	Annotations    []AnnotationModel `yaml:"annotations,omitempty" toml:"annotations,omitempty"`
	Constants      []PropertyModel   `yaml:"constants,omitempty" toml:"constants,omitempty"`
	Functions      []FunctionModel   `yaml:"functions,omitempty" toml:"functions,omitempty"`
}

// Package spec models Dart declarations as immutable nodes and renders them
// through the code package.
//
// Nodes are produced by builders that validate their input. Every builder
// keeps the first error it encounters and returns it from Build, so calls can
// be chained freely:
//
//	fn, err := spec.NewFunction("getName").
//		Returns(code.String).
//		Body("return %C;", "test").
//		Build()
//
// Build errors carry the exact message describing the offending input and
// satisfy errors.IsBuildError.
package spec

import (
	"strings"

	"github.com/teranos/dartpoet/dart/code"
	"github.com/teranos/dartpoet/errors"
)

// Kind identifies the variant of a Spec.
type Kind int

const (
	KindFile Kind = iota + 1
	KindClass
	KindExtension
	KindConstructor
	KindFunction
	KindProperty
	KindParameter
	KindAnnotation
	KindEnumEntry
	KindDirective
)

var kindNames = map[Kind]string{
	KindFile:        "file",
	KindClass:       "class",
	KindExtension:   "extension",
	KindConstructor: "constructor",
	KindFunction:    "function",
	KindProperty:    "property",
	KindParameter:   "parameter",
	KindAnnotation:  "annotation",
	KindEnumEntry:   "enum entry",
	KindDirective:   "directive",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Spec is an immutable Dart declaration. The set of implementations is
// closed: *File, *Class, *Extension, *Constructor, *Function, *Property,
// *Parameter, *Annotation, *EnumEntry and *Directive.
type Spec interface {
	Kind() Kind
	sealed()
}

// Emit renders s at the writer's current indentation.
func Emit(w *code.Writer, s Spec) {
	switch n := s.(type) {
	case *File:
		w.Emitf("%L", n.String())
	case *Class:
		writeClass(w, n)
	case *Extension:
		writeExtension(w, n)
	case *Constructor:
		writeConstructor(w, n)
	case *Function:
		writeFunction(w, n)
	case *Property:
		writeProperty(w, n)
	case *Parameter:
		writeParameter(w, n)
	case *Annotation:
		writeAnnotation(w, n)
	case *EnumEntry:
		writeEnumEntry(w, n)
	case *Directive:
		writeDirective(w, n)
	default:
		panic(errors.AssertionFailedf("unhandled spec node %T", s))
	}
}

// render returns the text of s on its own.
func render(s Spec) string {
	var sb strings.Builder
	Emit(code.NewWriter(&sb), s)
	return sb.String()
}

// identifier applies the private naming convention.
func identifier(name string, ms []Modifier) string {
	if hasModifier(ms, Private) && !strings.HasPrefix(name, "_") {
		return "_" + name
	}
	return name
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// emitModifiers writes every rendered modifier followed by a space.
func emitModifiers(w *code.Writer, ms []Modifier, skip ...Modifier) {
	for _, m := range ms {
		if !m.rendered() || hasModifier(skip, m) {
			continue
		}
		w.Emit(m.String())
		w.Emit(code.NBSP)
	}
}

func emitDocs(w *code.Writer, docs []string) {
	for _, line := range docs {
		w.EmitDoc(line)
	}
}

// fragmentText renders f without a surrounding context, for inspection.
func fragmentText(f code.Fragment) string {
	return strings.TrimSpace(f.String())
}

// specError is the builder's sticky error slot.
type specError struct {
	err error
}

func (s *specError) fail(err error) {
	if s.err == nil && err != nil {
		s.err = err
	}
}

// fragment parses format into a Fragment, recording a failure.
func (s *specError) fragment(format string, args []any) code.Fragment {
	f, err := code.Of(format, args...)
	if err != nil {
		s.fail(err)
	}
	return f
}

// children records a failure when one of items is nil, so that a node whose
// own Build failed never reaches a renderer.
func children[T any](s *specError, items []*T, child, owner string) []*T {
	for _, item := range items {
		if item == nil {
			s.fail(errors.NewBuildErrorf("The %s of %s can't be nil", child, owner))
			break
		}
	}
	return items
}

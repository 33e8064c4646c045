package spec

import (
	"github.com/teranos/dartpoet/dart/code"
	"github.com/teranos/dartpoet/errors"
)

// EnumEntry is one value of an enum, optionally with constructor arguments.
type EnumEntry struct {
	name        string
	args        []code.Fragment
	annotations []*Annotation
	docs        []string
}

func (*EnumEntry) Kind() Kind { return KindEnumEntry }
func (*EnumEntry) sealed()    {}

func (e *EnumEntry) Name() string { return e.name }

// Identifier implements code.Named.
func (e *EnumEntry) Identifier() string { return e.name }

func (e *EnumEntry) String() string { return render(e) }

// EnumEntryBuilder builds an EnumEntry.
type EnumEntryBuilder struct {
	specError
	name        string
	args        []code.Fragment
	annotations []*Annotation
	docs        []string
}

func NewEnumEntry(name string) *EnumEntryBuilder {
	return &EnumEntryBuilder{name: name}
}

// Argument adds one constructor argument.
func (b *EnumEntryBuilder) Argument(format string, args ...any) *EnumEntryBuilder {
	b.args = append(b.args, b.fragment(format, args))
	return b
}

func (b *EnumEntryBuilder) Annotations(as ...*Annotation) *EnumEntryBuilder {
	b.annotations = append(b.annotations, children(&b.specError, as, "annotation", "an enum entry")...)
	return b
}

func (b *EnumEntryBuilder) Docs(lines ...string) *EnumEntryBuilder {
	b.docs = append(b.docs, lines...)
	return b
}

func (b *EnumEntryBuilder) Build() (*EnumEntry, error) {
	if b.err != nil {
		return nil, b.err
	}
	if isBlank(b.name) {
		return nil, errors.NewBuildError("The name of an enum entry can't be empty")
	}
	return &EnumEntry{
		name:        b.name,
		args:        append([]code.Fragment(nil), b.args...),
		annotations: append([]*Annotation(nil), b.annotations...),
		docs:        append([]string(nil), b.docs...),
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *EnumEntryBuilder) MustBuild() *EnumEntry {
	e, err := b.Build()
	if err != nil {
		panic(err)
	}
	return e
}

var enumArguments = code.Layout{Open: "(", Close: ")", Separator: ",", Gap: " "}

func writeEnumEntry(w *code.Writer, e *EnumEntry) {
	emitDocs(w, e.docs)
	emitAnnotations(w, e.annotations, false)
	w.Emit(e.name)
	code.EmitSiblings(w, e.args, enumArguments, (*code.Writer).EmitCode)
}

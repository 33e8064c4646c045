package spec

import (
	"github.com/teranos/dartpoet/dart/code"
	"github.com/teranos/dartpoet/errors"
)

// Extension adds members to an existing type.
type Extension struct {
	name        string
	on          code.TypeName
	typeParams  []string
	annotations []*Annotation
	docs        []string
	constants   []*Property
	functions   []*Function
}

func (*Extension) Kind() Kind { return KindExtension }
func (*Extension) sealed()    {}

func (e *Extension) Name() string { return e.name }

func (e *Extension) String() string { return render(e) }

// ExtensionBuilder builds an Extension.
type ExtensionBuilder struct {
	specError
	e Extension
}

// NewExtension starts "extension name on typ". An empty name declares an
// unnamed extension.
func NewExtension(name string, on code.TypeName) *ExtensionBuilder {
	return &ExtensionBuilder{e: Extension{name: name, on: on}}
}

func (b *ExtensionBuilder) TypeParameters(names ...string) *ExtensionBuilder {
	b.e.typeParams = append(b.e.typeParams, names...)
	return b
}

func (b *ExtensionBuilder) Annotations(as ...*Annotation) *ExtensionBuilder {
	b.e.annotations = append(b.e.annotations, children(&b.specError, as, "annotation", "an extension")...)
	return b
}

func (b *ExtensionBuilder) Docs(lines ...string) *ExtensionBuilder {
	b.e.docs = append(b.e.docs, lines...)
	return b
}

// Constants adds static members; extensions can't declare instance fields.
func (b *ExtensionBuilder) Constants(ps ...*Property) *ExtensionBuilder {
	b.e.constants = append(b.e.constants, children(&b.specError, ps, "constant", "an extension")...)
	return b
}

func (b *ExtensionBuilder) Functions(fs ...*Function) *ExtensionBuilder {
	b.e.functions = append(b.e.functions, children(&b.specError, fs, "function", "an extension")...)
	return b
}

func (b *ExtensionBuilder) Build() (*Extension, error) {
	if b.err != nil {
		return nil, b.err
	}
	e := b.e
	if e.on.IsZero() {
		return nil, errors.NewBuildError("An extension needs a type to extend")
	}
	for _, p := range e.constants {
		if !hasModifier(p.modifiers, Static) {
			return nil, errors.NewBuildErrorf("The extension member %s must be static", p.name)
		}
	}
	e.typeParams = append([]string(nil), e.typeParams...)
	e.annotations = append([]*Annotation(nil), e.annotations...)
	e.docs = append([]string(nil), e.docs...)
	e.constants = append([]*Property(nil), e.constants...)
	e.functions = append([]*Function(nil), e.functions...)
	return &e, nil
}

// MustBuild is like Build but panics on error.
func (b *ExtensionBuilder) MustBuild() *Extension {
	e, err := b.Build()
	if err != nil {
		panic(err)
	}
	return e
}

func writeExtension(w *code.Writer, e *Extension) {
	emitDocs(w, e.docs)
	emitAnnotations(w, e.annotations, false)

	w.Emit("extension")
	if e.name != "" {
		w.Emit(" " + e.name)
	}
	emitTypeParameters(w, e.typeParams)
	w.Emit(" on ")
	w.EmitType(e.on)

	sections := []section{
		func(w *code.Writer) { emitProperties(w, e.constants) },
		func(w *code.Writer) { emitFunctions(w, e.functions) },
	}
	emitBody(w, sections, []bool{len(e.constants) > 0, len(e.functions) > 0}, false)
}

package spec

import (
	"strings"

	"github.com/teranos/dartpoet/dart/code"
	"github.com/teranos/dartpoet/errors"
)

// Property is a field, a class constant or a top-level variable.
type Property struct {
	name        string
	typ         code.TypeName
	nullable    bool
	initializer code.Fragment
	modifiers   []Modifier
	annotations []*Annotation
	docs        []string
}

func (*Property) Kind() Kind { return KindProperty }
func (*Property) sealed()    {}

func (p *Property) Name() string { return p.name }

// Identifier implements code.Named.
func (p *Property) Identifier() string { return identifier(p.name, p.modifiers) }

func (p *Property) String() string { return render(p) }

// PropertyBuilder builds a Property.
type PropertyBuilder struct {
	specError
	name        string
	typ         code.TypeName
	nullable    bool
	initializer code.Fragment
	modifiers   []Modifier
	annotations []*Annotation
	docs        []string
}

// NewProperty starts a property. A zero type declares it with its modifiers
// only (final, const) or with var.
func NewProperty(name string, typ code.TypeName) *PropertyBuilder {
	return &PropertyBuilder{name: name, typ: typ}
}

func (b *PropertyBuilder) Nullable(nullable bool) *PropertyBuilder {
	b.nullable = nullable
	return b
}

// Initializer sets the value assigned in the declaration.
func (b *PropertyBuilder) Initializer(format string, args ...any) *PropertyBuilder {
	b.initializer = b.fragment(format, args)
	return b
}

// InitializerFragment sets the value assigned in the declaration.
func (b *PropertyBuilder) InitializerFragment(f code.Fragment) *PropertyBuilder {
	b.initializer = f
	return b
}

func (b *PropertyBuilder) Modifiers(ms ...Modifier) *PropertyBuilder {
	for _, m := range ms {
		b.modifiers = appendModifier(b.modifiers, m)
	}
	return b
}

func (b *PropertyBuilder) Annotations(as ...*Annotation) *PropertyBuilder {
	b.annotations = append(b.annotations, children(&b.specError, as, "annotation", "a property")...)
	return b
}

func (b *PropertyBuilder) Docs(lines ...string) *PropertyBuilder {
	b.docs = append(b.docs, lines...)
	return b
}

func (b *PropertyBuilder) Build() (*Property, error) {
	if b.err != nil {
		return nil, b.err
	}
	if isBlank(b.name) {
		return nil, errors.NewBuildError("The name of a property can't be empty")
	}
	if err := validateModifiers(b.modifiers, TargetProperty); err != nil {
		return nil, err
	}
	if hasModifier(b.modifiers, Const) && b.initializer.IsEmpty() {
		return nil, errors.NewBuildErrorf("The const property %s needs an initializer", b.name)
	}
	if hasModifier(b.modifiers, Const) && hasModifier(b.modifiers, Late) {
		return nil, errors.NewBuildError("A property can't be late and const")
	}
	return &Property{
		name:        b.name,
		typ:         b.typ,
		nullable:    b.nullable,
		initializer: b.initializer,
		modifiers:   append([]Modifier(nil), b.modifiers...),
		annotations: append([]*Annotation(nil), b.annotations...),
		docs:        append([]string(nil), b.docs...),
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *PropertyBuilder) MustBuild() *Property {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}

func writeProperty(w *code.Writer, p *Property) {
	emitDocs(w, p.docs)
	emitAnnotations(w, p.annotations, false)
	emitModifiers(w, p.modifiers)

	switch {
	case !p.typ.IsZero():
		w.EmitType(p.typ)
		if p.nullable && !p.typ.Nullable {
			w.Emit("?")
		}
		w.Emit(" ")
	case !hasRenderedModifier(p.modifiers):
		w.Emit("var ")
	}
	w.Emit(p.Identifier())

	if !p.initializer.IsEmpty() {
		// an initializer written as "= value" keeps its own assignment
		if strings.HasPrefix(fragmentText(p.initializer), "=") {
			w.Emit(" ")
		} else {
			w.Emit(" = ")
		}
		w.EmitCode(p.initializer.Trim())
	}
	w.Emit(";")
}

func hasRenderedModifier(ms []Modifier) bool {
	for _, m := range ms {
		if m.rendered() {
			return true
		}
	}
	return false
}

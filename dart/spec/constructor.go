package spec

import (
	"github.com/teranos/dartpoet/dart/code"
	"github.com/teranos/dartpoet/errors"
)

// Constructor is a generative, named or factory constructor.
type Constructor struct {
	className   string
	named       string
	params      []*Parameter
	initializer code.Fragment
	body        code.Fragment
	modifiers   []Modifier
	annotations []*Annotation
	docs        []string
	lambda      bool
}

func (*Constructor) Kind() Kind { return KindConstructor }
func (*Constructor) sealed()    {}

// Identifier implements code.Named, e.g. "Model.fromJson".
func (c *Constructor) Identifier() string {
	if c.named == "" {
		return c.className
	}
	return c.className + "." + c.named
}

// IsFactory reports whether the constructor is a factory.
func (c *Constructor) IsFactory() bool { return hasModifier(c.modifiers, Factory) }

func (c *Constructor) String() string { return render(c) }

// ConstructorBuilder builds a Constructor.
type ConstructorBuilder struct {
	specError
	className   string
	named       string
	params      []*Parameter
	initializer code.Fragment
	body        code.Fragment
	modifiers   []Modifier
	annotations []*Annotation
	docs        []string
	lambda      bool
}

// NewConstructor starts the unnamed constructor of className.
func NewConstructor(className string) *ConstructorBuilder {
	return &ConstructorBuilder{className: className}
}

// NewNamedConstructor starts className.name.
func NewNamedConstructor(className, name string) *ConstructorBuilder {
	return &ConstructorBuilder{className: className, named: name}
}

func (b *ConstructorBuilder) Parameters(ps ...*Parameter) *ConstructorBuilder {
	b.params = append(b.params, children(&b.specError, ps, "parameter", "a constructor")...)
	return b
}

// Initializer appends to the initializer list, or to the redirected
// expression of a lambda constructor.
func (b *ConstructorBuilder) Initializer(format string, args ...any) *ConstructorBuilder {
	b.initializer = b.initializer.Merge(b.fragment(format, args))
	return b
}

// InitializerFragment appends to the initializer list.
func (b *ConstructorBuilder) InitializerFragment(f code.Fragment) *ConstructorBuilder {
	b.initializer = b.initializer.Merge(f)
	return b
}

// Body appends to the constructor body.
func (b *ConstructorBuilder) Body(format string, args ...any) *ConstructorBuilder {
	b.body = b.body.Merge(b.fragment(format, args))
	return b
}

// BodyFragment appends to the constructor body.
func (b *ConstructorBuilder) BodyFragment(f code.Fragment) *ConstructorBuilder {
	b.body = b.body.Merge(f)
	return b
}

// Factory adds the factory modifier.
func (b *ConstructorBuilder) Factory() *ConstructorBuilder {
	return b.Modifiers(Factory)
}

// Const adds the const modifier.
func (b *ConstructorBuilder) Const() *ConstructorBuilder {
	return b.Modifiers(Const)
}

// Lambda renders the initializer as "=> expression".
func (b *ConstructorBuilder) Lambda(lambda bool) *ConstructorBuilder {
	b.lambda = lambda
	return b
}

func (b *ConstructorBuilder) Modifiers(ms ...Modifier) *ConstructorBuilder {
	for _, m := range ms {
		b.modifiers = appendModifier(b.modifiers, m)
	}
	return b
}

func (b *ConstructorBuilder) Annotations(as ...*Annotation) *ConstructorBuilder {
	b.annotations = append(b.annotations, children(&b.specError, as, "annotation", "a constructor")...)
	return b
}

func (b *ConstructorBuilder) Docs(lines ...string) *ConstructorBuilder {
	b.docs = append(b.docs, lines...)
	return b
}

func (b *ConstructorBuilder) Build() (*Constructor, error) {
	if b.err != nil {
		return nil, b.err
	}
	if isBlank(b.className) {
		return nil, errors.NewBuildError("The name of a constructor can't be empty")
	}
	if err := validateModifiers(b.modifiers, TargetConstructor); err != nil {
		return nil, err
	}
	if b.lambda && b.initializer.IsEmpty() {
		return nil, errors.NewBuildError("A lambda constructor needs an initializer")
	}
	if b.lambda && !b.body.IsEmpty() {
		return nil, errors.NewBuildError("A lambda constructor can't have a body")
	}
	if hasModifier(b.modifiers, Const) && !b.body.IsEmpty() {
		return nil, errors.NewBuildError("A const constructor can't have a body")
	}
	if err := checkParameterGroups("constructor", b.params); err != nil {
		return nil, err
	}
	return &Constructor{
		className:   b.className,
		named:       b.named,
		params:      append([]*Parameter(nil), b.params...),
		initializer: b.initializer,
		body:        b.body,
		modifiers:   append([]Modifier(nil), b.modifiers...),
		annotations: append([]*Annotation(nil), b.annotations...),
		docs:        append([]string(nil), b.docs...),
		lambda:      b.lambda,
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *ConstructorBuilder) MustBuild() *Constructor {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

func writeConstructor(w *code.Writer, c *Constructor) {
	emitDocs(w, c.docs)
	emitAnnotations(w, c.annotations, false)

	// const and factory lead, whatever order they were declared in
	if hasModifier(c.modifiers, External) {
		w.Emit("external ")
	}
	if hasModifier(c.modifiers, Const) {
		w.Emit("const ")
	}
	if c.IsFactory() {
		w.Emit("factory ")
	}
	w.Emit(c.Identifier())
	emitParameters(w, c.params, true)

	switch {
	case c.lambda:
		initializer := c.initializer.Trim()
		w.Emit(" =>\n")
		w.Indent(2)
		w.EmitCode(initializer)
		terminate(w, initializer)
		w.EnsureNewline()
		w.Unindent(2)
	case !c.initializer.IsEmpty():
		w.Emit(": ")
		w.EmitCode(c.initializer.Trim())
		if c.body.IsEmpty() {
			w.Emit(";")
		} else {
			writeBlock(w, c.body)
		}
	case !c.body.IsEmpty():
		writeBlock(w, c.body)
	case c.IsFactory():
		w.Emit(" = _" + c.className + ";")
	default:
		w.Emit(";")
	}
}

// writeBlock writes " {", the indented body and "}".
func writeBlock(w *code.Writer, body code.Fragment) {
	w.Emit(" {\n")
	w.Indent()
	w.EmitCodeNewline(body.WithBoundKeywords())
	w.Unindent()
	w.Emit("}")
}

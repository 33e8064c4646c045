package spec

import (
	"github.com/teranos/dartpoet/dart/code"
	"github.com/teranos/dartpoet/errors"
)

// ClassKind selects the declaration keyword of a Class.
type ClassKind int

const (
	ClassKindClass ClassKind = iota + 1
	ClassKindAbstract
	ClassKindMixin
	ClassKindEnum
	// ClassKindLibrary holds top-level members without a declaration.
	ClassKindLibrary
)

var classKeywords = map[ClassKind]string{
	ClassKindClass:    "class",
	ClassKindAbstract: "abstract class",
	ClassKindMixin:    "mixin",
	ClassKindEnum:     "enum",
}

func (k ClassKind) String() string {
	if k == ClassKindLibrary {
		return "library"
	}
	return classKeywords[k]
}

// Class is a class, mixin, enum, or a group of top-level members.
type Class struct {
	name           string
	kind           ClassKind
	typeParams     []string
	superclass     code.TypeName
	mixins         []code.TypeName
	interfaces     []code.TypeName
	on             []code.TypeName
	modifiers      []Modifier
	annotations    []*Annotation
	docs           []string
	entries        []*EnumEntry
	constants      []*Property
	properties     []*Property
	constructors   []*Constructor
	functions      []*Function
	endWithNewLine bool
}

func (*Class) Kind() Kind { return KindClass }
func (*Class) sealed()    {}

func (c *Class) Name() string { return c.name }

// ClassKind returns the declaration kind.
func (c *Class) ClassKind() ClassKind { return c.kind }

// Identifier implements code.Named.
func (c *Class) Identifier() string { return identifier(c.name, c.modifiers) }

func (c *Class) String() string { return render(c) }

// ClassBuilder builds a Class.
type ClassBuilder struct {
	specError
	c Class
}

// NewClass starts a class.
func NewClass(name string) *ClassBuilder {
	return &ClassBuilder{c: Class{name: name, kind: ClassKindClass}}
}

// NewAbstractClass starts an abstract class.
func NewAbstractClass(name string) *ClassBuilder {
	return &ClassBuilder{c: Class{name: name, kind: ClassKindAbstract}}
}

// NewMixin starts a mixin.
func NewMixin(name string) *ClassBuilder {
	return &ClassBuilder{c: Class{name: name, kind: ClassKindMixin}}
}

// NewEnum starts an enum.
func NewEnum(name string) *ClassBuilder {
	return &ClassBuilder{c: Class{name: name, kind: ClassKindEnum}}
}

// NewLibrary starts a group of top-level members rendered without an
// enclosing declaration.
func NewLibrary() *ClassBuilder {
	return &ClassBuilder{c: Class{kind: ClassKindLibrary}}
}

func (b *ClassBuilder) TypeParameters(names ...string) *ClassBuilder {
	b.c.typeParams = append(b.c.typeParams, names...)
	return b
}

func (b *ClassBuilder) Extends(t code.TypeName) *ClassBuilder {
	b.c.superclass = t
	return b
}

func (b *ClassBuilder) With(ts ...code.TypeName) *ClassBuilder {
	b.c.mixins = append(b.c.mixins, ts...)
	return b
}

func (b *ClassBuilder) Implements(ts ...code.TypeName) *ClassBuilder {
	b.c.interfaces = append(b.c.interfaces, ts...)
	return b
}

// On restricts a mixin to subtypes of ts.
func (b *ClassBuilder) On(ts ...code.TypeName) *ClassBuilder {
	b.c.on = append(b.c.on, ts...)
	return b
}

func (b *ClassBuilder) Modifiers(ms ...Modifier) *ClassBuilder {
	for _, m := range ms {
		b.c.modifiers = appendModifier(b.c.modifiers, m)
	}
	return b
}

func (b *ClassBuilder) Annotations(as ...*Annotation) *ClassBuilder {
	b.c.annotations = append(b.c.annotations, children(&b.specError, as, "annotation", "a class")...)
	return b
}

func (b *ClassBuilder) Docs(lines ...string) *ClassBuilder {
	b.c.docs = append(b.c.docs, lines...)
	return b
}

func (b *ClassBuilder) EnumEntries(es ...*EnumEntry) *ClassBuilder {
	b.c.entries = append(b.c.entries, children(&b.specError, es, "enum entry", "a class")...)
	return b
}

func (b *ClassBuilder) Constants(ps ...*Property) *ClassBuilder {
	b.c.constants = append(b.c.constants, children(&b.specError, ps, "constant", "a class")...)
	return b
}

func (b *ClassBuilder) Properties(ps ...*Property) *ClassBuilder {
	b.c.properties = append(b.c.properties, children(&b.specError, ps, "property", "a class")...)
	return b
}

func (b *ClassBuilder) Constructors(cs ...*Constructor) *ClassBuilder {
	b.c.constructors = append(b.c.constructors, children(&b.specError, cs, "constructor", "a class")...)
	return b
}

func (b *ClassBuilder) Functions(fs ...*Function) *ClassBuilder {
	b.c.functions = append(b.c.functions, children(&b.specError, fs, "function", "a class")...)
	return b
}

// EndWithNewLine leaves a blank line before the closing brace.
func (b *ClassBuilder) EndWithNewLine(end bool) *ClassBuilder {
	b.c.endWithNewLine = end
	return b
}

// Fail records err as the builder's error. Collaborators building members
// for the class use it to surface their own failures from Build.
func (b *ClassBuilder) Fail(err error) *ClassBuilder {
	b.fail(err)
	return b
}

func (b *ClassBuilder) Build() (*Class, error) {
	if b.err != nil {
		return nil, b.err
	}
	c := b.c
	if c.kind != ClassKindLibrary && isBlank(c.name) {
		return nil, errors.NewBuildError("The name of a class can't be empty")
	}
	if err := validateModifiers(c.modifiers, TargetClass); err != nil {
		return nil, err
	}
	switch c.kind {
	case ClassKindEnum:
		if len(c.entries) == 0 {
			return nil, errors.NewBuildErrorf("The enum %s needs at least one entry", c.name)
		}
		if !c.superclass.IsZero() {
			return nil, errors.NewBuildError("An enum can't extend another class")
		}
	case ClassKindMixin:
		if len(c.constructors) > 0 {
			return nil, errors.NewBuildError("A mixin can't declare constructors")
		}
	case ClassKindLibrary:
		if len(c.constructors) > 0 {
			return nil, errors.NewBuildError("A library can't declare constructors")
		}
	}
	if c.kind != ClassKindEnum && len(c.entries) > 0 {
		return nil, errors.NewBuildError("Only enums can declare entries")
	}
	if c.kind != ClassKindMixin && len(c.on) > 0 {
		return nil, errors.NewBuildError("Only mixins can declare an on clause")
	}

	c.typeParams = append([]string(nil), c.typeParams...)
	c.mixins = append([]code.TypeName(nil), c.mixins...)
	c.interfaces = append([]code.TypeName(nil), c.interfaces...)
	c.on = append([]code.TypeName(nil), c.on...)
	c.modifiers = append([]Modifier(nil), c.modifiers...)
	c.annotations = append([]*Annotation(nil), c.annotations...)
	c.docs = append([]string(nil), c.docs...)
	c.entries = append([]*EnumEntry(nil), c.entries...)
	c.constants = append([]*Property(nil), c.constants...)
	c.properties = append([]*Property(nil), c.properties...)
	c.constructors = append([]*Constructor(nil), c.constructors...)
	c.functions = append([]*Function(nil), c.functions...)
	return &c, nil
}

// MustBuild is like Build but panics on error.
func (b *ClassBuilder) MustBuild() *Class {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Class) sections() ([]section, []bool) {
	hasMembers := len(c.constants)+len(c.properties)+len(c.constructors)+len(c.functions) > 0
	sections := []section{
		func(w *code.Writer) { emitEnumEntries(w, c.entries, hasMembers) },
		func(w *code.Writer) { emitProperties(w, c.constants) },
		func(w *code.Writer) { emitProperties(w, c.properties) },
		func(w *code.Writer) { emitConstructors(w, c.constructors) },
		func(w *code.Writer) { emitFunctions(w, c.functions) },
	}
	nonEmpty := []bool{
		len(c.entries) > 0,
		len(c.constants) > 0,
		len(c.properties) > 0,
		len(c.constructors) > 0,
		len(c.functions) > 0,
	}
	return sections, nonEmpty
}

func writeClass(w *code.Writer, c *Class) {
	emitDocs(w, c.docs)
	emitAnnotations(w, c.annotations, false)

	sections, nonEmpty := c.sections()
	if c.kind == ClassKindLibrary {
		for i, emit := range sections {
			if nonEmpty[i] {
				w.BlankLine()
				emit(w)
			}
		}
		return
	}

	emitModifiers(w, c.modifiers, Abstract)
	if hasModifier(c.modifiers, Abstract) && c.kind == ClassKindClass {
		w.Emit("abstract ")
	}
	w.Emit(classKeywords[c.kind])
	w.Emit(" ")
	w.Emit(c.Identifier())
	emitTypeParameters(w, c.typeParams)
	if !c.superclass.IsZero() {
		w.Emit(" extends ")
		w.EmitType(c.superclass)
	}
	emitTypeList(w, "on", c.on)
	emitTypeList(w, "with", c.mixins)
	emitTypeList(w, "implements", c.interfaces)

	emitBody(w, sections, nonEmpty, c.endWithNewLine)
}

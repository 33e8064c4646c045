package spec

import (
	"github.com/teranos/dartpoet/dart/code"
	"github.com/teranos/dartpoet/errors"
)

// Parameter is a function or constructor parameter. A parameter without a
// type is an initializing formal and renders as this.name.
type Parameter struct {
	name        string
	typ         code.TypeName
	typed       bool
	named       bool
	nullable    bool
	super       bool
	initializer code.Fragment
	modifiers   []Modifier
	annotations []*Annotation
}

func (*Parameter) Kind() Kind { return KindParameter }
func (*Parameter) sealed()    {}

func (p *Parameter) Name() string { return p.name }

// Identifier implements code.Named.
func (p *Parameter) Identifier() string { return p.name }

// IsRequired reports whether the parameter carries the required modifier.
func (p *Parameter) IsRequired() bool { return hasModifier(p.modifiers, Required) }

// IsNamed reports whether the parameter belongs to the named group.
func (p *Parameter) IsNamed() bool { return p.named || p.IsRequired() }

// IsOptional reports whether the parameter belongs to the optional
// positional group.
func (p *Parameter) IsOptional() bool { return !p.IsNamed() && !p.initializer.IsEmpty() }

func (p *Parameter) String() string { return render(p) }

// ToBuilder returns a builder seeded with p.
func (p *Parameter) ToBuilder() *ParameterBuilder {
	return &ParameterBuilder{
		name:        p.name,
		typ:         p.typ,
		typed:       p.typed,
		named:       p.named,
		nullable:    p.nullable,
		super:       p.super,
		initializer: p.initializer,
		modifiers:   append([]Modifier(nil), p.modifiers...),
		annotations: append([]*Annotation(nil), p.annotations...),
	}
}

// ParameterBuilder builds a Parameter.
type ParameterBuilder struct {
	specError
	name        string
	typ         code.TypeName
	typed       bool
	named       bool
	nullable    bool
	super       bool
	initializer code.Fragment
	modifiers   []Modifier
	annotations []*Annotation
}

// NewParameter starts a typed parameter.
func NewParameter(name string, typ code.TypeName) *ParameterBuilder {
	return &ParameterBuilder{name: name, typ: typ, typed: true}
}

// NewFieldParameter starts an untyped parameter that initializes the field
// of the same name.
func NewFieldParameter(name string) *ParameterBuilder {
	return &ParameterBuilder{name: name}
}

// Named places the parameter in the named group.
func (b *ParameterBuilder) Named(named bool) *ParameterBuilder {
	b.named = named
	return b
}

// Required marks the parameter required; required parameters are named.
func (b *ParameterBuilder) Required(required bool) *ParameterBuilder {
	if required {
		b.modifiers = appendModifier(b.modifiers, Required)
		return b
	}
	filtered := b.modifiers[:0]
	for _, m := range b.modifiers {
		if m != Required {
			filtered = append(filtered, m)
		}
	}
	b.modifiers = filtered
	return b
}

// Nullable appends "?" to the type.
func (b *ParameterBuilder) Nullable(nullable bool) *ParameterBuilder {
	b.nullable = nullable
	return b
}

// Super makes an untyped parameter forward to the superclass (super.name).
func (b *ParameterBuilder) Super(super bool) *ParameterBuilder {
	b.super = super
	return b
}

// Default sets the default value.
func (b *ParameterBuilder) Default(format string, args ...any) *ParameterBuilder {
	b.initializer = b.fragment(format, args)
	return b
}

// DefaultFragment sets the default value.
func (b *ParameterBuilder) DefaultFragment(f code.Fragment) *ParameterBuilder {
	b.initializer = f
	return b
}

func (b *ParameterBuilder) Modifiers(ms ...Modifier) *ParameterBuilder {
	for _, m := range ms {
		b.modifiers = appendModifier(b.modifiers, m)
	}
	return b
}

func (b *ParameterBuilder) Annotations(as ...*Annotation) *ParameterBuilder {
	b.annotations = append(b.annotations, children(&b.specError, as, "annotation", "a parameter")...)
	return b
}

func (b *ParameterBuilder) Build() (*Parameter, error) {
	if b.err != nil {
		return nil, b.err
	}
	if isBlank(b.name) {
		return nil, errors.NewBuildError("The name of a parameter can't be empty")
	}
	if b.typed && b.typ.IsZero() {
		return nil, errors.NewBuildError("The type can't be empty")
	}
	if err := validateModifiers(b.modifiers, TargetParameter); err != nil {
		return nil, err
	}
	if hasModifier(b.modifiers, Const) {
		if hasModifier(b.modifiers, Required) {
			return nil, errors.NewBuildError("The required keyword can't be used in combination with const")
		}
		if len(b.modifiers) > 1 {
			return nil, errors.NewBuildError("When a parameter should be const no other modifiers are allowed")
		}
	}
	return &Parameter{
		name:        b.name,
		typ:         b.typ,
		typed:       b.typed,
		named:       b.named,
		nullable:    b.nullable,
		super:       b.super,
		initializer: b.initializer,
		modifiers:   append([]Modifier(nil), b.modifiers...),
		annotations: append([]*Annotation(nil), b.annotations...),
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *ParameterBuilder) MustBuild() *Parameter {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}

func writeParameter(w *code.Writer, p *Parameter) {
	emitAnnotations(w, p.annotations, true)
	emitModifiers(w, p.modifiers)

	prefix := "this."
	if p.super {
		prefix = "super."
	}
	if p.typed {
		w.EmitType(p.typ)
		if p.nullable && !p.typ.Nullable {
			w.Emit("?")
		}
		w.Emit(" ")
		if p.super {
			w.Emit(prefix)
		}
	} else {
		w.Emit(prefix)
	}
	w.Emit(p.name)

	if !p.initializer.IsEmpty() {
		w.Emit(" = ")
		w.EmitCode(p.initializer)
	}
}

// parameterGroups splits params into positional, named and optional
// positional parameters, keeping their relative order.
func parameterGroups(params []*Parameter) (positional, named, optional []*Parameter) {
	for _, p := range params {
		switch {
		case p.IsNamed():
			named = append(named, p)
		case p.IsOptional():
			optional = append(optional, p)
		default:
			positional = append(positional, p)
		}
	}
	return positional, named, optional
}

// checkParameterGroups rejects lists mixing named and optional positional
// parameters, which Dart does not allow.
func checkParameterGroups(owner string, params []*Parameter) error {
	_, named, optional := parameterGroups(params)
	if len(named) > 0 && len(optional) > 0 {
		return errors.NewBuildErrorf("A %s can't have named and optional positional parameters", owner)
	}
	return nil
}

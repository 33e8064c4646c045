package spec

import (
	"strings"

	"github.com/teranos/dartpoet/dart/code"
	"github.com/teranos/dartpoet/errors"
)

// Function is a method, a top-level function, an accessor or a typedef.
type Function struct {
	name        string
	returns     code.TypeName
	typeParams  []string
	params      []*Parameter
	body        code.Fragment
	modifiers   []Modifier
	annotations []*Annotation
	docs        []string
	async       bool
	lambda      bool
	getter      bool
	setter      bool
	typedef     bool
}

func (*Function) Kind() Kind { return KindFunction }
func (*Function) sealed()    {}

func (f *Function) Name() string { return f.name }

// Identifier implements code.Named.
func (f *Function) Identifier() string { return identifier(f.name, f.modifiers) }

func (f *Function) String() string { return render(f) }

// IsAsync reports whether the function is async.
func (f *Function) IsAsync() bool { return f.async || hasModifier(f.modifiers, Async) }

// ToBuilder returns a builder seeded with f.
func (f *Function) ToBuilder() *FunctionBuilder {
	return &FunctionBuilder{
		name:        f.name,
		returns:     f.returns,
		typeParams:  append([]string(nil), f.typeParams...),
		params:      append([]*Parameter(nil), f.params...),
		body:        f.body,
		modifiers:   append([]Modifier(nil), f.modifiers...),
		annotations: append([]*Annotation(nil), f.annotations...),
		docs:        append([]string(nil), f.docs...),
		async:       f.async,
		lambda:      f.lambda,
		getter:      f.getter,
		setter:      f.setter,
		typedef:     f.typedef,
	}
}

// FunctionBuilder builds a Function.
type FunctionBuilder struct {
	specError
	name        string
	returns     code.TypeName
	typeParams  []string
	params      []*Parameter
	body        code.Fragment
	modifiers   []Modifier
	annotations []*Annotation
	docs        []string
	async       bool
	lambda      bool
	getter      bool
	setter      bool
	typedef     bool
}

// NewFunction starts a function. Without a return type it returns void.
func NewFunction(name string) *FunctionBuilder {
	return &FunctionBuilder{name: name}
}

func (b *FunctionBuilder) Returns(t code.TypeName) *FunctionBuilder {
	b.returns = t
	return b
}

// TypeParameters declares generic parameters such as "T extends Object".
func (b *FunctionBuilder) TypeParameters(names ...string) *FunctionBuilder {
	b.typeParams = append(b.typeParams, names...)
	return b
}

func (b *FunctionBuilder) Parameters(ps ...*Parameter) *FunctionBuilder {
	b.params = append(b.params, children(&b.specError, ps, "parameter", "a function")...)
	return b
}

// Body appends to the function body.
func (b *FunctionBuilder) Body(format string, args ...any) *FunctionBuilder {
	b.body = b.body.Merge(b.fragment(format, args))
	return b
}

// BodyFragment appends to the function body.
func (b *FunctionBuilder) BodyFragment(f code.Fragment) *FunctionBuilder {
	b.body = b.body.Merge(f)
	return b
}

func (b *FunctionBuilder) Modifiers(ms ...Modifier) *FunctionBuilder {
	for _, m := range ms {
		b.modifiers = appendModifier(b.modifiers, m)
	}
	return b
}

func (b *FunctionBuilder) Annotations(as ...*Annotation) *FunctionBuilder {
	b.annotations = append(b.annotations, children(&b.specError, as, "annotation", "a function")...)
	return b
}

func (b *FunctionBuilder) Docs(lines ...string) *FunctionBuilder {
	b.docs = append(b.docs, lines...)
	return b
}

// Async wraps the return type in a Future and marks the body async.
func (b *FunctionBuilder) Async(async bool) *FunctionBuilder {
	b.async = async
	return b
}

// Lambda renders the body as an expression after "=>".
func (b *FunctionBuilder) Lambda(lambda bool) *FunctionBuilder {
	b.lambda = lambda
	return b
}

func (b *FunctionBuilder) Getter(getter bool) *FunctionBuilder {
	b.getter = getter
	return b
}

func (b *FunctionBuilder) Setter(setter bool) *FunctionBuilder {
	b.setter = setter
	return b
}

// Typedef renders "typedef Name = Returns(params);".
func (b *FunctionBuilder) Typedef(typedef bool) *FunctionBuilder {
	b.typedef = typedef
	return b
}

func (b *FunctionBuilder) Build() (*Function, error) {
	if b.err != nil {
		return nil, b.err
	}
	if isBlank(b.name) {
		return nil, errors.NewBuildError("The name of a function can't be empty")
	}
	if err := validateModifiers(b.modifiers, TargetFunction); err != nil {
		return nil, err
	}
	if hasModifier(b.modifiers, Abstract) && !b.body.IsEmpty() {
		return nil, errors.NewBuildError("An abstract method can't have a body")
	}
	if b.getter && b.setter {
		return nil, errors.NewBuildError("A function can't be a getter and a setter at the same time")
	}
	if b.getter && len(b.params) > 0 {
		return nil, errors.NewBuildError("A getter can't have parameters")
	}
	if b.getter && b.returns.IsZero() {
		return nil, errors.NewBuildError("A getter needs a return type")
	}
	if b.setter && len(b.params) != 1 {
		return nil, errors.NewBuildError("A setter needs exactly one parameter")
	}
	if b.typedef && b.returns.IsZero() {
		return nil, errors.NewBuildError("A typedef needs a return type")
	}
	if b.lambda && b.body.IsEmpty() {
		return nil, errors.NewBuildError("A lambda function needs a body")
	}
	if b.getter && !b.body.IsEmpty() && startsWithReturn(fragmentText(b.body)) {
		return nil, errors.NewBuildError("The body of a getter is an expression and can't start with return")
	}
	if err := checkParameterGroups("function", b.params); err != nil {
		return nil, err
	}
	return &Function{
		name:        b.name,
		returns:     b.returns,
		typeParams:  append([]string(nil), b.typeParams...),
		params:      append([]*Parameter(nil), b.params...),
		body:        b.body,
		modifiers:   append([]Modifier(nil), b.modifiers...),
		annotations: append([]*Annotation(nil), b.annotations...),
		docs:        append([]string(nil), b.docs...),
		async:       b.async,
		lambda:      b.lambda,
		getter:      b.getter,
		setter:      b.setter,
		typedef:     b.typedef,
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *FunctionBuilder) MustBuild() *Function {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}

func writeFunction(w *code.Writer, f *Function) {
	emitDocs(w, f.docs)
	if f.typedef {
		writeTypedef(w, f)
		return
	}
	emitAnnotations(w, f.annotations, false)
	emitModifiers(w, f.modifiers, Async)

	async := f.IsAsync()
	switch {
	case f.setter:
		w.Emit("set ")
	case f.returns.IsZero() && async:
		w.Emitf("%T ", code.FutureOf(code.Void))
	case f.returns.IsZero():
		w.Emitf("%T ", code.Void)
	default:
		if async {
			w.Emitf("%T", code.FutureOf(f.returns))
		} else {
			w.EmitType(f.returns)
		}
		if f.getter {
			w.Emit(" get")
		}
		w.Emit(" ")
	}
	w.Emit(f.Identifier())
	emitTypeParameters(w, f.typeParams)

	if f.getter {
		if f.body.IsEmpty() {
			w.Emit(";")
			return
		}
		if async {
			w.Emit(" async")
		}
		writeExpressionBody(w, f.body)
		return
	}

	emitParameters(w, f.params, false)

	if f.body.IsEmpty() {
		if hasModifier(f.modifiers, Abstract) || hasModifier(f.modifiers, External) {
			w.Emit(";")
		} else {
			w.Emit(" { }")
		}
		return
	}
	if async {
		w.Emit(" async")
	}
	if f.lambda {
		writeExpressionBody(w, f.body)
		return
	}
	writeBlock(w, f.body)
}

// writeExpressionBody writes " => expression;". Continuation lines of the
// expression are indented two levels.
func writeExpressionBody(w *code.Writer, body code.Fragment) {
	body = body.Trim()
	w.Emit(" => ")
	w.Indent(2)
	w.EmitCode(body.WithBoundKeywords())
	terminate(w, body)
	w.Unindent(2)
}

// terminate appends the ";" an expression body is missing.
func terminate(w *code.Writer, body code.Fragment) {
	if !strings.HasSuffix(fragmentText(body), ";") {
		w.Emit(";")
	}
}

func writeTypedef(w *code.Writer, f *Function) {
	w.Emit("typedef ")
	w.Emit(f.Identifier())
	emitTypeParameters(w, f.typeParams)
	w.Emit(" = ")
	w.EmitType(f.returns)
	if len(f.params) > 0 {
		emitParameters(w, f.params, false)
	}
	w.Emit(";")
}

func emitTypeParameters(w *code.Writer, names []string) {
	if len(names) == 0 {
		return
	}
	w.Emit("<" + strings.Join(names, ", ") + ">")
}

func startsWithReturn(text string) bool {
	return text == "return" || strings.HasPrefix(text, "return ") || strings.HasPrefix(text, "return;")
}

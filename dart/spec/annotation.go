package spec

import (
	"github.com/teranos/dartpoet/dart/code"
	"github.com/teranos/dartpoet/errors"
)

// Annotation is a metadata annotation such as @override or
// @JsonKey(name: 'id').
type Annotation struct {
	typ       code.TypeName
	content   []code.Fragment
	multiline bool
	call      bool
}

func (*Annotation) Kind() Kind { return KindAnnotation }
func (*Annotation) sealed()    {}

// Type returns the annotation's type.
func (a *Annotation) Type() code.TypeName { return a.typ }

func (a *Annotation) String() string { return render(a) }

// AnnotationBuilder builds an Annotation.
type AnnotationBuilder struct {
	specError
	typ       code.TypeName
	content   []code.Fragment
	multiline bool
	call      bool
}

// NewAnnotation starts an annotation with a core or already imported name.
func NewAnnotation(name string) *AnnotationBuilder {
	return &AnnotationBuilder{typ: code.Type(name)}
}

// NewAnnotationOf starts an annotation whose type registers its library.
func NewAnnotationOf(t code.TypeName) *AnnotationBuilder {
	return &AnnotationBuilder{typ: t}
}

// Content adds one argument of the annotation.
func (b *AnnotationBuilder) Content(format string, args ...any) *AnnotationBuilder {
	b.content = append(b.content, b.fragment(format, args))
	return b
}

// ContentFragment adds one argument of the annotation.
func (b *AnnotationBuilder) ContentFragment(f code.Fragment) *AnnotationBuilder {
	b.content = append(b.content, f)
	return b
}

// Call renders the parentheses even without arguments, as in
// @JsonSerializable().
func (b *AnnotationBuilder) Call() *AnnotationBuilder {
	b.call = true
	return b
}

// Multiline renders every argument on its own line.
func (b *AnnotationBuilder) Multiline(multiline bool) *AnnotationBuilder {
	b.multiline = multiline
	return b
}

func (b *AnnotationBuilder) Build() (*Annotation, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.typ.IsZero() {
		return nil, errors.NewBuildError("The name of an annotation can't be empty")
	}
	return &Annotation{
		typ:       b.typ,
		content:   append([]code.Fragment(nil), b.content...),
		multiline: b.multiline,
		call:      b.call,
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *AnnotationBuilder) MustBuild() *Annotation {
	a, err := b.Build()
	if err != nil {
		panic(err)
	}
	return a
}

func writeAnnotation(w *code.Writer, a *Annotation) {
	w.Emit("@")
	w.EmitType(a.typ)
	if len(a.content) == 0 && !a.call {
		return
	}
	layout := code.Layout{Open: "(", Close: ")", Separator: ",", Gap: " ", KeepEmpty: true}
	if a.multiline {
		layout = code.Layout{Open: "(", Close: ")", Separator: ",", Block: true, KeepEmpty: true}
	}
	code.EmitSiblings(w, a.content, layout, (*code.Writer).EmitCode)
}

package code

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/teranos/dartpoet/errors"
)

// Builder accumulates a Fragment. Methods chain; the first error is kept and
// returned by Build, later calls become no-ops.
type Builder struct {
	parts []string
	args  []any
	err   error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends format with its arguments.
func (b *Builder) Add(format string, args ...any) *Builder {
	if b.err != nil {
		return b
	}
	parts, err := parse(format, args)
	if err != nil {
		b.err = err
		return b
	}
	b.parts = append(b.parts, parts...)
	b.args = append(b.args, args...)
	return b
}

// AddStatement appends format as one statement terminated by a line break.
// A line break is inserted first when the builder currently ends mid-line.
func (b *Builder) AddStatement(format string, args ...any) *Builder {
	if b.endsMidLine() {
		b.Add("\n")
	}
	return b.Add(StatementBeginMarker+format+"\n"+StatementEndMarker, args...)
}

// AddFragment appends the contents of f.
func (b *Builder) AddFragment(f Fragment) *Builder {
	if b.err != nil {
		return b
	}
	b.parts = append(b.parts, f.parts...)
	b.args = append(b.args, f.args...)
	return b
}

// Indent increases the indentation of everything added afterwards.
func (b *Builder) Indent() *Builder {
	return b.Add(IndentMarker)
}

// Unindent decreases the indentation of everything added afterwards.
func (b *Builder) Unindent() *Builder {
	return b.Add(UnindentMarker)
}

// BeginControlFlow opens a braced block such as "if (ready)" and indents.
func (b *Builder) BeginControlFlow(format string, args ...any) *Builder {
	if b.endsMidLine() {
		b.Add("\n")
	}
	return b.Add(format+" {\n", args...).Indent()
}

// NextControlFlow closes the current block and opens a sibling, e.g. "else".
func (b *Builder) NextControlFlow(format string, args ...any) *Builder {
	return b.Unindent().Add("} "+format+" {\n", args...).Indent()
}

// EndControlFlow closes the current block.
func (b *Builder) EndControlFlow() *Builder {
	return b.Unindent().Add("}\n")
}

// Clear resets the builder, including any recorded error.
func (b *Builder) Clear() *Builder {
	b.parts = nil
	b.args = nil
	b.err = nil
	return b
}

// IsEmpty reports whether nothing has been added.
func (b *Builder) IsEmpty() bool {
	return len(b.parts) == 0
}

// Err returns the first error recorded by the builder.
func (b *Builder) Err() error {
	return b.err
}

// Build returns the accumulated Fragment.
func (b *Builder) Build() (Fragment, error) {
	if b.err != nil {
		return Fragment{}, b.err
	}
	if err := checkStructure(b.parts); err != nil {
		return Fragment{}, err
	}
	return Fragment{
		parts: append([]string(nil), b.parts...),
		args:  append([]any(nil), b.args...),
	}, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() Fragment {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}

func (b *Builder) endsMidLine() bool {
	for i := len(b.parts) - 1; i >= 0; i-- {
		p := b.parts[i]
		if isStructural(p) {
			continue
		}
		if isPlaceholder(p) {
			return true
		}
		return !strings.HasSuffix(p, "\n")
	}
	return false
}

func checkArg(kind placeholderKind, arg any) error {
	switch kind {
	case kindDoubleQuoted, kindSingleQuoted:
		switch arg.(type) {
		case nil, string, fmt.Stringer:
			return nil
		}
		return errors.NewFormatErrorf("expected a string for a quoted placeholder, received %T", arg)
	case kindType:
		switch arg.(type) {
		case TypeName, string:
			return nil
		}
		return errors.NewFormatErrorf("expected a TypeName for %%T, received %T", arg)
	case kindName:
		switch arg.(type) {
		case Named, string:
			return nil
		}
		return errors.NewFormatErrorf("expected a Named value for %%N, received %T", arg)
	case kindList:
		if arg == nil {
			return nil
		}
		switch reflect.ValueOf(arg).Kind() {
		case reflect.Slice, reflect.Array:
			return nil
		}
		return errors.NewFormatErrorf("expected a slice for %%V, received %T", arg)
	}
	return nil
}

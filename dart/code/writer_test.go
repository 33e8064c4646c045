package code

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/dartpoet/errors"
)

func render(fn func(w *Writer), opts ...WriterOption) string {
	var sb strings.Builder
	w := NewWriter(&sb, opts...)
	fn(w)
	return sb.String()
}

func TestEmitIndentsLazily(t *testing.T) {
	got := render(func(w *Writer) {
		w.Emit("class A {\n")
		w.Indent()
		w.Emit("int a;\n\nint b;\n")
		w.Unindent()
		w.Emit("}")
	})
	assert.Equal(t, "class A {\n  int a;\n\n  int b;\n}", got)
}

func TestEmitCustomIndent(t *testing.T) {
	got := render(func(w *Writer) {
		w.Indent(2)
		w.Emit("x")
	}, WithIndent("\t"))
	assert.Equal(t, "\t\tx", got)

	got = render(func(w *Writer) {
		w.Indent()
		w.Emit("x")
	}, WithIndent(""))
	assert.Equal(t, "  x", got)
}

func TestIndentLevels(t *testing.T) {
	w := NewWriter(io.Discard)
	w.Indent()
	w.Indent(2)
	assert.Equal(t, 3, w.Depth())
	w.Unindent(1, 1)
	assert.Equal(t, 1, w.Depth())
	w.Unindent()
	assert.Equal(t, 0, w.Depth())
}

func TestUnindentBelowZeroPanics(t *testing.T) {
	w := NewWriter(io.Discard)
	w.Indent()
	assert.Panics(t, func() { w.Unindent(2) })
}

func TestEmitCodeNewlineIsIdempotent(t *testing.T) {
	got := render(func(w *Writer) {
		w.EmitCodeNewline(MustOf("a;"))
		w.EmitCodeNewline(MustOf("b;\n"))
		w.EnsureNewline()
		w.EmitCode(MustOf("c;"))
	})
	assert.Equal(t, "a;\nb;\nc;", got)
}

func TestEmitCodeIndentsFragmentLines(t *testing.T) {
	body := MustOf("final a = 1;\nreturn a;")
	got := render(func(w *Writer) {
		w.Emit("int f() {\n")
		w.Indent()
		w.EmitCodeNewline(body)
		w.Unindent()
		w.Emit("}")
	})
	assert.Equal(t, "int f() {\n  final a = 1;\n  return a;\n}", got)
}

func TestEmitDocAndComment(t *testing.T) {
	got := render(func(w *Writer) {
		w.EmitComment("GENERATED CODE")
		w.EmitDoc("A value.")
		w.EmitDoc("")
		w.Indent()
		w.Emit("int a;")
		w.EmitDoc("Next.")
		w.Unindent()
	})
	assert.Equal(t, "// GENERATED CODE\n/// A value.\n///\n  int a;\n  /// Next.\n", got)
}

func TestBlankLine(t *testing.T) {
	got := render(func(w *Writer) {
		w.BlankLine()
		w.Emit("a")
		w.BlankLine()
		w.BlankLine()
		w.Emit("b\n")
		w.BlankLine()
		w.Emit("c")
	})
	assert.Equal(t, "a\n\nb\n\nc", got)
}

func TestLineStartTracking(t *testing.T) {
	w := NewWriter(io.Discard)
	assert.True(t, w.AtLineStart())
	assert.False(t, w.EndsWithBlankLine())

	w.Emit("x")
	assert.False(t, w.AtLineStart())

	w.Emit("\n")
	assert.True(t, w.AtLineStart())
	assert.False(t, w.EndsWithBlankLine())

	w.Emit("\n")
	assert.True(t, w.EndsWithBlankLine())
}

func TestTypeRegistersImports(t *testing.T) {
	var libs []string
	key := TypeFrom("package:json_annotation/json_annotation.dart", "JsonKey")
	model := TypeFrom("package:app/model.dart", "Model")

	got := render(func(w *Writer) {
		w.Emitf("@%T()\n", key)
		w.Emitf("%T", ListOf(model).AsNullable())
	}, WithImportCollector(func(lib string) { libs = append(libs, lib) }))

	assert.Equal(t, "@JsonKey()\nList<Model>?", got)
	assert.Equal(t, []string{
		"package:json_annotation/json_annotation.dart",
		"package:app/model.dart",
	}, libs)
}

func TestQuotedArgumentsKeepNonBreakingSpace(t *testing.T) {
	got := render(func(w *Writer) {
		w.Emitf("a·%S", "b·c")
	})
	assert.Equal(t, `a "b·c"`, got)
}

func TestNestedStatementsRender(t *testing.T) {
	inner := NewBuilder().AddStatement("b(\nc)").MustBuild()
	outer := NewBuilder().AddStatement("a(%L)", inner).MustBuild()

	w := NewWriter(io.Discard)
	w.EmitCode(outer)
	assert.Equal(t, 0, w.Depth())
}

type failingWriter struct {
	calls int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	f.calls++
	return 0, io.ErrClosedPipe
}

func TestWriteErrorsAreSticky(t *testing.T) {
	sink := &failingWriter{}
	w := NewWriter(sink)
	w.Emit("a\n")
	w.Emit("b\n")

	assert.Equal(t, 1, sink.calls)
	err := w.Close()
	require.Error(t, err)
	assert.True(t, errors.IsRenderError(err))
	assert.True(t, errors.Is(err, io.ErrClosedPipe))
	assert.Equal(t, int64(0), w.Written())
}

func TestCloseWithoutContent(t *testing.T) {
	var sb strings.Builder
	w := NewWriter(&sb)
	assert.NoError(t, w.Close())
	assert.Empty(t, sb.String())
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in    string
		quote rune
		want  string
	}{
		{"plain", '\'', `'plain'`},
		{"it's", '\'', `'it\'s'`},
		{`say "hi"`, '\'', `'say "hi"'`},
		{`say "hi"`, '"', `"say \"hi\""`},
		{"$name", '\'', `'\$name'`},
		{`back\slash`, '"', `"back\\slash"`},
		{"tab\tline\nret\r", '"', `"tab\tline\nret\r"`},
		{"\b\f\v", '"', `"\b\f\v"`},
		{"\x00\x1b", '"', `"\x00\x1B"`},
		{"ünï", '"', `"ünï"`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Quote(tt.in, tt.quote))
		})
	}
}

package code

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/teranos/dartpoet/errors"
)

// DefaultIndent is the indentation unit used when none is configured.
const DefaultIndent = "  "

// continuationIndent is the extra depth applied to the second and later
// lines of a statement.
const continuationIndent = 2

// Writer renders text and Fragments to an io.Writer, tracking indentation.
// A Writer is used for a single render and is not safe for concurrent use.
type Writer struct {
	out     io.Writer
	indent  string
	imports func(library string)

	depth         int
	statements    int // nesting of open statements
	statementLine int // lines emitted by the outermost open statement, -1 outside

	empty    bool // nothing written yet
	newlines int  // consecutive line breaks at the end of the output

	written int64
	err     error
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithIndent sets the indentation unit. Empty values are ignored.
func WithIndent(indent string) WriterOption {
	return func(w *Writer) {
		if indent != "" {
			w.indent = indent
		}
	}
}

// WithImportCollector registers fn to receive the library of every type
// rendered through a %T placeholder.
func WithImportCollector(fn func(library string)) WriterOption {
	return func(w *Writer) {
		w.imports = fn
	}
}

// NewWriter returns a Writer emitting to out. The Writer never closes out.
func NewWriter(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:           out,
		indent:        DefaultIndent,
		statementLine: -1,
		empty:         true,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Emit writes text. Line breaks inside text cause the current indentation to
// be written before the next non-empty line. Non-breaking spaces become
// plain spaces.
func (w *Writer) Emit(text string) {
	w.emitText(strings.ReplaceAll(text, NBSP, " "))
}

// Emitf renders a constant format. It panics on a malformed format.
func (w *Writer) Emitf(format string, args ...any) {
	w.EmitCode(MustOf(format, args...))
}

// EmitCode renders f at the current indentation.
func (w *Writer) EmitCode(f Fragment) {
	a := 0
	for _, part := range f.parts {
		ph, ok := lookupPlaceholder(part)
		if !ok {
			w.Emit(part)
			continue
		}
		var arg any
		if ph.takesArg {
			arg = f.args[a]
			a++
		}
		switch ph.kind {
		case kindLiteral:
			w.emitLiteral(arg)
		case kindDoubleQuoted:
			w.emitText(quoteArg(arg, '"'))
		case kindSingleQuoted:
			w.emitText(quoteArg(arg, '\''))
		case kindType:
			w.emitTypeArg(arg)
		case kindName:
			w.emitName(arg)
		case kindList:
			w.emitList(arg)
		case kindPercent:
			w.emitText("%")
		case kindIndent:
			w.Indent()
		case kindUnindent:
			w.Unindent()
		case kindStatementBegin:
			w.beginStatement()
		case kindStatementEnd:
			w.endStatement()
		}
	}
}

// EmitCodeNewline renders f and ends the line unless it already ended.
func (w *Writer) EmitCodeNewline(f Fragment) {
	w.EmitCode(f)
	w.EnsureNewline()
}

// EmitType renders a type reference and registers its libraries.
func (w *Writer) EmitType(t TypeName) {
	if w.imports != nil {
		for _, lib := range t.Libraries() {
			w.imports(lib)
		}
	}
	w.emitText(t.String())
}

// EmitDoc writes one documentation comment line.
func (w *Writer) EmitDoc(line string) {
	w.emitCommentLine("///", line)
}

// EmitComment writes one line comment.
func (w *Writer) EmitComment(line string) {
	w.emitCommentLine("//", line)
}

func (w *Writer) emitCommentLine(token, line string) {
	w.EnsureNewline()
	if line == "" {
		w.emitText(token + "\n")
		return
	}
	w.emitText(token + " " + line + "\n")
}

// EnsureNewline ends the current line unless the output is at a line start.
func (w *Writer) EnsureNewline() {
	if !w.AtLineStart() {
		w.emitText("\n")
	}
}

// BlankLine makes the output end with exactly one empty line. It does
// nothing on empty output.
func (w *Writer) BlankLine() {
	if w.empty {
		return
	}
	for w.newlines < 2 {
		w.emitText("\n")
	}
}

// AtLineStart reports whether the next character starts a new line.
func (w *Writer) AtLineStart() bool {
	return w.empty || w.newlines > 0
}

// EndsWithBlankLine reports whether the output ends with an empty line.
func (w *Writer) EndsWithBlankLine() bool {
	return w.newlines >= 2
}

// Indent increases the depth by the sum of levels, or by one.
func (w *Writer) Indent(levels ...int) {
	w.depth += sumLevels(levels)
}

// Unindent decreases the depth by the sum of levels, or by one. Going below
// zero is a programming error and panics.
func (w *Writer) Unindent(levels ...int) {
	n := sumLevels(levels)
	if w.depth-n < 0 {
		panic(errors.AssertionFailedf("unindent by %d at depth %d", n, w.depth))
	}
	w.depth -= n
}

// Depth returns the current indentation depth.
func (w *Writer) Depth() int {
	return w.depth
}

// Written returns the number of bytes accepted by the sink.
func (w *Writer) Written() int64 {
	return w.written
}

// Close emits nothing and returns the first write error, marked as a render
// error.
func (w *Writer) Close() error {
	return errors.MarkRender(w.err)
}

func sumLevels(levels []int) int {
	if len(levels) == 0 {
		return 1
	}
	n := 0
	for _, l := range levels {
		n += l
	}
	return n
}

func (w *Writer) beginStatement() {
	w.statements++
	if w.statements == 1 {
		w.statementLine = 0
	}
}

func (w *Writer) endStatement() {
	if w.statements == 0 {
		return
	}
	w.statements--
	if w.statements > 0 {
		return
	}
	if w.statementLine > 0 {
		w.Unindent(continuationIndent)
	}
	w.statementLine = -1
}

func (w *Writer) emitText(text string) {
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			w.write("\n")
			if w.statementLine >= 0 {
				if w.statementLine == 0 {
					w.Indent(continuationIndent)
				}
				w.statementLine++
			}
		}
		if line == "" {
			continue
		}
		if w.AtLineStart() {
			w.write(strings.Repeat(w.indent, w.depth))
		}
		w.write(line)
	}
}

func (w *Writer) write(s string) {
	if s == "" {
		return
	}
	w.empty = false
	if trimmed := strings.TrimRight(s, "\n"); trimmed == "" {
		w.newlines += len(s)
	} else {
		w.newlines = len(s) - len(trimmed)
	}
	if w.err != nil {
		return
	}
	n, err := io.WriteString(w.out, s)
	w.written += int64(n)
	w.err = err
}

func (w *Writer) emitLiteral(arg any) {
	switch v := arg.(type) {
	case nil:
		w.emitText("null")
	case string:
		w.emitText(v)
	case Fragment:
		w.EmitCode(v)
	case TypeName:
		w.EmitType(v)
	case Named:
		w.emitText(v.Identifier())
	case fmt.Stringer:
		w.emitText(v.String())
	default:
		w.emitText(fmt.Sprint(v))
	}
}

func (w *Writer) emitTypeArg(arg any) {
	switch v := arg.(type) {
	case TypeName:
		w.EmitType(v)
	case string:
		w.emitText(v)
	}
}

func (w *Writer) emitName(arg any) {
	switch v := arg.(type) {
	case Named:
		w.emitText(v.Identifier())
	case string:
		w.emitText(v)
	}
}

func (w *Writer) emitList(arg any) {
	w.emitText("[")
	if arg != nil {
		rv := reflect.ValueOf(arg)
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				w.emitText(", ")
			}
			switch v := rv.Index(i).Interface().(type) {
			case string:
				w.emitText(Quote(v, '\''))
			default:
				w.emitLiteral(v)
			}
		}
	}
	w.emitText("]")
}

func quoteArg(arg any, quote rune) string {
	switch v := arg.(type) {
	case nil:
		return "null"
	case string:
		return Quote(v, quote)
	case fmt.Stringer:
		return Quote(v.String(), quote)
	}
	return Quote(fmt.Sprint(arg), quote)
}

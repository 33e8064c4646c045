// Package code holds the Dart emission engine: Fragments (format strings with
// bound placeholder arguments), the indentation-aware Writer that renders them,
// and the sibling Layout shared by every collection of spec nodes.
//
// A Fragment is assembled once through a Builder and can then be rendered any
// number of times with identical output:
//
//	body := code.NewBuilder().
//		AddStatement("final value = %T.parse(%S)", code.Int, "42").
//		AddStatement("return value").
//		MustBuild()
//
// Malformed templates are rejected by the Builder; rendering a built Fragment
// never fails.
package code

import (
	"strings"
	"unicode/utf8"

	"github.com/teranos/dartpoet/errors"
)

// Fragment is an immutable template of literal text interleaved with
// placeholders and the arguments bound to them. The zero value is empty.
type Fragment struct {
	parts []string
	args  []any
}

// Of parses format and binds args to its placeholders.
func Of(format string, args ...any) (Fragment, error) {
	return NewBuilder().Add(format, args...).Build()
}

// MustOf is like Of but panics on a malformed format. Use it for constant
// formats only.
func MustOf(format string, args ...any) Fragment {
	f, err := Of(format, args...)
	if err != nil {
		panic(err)
	}
	return f
}

// IsEmpty reports whether the fragment has no parts.
func (f Fragment) IsEmpty() bool {
	return len(f.parts) == 0
}

// Merge returns a fragment rendering f followed by other.
func (f Fragment) Merge(other Fragment) Fragment {
	if other.IsEmpty() {
		return f
	}
	if f.IsEmpty() {
		return other
	}
	return Fragment{
		parts: concat(f.parts, other.parts),
		args:  concat(f.args, other.args),
	}
}

// ToBuilder returns a Builder seeded with the contents of f.
func (f Fragment) ToBuilder() *Builder {
	return &Builder{
		parts: append([]string(nil), f.parts...),
		args:  append([]any(nil), f.args...),
	}
}

// Trim drops line breaks at both ends of the fragment's literal text.
// Structural markers at the edges are kept.
func (f Fragment) Trim() Fragment {
	parts := append([]string(nil), f.parts...)

	for i := 0; i < len(parts); {
		p := parts[i]
		if isStructural(p) {
			i++
			continue
		}
		if isPlaceholder(p) {
			break
		}
		trimmed := strings.TrimLeft(p, "\n")
		if trimmed != "" {
			parts[i] = trimmed
			break
		}
		parts = append(parts[:i], parts[i+1:]...)
	}

	for i := len(parts) - 1; i >= 0; i-- {
		p := parts[i]
		if isStructural(p) {
			continue
		}
		if isPlaceholder(p) {
			break
		}
		trimmed := strings.TrimRight(p, "\n")
		if trimmed != "" {
			parts[i] = trimmed
			break
		}
		parts = append(parts[:i], parts[i+1:]...)
	}

	return Fragment{parts: parts, args: f.args}
}

// WithBoundKeywords binds "return " and "throw " at the start of a line to
// their expression with a non-breaking space.
func (f Fragment) WithBoundKeywords() Fragment {
	var parts []string
	for i, p := range f.parts {
		if isPlaceholder(p) || isStructural(p) {
			continue
		}
		bound := bindKeywords(p)
		if bound == p {
			continue
		}
		if parts == nil {
			parts = append([]string(nil), f.parts...)
		}
		parts[i] = bound
	}
	if parts == nil {
		return f
	}
	return Fragment{parts: parts, args: f.args}
}

var boundKeywords = strings.NewReplacer(
	"\nreturn ", "\nreturn"+NBSP,
	"\nthrow ", "\nthrow"+NBSP,
)

func bindKeywords(s string) string {
	switch {
	case strings.HasPrefix(s, "return "):
		s = "return" + NBSP + s[len("return "):]
	case strings.HasPrefix(s, "throw "):
		s = "throw" + NBSP + s[len("throw "):]
	}
	return boundKeywords.Replace(s)
}

// String renders the fragment with a fresh Writer using default options.
func (f Fragment) String() string {
	var sb strings.Builder
	w := NewWriter(&sb)
	w.EmitCode(f)
	return sb.String()
}

func isPlaceholder(part string) bool {
	p, ok := lookupPlaceholder(part)
	return ok && (p.takesArg || p.kind == kindPercent)
}

func isStructural(part string) bool {
	p, ok := lookupPlaceholder(part)
	return ok && !p.takesArg && p.kind != kindPercent
}

// parse splits format into parts and checks args against the placeholders it
// contains.
func parse(format string, args []any) ([]string, error) {
	var parts []string
	argIdx := 0

	for p := 0; p < len(format); {
		next := nextMarker(format, p)
		if next < 0 {
			parts = append(parts, format[p:])
			break
		}
		if next > p {
			parts = append(parts, format[p:next])
			p = next
		}

		if format[p] != '%' {
			_, size := utf8.DecodeRuneInString(format[p:])
			parts = append(parts, format[p:p+size])
			p += size
			continue
		}

		if p+1 >= len(format) {
			return nil, errors.NewFormatErrorf("dangling %% at end of %q", format)
		}
		r, size := utf8.DecodeRuneInString(format[p+1:])
		token := format[p : p+1+size]
		ph, ok := lookupPlaceholder(token)
		if !ok {
			return nil, errors.NewFormatErrorf("unknown placeholder %%%c in %q", r, format)
		}
		if ph.takesArg {
			if argIdx >= len(args) {
				return nil, errors.NewFormatErrorf("missing argument for %s in %q", token, format)
			}
			if err := checkArg(ph.kind, args[argIdx]); err != nil {
				return nil, errors.Wrapf(err, "argument %d of %q", argIdx, format)
			}
			argIdx++
		}
		parts = append(parts, token)
		p += len(token)
	}

	if argIdx != len(args) {
		return nil, errors.NewFormatErrorf("unused arguments in %q: expected %d, received %d", format, argIdx, len(args))
	}
	return parts, nil
}

// checkStructure verifies that indentation and statement markers pair up.
func checkStructure(parts []string) error {
	depth := 0
	inStatement := false
	for _, p := range parts {
		switch p {
		case IndentMarker:
			depth++
		case UnindentMarker:
			depth--
			if depth < 0 {
				return errors.NewFormatErrorf("unindent without matching indent")
			}
		case StatementBeginMarker:
			if inStatement {
				return errors.NewFormatErrorf("statement begun inside another statement")
			}
			inStatement = true
		case StatementEndMarker:
			if !inStatement {
				return errors.NewFormatErrorf("statement ended without a beginning")
			}
			inStatement = false
		}
	}
	if inStatement {
		return errors.NewFormatErrorf("statement is never ended")
	}
	if depth != 0 {
		return errors.NewFormatErrorf("unbalanced indentation: %d indent(s) left open", depth)
	}
	return nil
}

func concat[T any](a, b []T) []T {
	out := make([]T, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

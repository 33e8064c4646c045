package code

// Layout describes how a run of sibling nodes is laid out.
type Layout struct {
	// Open and Close surround a non-empty run.
	Open, Close string
	// KeepEmpty emits Open and Close for an empty run, e.g. "()".
	KeepEmpty bool
	// Separator is emitted between two siblings, before Gap.
	Separator string
	// Gap is the whitespace following Separator: "", " ", "\n" or "\n\n".
	Gap string
	// Block puts each sibling on its own line, indented one level between
	// Open and Close.
	Block bool
	// Suffix is emitted after the last sibling of a non-empty run.
	Suffix string
}

// EmitSiblings renders items with l. An empty run emits nothing unless
// KeepEmpty is set, and N items are joined by exactly N-1 separators.
func EmitSiblings[T any](w *Writer, items []T, l Layout, emit func(*Writer, T)) {
	if len(items) == 0 {
		if l.KeepEmpty {
			w.Emit(l.Open)
			w.Emit(l.Close)
		}
		return
	}

	gap := l.Gap
	if l.Block {
		gap = "\n"
	}

	w.Emit(l.Open)
	if l.Block {
		w.Emit("\n")
		w.Indent()
	}
	for i, item := range items {
		if i > 0 {
			w.Emit(l.Separator)
			emitGap(w, gap)
		}
		emit(w, item)
	}
	w.Emit(l.Suffix)
	if l.Block {
		w.Unindent()
		w.EnsureNewline()
	}
	w.Emit(l.Close)
}

// emitGap writes whitespace between siblings. Line breaks are merged with
// those a sibling already ended with.
func emitGap(w *Writer, gap string) {
	switch gap {
	case "\n":
		w.EnsureNewline()
	case "\n\n":
		w.BlankLine()
	default:
		w.Emit(gap)
	}
}

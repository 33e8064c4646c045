package spec

import "github.com/teranos/dartpoet/dart/code"

// Sibling layouts. Every collection of nodes is rendered through one of
// these so the separator rules live in a single place.
var (
	blockAnnotations  = code.Layout{Gap: "\n", Suffix: "\n"}
	inlineAnnotations = code.Layout{Gap: " ", Suffix: " "}

	positionalParams = code.Layout{Separator: ",", Gap: " "}
	namedParams      = code.Layout{Open: "{", Close: "}", Separator: ",", Gap: " "}
	namedParamsBlock = code.Layout{Open: "{", Close: "}", Separator: ",", Block: true}
	optionalParams   = code.Layout{Open: "[", Close: "]", Separator: ",", Gap: " "}

	memberBlocks = code.Layout{Gap: "\n\n"}
	memberLines  = code.Layout{Gap: "\n"}
	enumEntries  = code.Layout{Separator: ",", Gap: "\n"}
	typeList     = code.Layout{Separator: ",", Gap: " "}
)

func emitAnnotations(w *code.Writer, as []*Annotation, inline bool) {
	layout := blockAnnotations
	if inline {
		layout = inlineAnnotations
	}
	code.EmitSiblings(w, as, layout, writeAnnotation)
}

// emitParameters writes a parenthesized parameter list. The separator before
// a bracketed group is emitted only when positional parameters precede it.
func emitParameters(w *code.Writer, params []*Parameter, namedOnNewLines bool) {
	positional, named, optional := parameterGroups(params)

	w.Emit("(")
	code.EmitSiblings(w, positional, positionalParams, writeParameter)
	if len(positional) > 0 && len(named)+len(optional) > 0 {
		w.Emit(", ")
	}
	if namedOnNewLines {
		code.EmitSiblings(w, named, namedParamsBlock, writeParameter)
	} else {
		code.EmitSiblings(w, named, namedParams, writeParameter)
	}
	code.EmitSiblings(w, optional, optionalParams, writeParameter)
	w.Emit(")")
}

func emitFunctions(w *code.Writer, fns []*Function) {
	code.EmitSiblings(w, fns, memberBlocks, writeFunction)
}

func emitConstructors(w *code.Writer, ctors []*Constructor) {
	code.EmitSiblings(w, ctors, memberBlocks, writeConstructor)
}

func emitProperties(w *code.Writer, props []*Property) {
	code.EmitSiblings(w, props, memberLines, writeProperty)
}

func emitEnumEntries(w *code.Writer, entries []*EnumEntry, terminate bool) {
	layout := enumEntries
	if terminate {
		layout.Suffix = ";"
	}
	code.EmitSiblings(w, entries, layout, writeEnumEntry)
}

// emitTypeList writes " keyword A, B" for a non-empty list.
func emitTypeList(w *code.Writer, keyword string, types []code.TypeName) {
	layout := typeList
	layout.Open = " " + keyword + " "
	code.EmitSiblings(w, types, layout, (*code.Writer).EmitType)
}

func emitExtensions(w *code.Writer, exts []*Extension) {
	code.EmitSiblings(w, exts, memberBlocks, writeExtension)
}

func emitTypes(w *code.Writer, classes []*Class) {
	code.EmitSiblings(w, classes, memberBlocks, writeClass)
}

func emitDirectives(w *code.Writer, ds []*Directive) {
	code.EmitSiblings(w, ds, blockAnnotations, writeDirective)
}

// section is one group of members inside a braced body.
type section func(w *code.Writer)

// emitBody writes the members of a class or extension. Every non-empty
// section is preceded by one blank line. An empty body renders as "{}".
func emitBody(w *code.Writer, sections []section, nonEmpty []bool, endWithNewLine bool) {
	hasMembers := false
	for _, ok := range nonEmpty {
		hasMembers = hasMembers || ok
	}
	w.Emit(" {")
	if !hasMembers {
		w.Emit("}")
		return
	}
	w.Emit("\n")
	w.Indent()
	for i, emit := range sections {
		if !nonEmpty[i] {
			continue
		}
		w.BlankLine()
		emit(w)
	}
	w.EnsureNewline()
	if endWithNewLine {
		w.BlankLine()
	}
	w.Unindent()
	w.Emit("}")
}

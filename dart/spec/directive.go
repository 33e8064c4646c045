package spec

import (
	"strings"

	"github.com/teranos/dartpoet/dart/code"
	"github.com/teranos/dartpoet/errors"
)

// DirectiveKind selects the keyword of a Directive.
type DirectiveKind int

const (
	DirectiveImport DirectiveKind = iota + 1
	DirectiveExport
	DirectivePart
	DirectivePartOf
	DirectiveLibrary
)

// ImportGroup orders imports and exports: dart: libraries first, then
// packages, then relative paths.
type ImportGroup int

const (
	GroupDart ImportGroup = iota
	GroupPackage
	GroupRelative
)

// Directive is an import, export, part, part of or library directive.
type Directive struct {
	kind     DirectiveKind
	path     string
	alias    string
	deferred bool
	show     []string
	hide     []string
}

func (*Directive) Kind() Kind { return KindDirective }
func (*Directive) sealed()    {}

// DirectiveKind returns the directive's keyword kind.
func (d *Directive) DirectiveKind() DirectiveKind { return d.kind }

// URI returns the normalized target of an import or export, or the raw path
// of other directives.
func (d *Directive) URI() string {
	if d.kind == DirectiveImport || d.kind == DirectiveExport {
		return NormalizeURI(d.path)
	}
	return d.path
}

// Group returns the ordering group of an import or export.
func (d *Directive) Group() ImportGroup {
	return groupOf(d.URI())
}

func (d *Directive) String() string { return render(d) }

// NormalizeURI prefixes a bare library path with "package:". Paths starting
// with "dart:", "package:", "." or "/" are kept.
func NormalizeURI(path string) string {
	switch {
	case strings.HasPrefix(path, "dart:"),
		strings.HasPrefix(path, "package:"),
		strings.HasPrefix(path, "."),
		strings.HasPrefix(path, "/"):
		return path
	}
	return "package:" + path
}

func groupOf(uri string) ImportGroup {
	switch {
	case strings.HasPrefix(uri, "dart:"):
		return GroupDart
	case strings.HasPrefix(uri, "package:"):
		return GroupPackage
	}
	return GroupRelative
}

// DirectiveBuilder builds a Directive.
type DirectiveBuilder struct {
	d Directive
}

// NewImport starts an import of path.
func NewImport(path string) *DirectiveBuilder {
	return &DirectiveBuilder{d: Directive{kind: DirectiveImport, path: path}}
}

// NewExport starts an export of path.
func NewExport(path string) *DirectiveBuilder {
	return &DirectiveBuilder{d: Directive{kind: DirectiveExport, path: path}}
}

// NewPart starts "part 'path';".
func NewPart(path string) *DirectiveBuilder {
	return &DirectiveBuilder{d: Directive{kind: DirectivePart, path: path}}
}

// NewPartOf starts "part of library;".
func NewPartOf(library string) *DirectiveBuilder {
	return &DirectiveBuilder{d: Directive{kind: DirectivePartOf, path: library}}
}

// NewLibraryDirective starts "library name;".
func NewLibraryDirective(name string) *DirectiveBuilder {
	return &DirectiveBuilder{d: Directive{kind: DirectiveLibrary, path: name}}
}

// As imports the library under a prefix.
func (b *DirectiveBuilder) As(alias string) *DirectiveBuilder {
	b.d.alias = alias
	return b
}

// Deferred loads the library lazily. It requires an alias.
func (b *DirectiveBuilder) Deferred(deferred bool) *DirectiveBuilder {
	b.d.deferred = deferred
	return b
}

func (b *DirectiveBuilder) Show(names ...string) *DirectiveBuilder {
	b.d.show = append(b.d.show, names...)
	return b
}

func (b *DirectiveBuilder) Hide(names ...string) *DirectiveBuilder {
	b.d.hide = append(b.d.hide, names...)
	return b
}

func (b *DirectiveBuilder) Build() (*Directive, error) {
	d := b.d
	if isBlank(d.path) {
		return nil, errors.NewBuildError("The path of a directive can't be empty")
	}
	isImport := d.kind == DirectiveImport
	isNamespace := isImport || d.kind == DirectiveExport
	if d.alias != "" && !isImport {
		return nil, errors.NewBuildError("Only imports can declare an alias")
	}
	if d.deferred && !isImport {
		return nil, errors.NewBuildError("Only imports can be deferred")
	}
	if d.deferred && d.alias == "" {
		return nil, errors.NewBuildError("A deferred import needs an alias")
	}
	if !isNamespace && len(d.show)+len(d.hide) > 0 {
		return nil, errors.NewBuildError("Only imports and exports can show or hide names")
	}
	d.show = append([]string(nil), d.show...)
	d.hide = append([]string(nil), d.hide...)
	return &d, nil
}

// MustBuild is like Build but panics on error.
func (b *DirectiveBuilder) MustBuild() *Directive {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}

func writeDirective(w *code.Writer, d *Directive) {
	switch d.kind {
	case DirectiveImport, DirectiveExport:
		if d.kind == DirectiveImport {
			w.Emit("import ")
		} else {
			w.Emit("export ")
		}
		w.Emitf("%C", d.URI())
		if d.deferred {
			w.Emit(" deferred")
		}
		if d.alias != "" {
			w.Emit(" as " + d.alias)
		}
		if len(d.show) > 0 {
			w.Emit(" show " + strings.Join(d.show, ", "))
		}
		if len(d.hide) > 0 {
			w.Emit(" hide " + strings.Join(d.hide, ", "))
		}
	case DirectivePart:
		w.Emit("part ")
		w.Emitf("%C", d.path)
	case DirectivePartOf:
		w.Emit("part of ")
		if strings.HasSuffix(d.path, ".dart") {
			w.Emitf("%C", d.path)
		} else {
			w.Emit(d.path)
		}
	case DirectiveLibrary:
		w.Emit("library " + d.path)
	}
	w.Emit(";")
}

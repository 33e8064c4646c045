package spec

import (
	"io"
	"sort"
	"strings"

	"github.com/teranos/dartpoet/dart/code"
	"github.com/teranos/dartpoet/errors"
)

// File is a Dart compilation unit.
type File struct {
	name        string
	indent      string
	header      []string
	annotations []*Annotation
	directives  []*Directive
	types       []*Class
	extensions  []*Extension
}

func (*File) Kind() Kind { return KindFile }
func (*File) sealed()    {}

// Name returns the file name, always ending in ".dart".
func (f *File) Name() string {
	if strings.HasSuffix(f.name, ".dart") {
		return f.name
	}
	return f.name + ".dart"
}

// FileBuilder builds a File.
type FileBuilder struct {
	specError
	f File
}

// NewFile starts a file. The ".dart" extension is optional.
func NewFile(name string) *FileBuilder {
	return &FileBuilder{f: File{name: name, indent: code.DefaultIndent}}
}

// Indent sets the indentation unit.
func (b *FileBuilder) Indent(indent string) *FileBuilder {
	if indent == "" {
		b.fail(errors.NewBuildError("The indent can't be empty"))
		return b
	}
	b.f.indent = indent
	return b
}

// Header adds comment lines at the top of the file.
func (b *FileBuilder) Header(lines ...string) *FileBuilder {
	b.f.header = append(b.f.header, lines...)
	return b
}

// Annotations adds library-level annotations.
func (b *FileBuilder) Annotations(as ...*Annotation) *FileBuilder {
	b.f.annotations = append(b.f.annotations, children(&b.specError, as, "annotation", "a file")...)
	return b
}

func (b *FileBuilder) Directives(ds ...*Directive) *FileBuilder {
	b.f.directives = append(b.f.directives, children(&b.specError, ds, "directive", "a file")...)
	return b
}

// Types adds declarations, rendered in insertion order.
func (b *FileBuilder) Types(cs ...*Class) *FileBuilder {
	b.f.types = append(b.f.types, children(&b.specError, cs, "type", "a file")...)
	return b
}

func (b *FileBuilder) Extensions(es ...*Extension) *FileBuilder {
	b.f.extensions = append(b.f.extensions, children(&b.specError, es, "extension", "a file")...)
	return b
}

func (b *FileBuilder) Build() (*File, error) {
	if b.err != nil {
		return nil, b.err
	}
	f := b.f
	if isBlank(f.name) {
		return nil, errors.NewBuildError("The name of a file can't be empty")
	}
	var library, partOf int
	for _, d := range f.directives {
		switch d.kind {
		case DirectiveLibrary:
			library++
		case DirectivePartOf:
			partOf++
		}
	}
	if library > 1 || partOf > 1 {
		return nil, errors.NewBuildError("A file can declare only one library or part of directive")
	}
	if library > 0 && partOf > 0 {
		return nil, errors.NewBuildError("A file can't be a library and a part at the same time")
	}
	f.header = append([]string(nil), f.header...)
	f.annotations = append([]*Annotation(nil), f.annotations...)
	f.directives = append([]*Directive(nil), f.directives...)
	f.types = append([]*Class(nil), f.types...)
	f.extensions = append([]*Extension(nil), f.extensions...)
	return &f, nil
}

// MustBuild is like Build but panics on error.
func (b *FileBuilder) MustBuild() *File {
	f, err := b.Build()
	if err != nil {
		panic(err)
	}
	return f
}

// String renders the file. The result always ends with a single line break.
func (f *File) String() string {
	var imports []string
	var body strings.Builder
	bw := code.NewWriter(&body,
		code.WithIndent(f.indent),
		code.WithImportCollector(func(lib string) { imports = append(imports, lib) }),
	)
	f.writeBody(bw)

	var sb strings.Builder
	w := code.NewWriter(&sb, code.WithIndent(f.indent))
	f.writePreamble(w, imports)
	if text := strings.Trim(body.String(), "\n"); text != "" {
		w.BlankLine()
		sb.WriteString(text)
	}
	out := strings.TrimRight(sb.String(), "\n")
	return out + "\n"
}

// WriteTo renders the file to out. Failures of out are render errors.
func (f *File) WriteTo(out io.Writer) (int64, error) {
	n, err := io.WriteString(out, f.String())
	return int64(n), errors.MarkRender(err)
}

func (f *File) writeBody(w *code.Writer) {
	emitTypes(w, f.types)
	if len(f.types) > 0 && len(f.extensions) > 0 {
		w.BlankLine()
	}
	emitExtensions(w, f.extensions)
}

// writePreamble writes the header, annotations and directives. Libraries
// referenced while rendering the body are imported unless already present.
func (f *File) writePreamble(w *code.Writer, referenced []string) {
	for _, line := range f.header {
		w.EmitComment(line)
	}
	if len(f.header) > 0 {
		w.BlankLine()
	}

	emitAnnotations(w, f.annotations, false)

	var imports, exports, parts, heading []*Directive
	seen := map[string]bool{}
	for _, d := range f.directives {
		switch d.kind {
		case DirectiveLibrary, DirectivePartOf:
			heading = append(heading, d)
		case DirectiveImport:
			seen[d.URI()] = true
			imports = append(imports, d)
		case DirectiveExport:
			exports = append(exports, d)
		case DirectivePart:
			parts = append(parts, d)
		}
	}
	// a part file takes its imports from the library it belongs to
	isPart := len(heading) > 0 && heading[0].kind == DirectivePartOf
	if !isPart {
		for _, lib := range referenced {
			uri := NormalizeURI(lib)
			if seen[uri] {
				continue
			}
			seen[uri] = true
			imports = append(imports, &Directive{kind: DirectiveImport, path: uri})
		}
	}

	emitDirectives(w, heading)

	sortDirectives(imports)
	sortDirectives(exports)
	groups := [][]*Directive{}
	for _, g := range []ImportGroup{GroupDart, GroupPackage, GroupRelative} {
		var group []*Directive
		for _, d := range imports {
			if d.Group() == g {
				group = append(group, d)
			}
		}
		groups = append(groups, group)
	}
	groups = append(groups, exports, parts)

	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		w.BlankLine()
		emitDirectives(w, group)
	}
}

func sortDirectives(ds []*Directive) {
	sort.SliceStable(ds, func(i, j int) bool {
		gi, gj := ds[i].Group(), ds[j].Group()
		if gi != gj {
			return gi < gj
		}
		return ds[i].URI() < ds[j].URI()
	})
}

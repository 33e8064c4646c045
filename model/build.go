package model

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/teranos/dartpoet/dart/code"
	"github.com/teranos/dartpoet/dart/spec"
	"github.com/teranos/dartpoet/errors"
)

// Build turns every file of the document into a spec tree. Errors name the
// file and declaration they were raised for and keep their build class.
func (d *Document) Build() ([]*spec.File, error) {
	files := make([]*spec.File, 0, len(d.Files))
	seen := map[string]bool{}
	for i := range d.Files {
		fm := &d.Files[i]
		f, err := d.buildFile(fm)
		if err != nil {
			return nil, errors.Wrapf(err, "files[%d] %s", i, fm.Name)
		}
		if seen[f.Name()] {
			return nil, errors.NewBuildErrorf("files[%d]: duplicate file %s", i, f.Name())
		}
		seen[f.Name()] = true
		files = append(files, f)
	}
	return files, nil
}

func (d *Document) buildFile(fm *FileModel) (*spec.File, error) {
	b := spec.NewFile(fm.Name)
	if indent := firstNonEmpty(fm.Indent, d.Indent); indent != "" {
		b.Indent(indent)
	}
	if header := fm.Header; len(header) > 0 {
		b.Header(docLines(header)...)
	} else if len(d.Header) > 0 {
		b.Header(docLines(d.Header)...)
	}

	directives, err := buildDirectives(fm)
	if err != nil {
		return nil, err
	}
	b.Directives(directives...)

	for _, cm := range fm.Classes {
		c, err := buildClass(cm)
		if err != nil {
			return nil, errors.Wrapf(err, "class %s", cm.Name)
		}
		b.Types(c)
	}
	if len(fm.Properties) > 0 || len(fm.Functions) > 0 {
		lib := spec.NewLibrary()
		for _, pm := range fm.Properties {
			p, err := buildProperty(pm)
			if err != nil {
				return nil, errors.Wrapf(err, "property %s", pm.Name)
			}
			lib.Properties(p)
		}
		for _, fn := range fm.Functions {
			f, err := buildFunction(fn)
			if err != nil {
				return nil, errors.Wrapf(err, "function %s", fn.Name)
			}
			lib.Functions(f)
		}
		c, err := lib.Build()
		if err != nil {
			return nil, err
		}
		b.Types(c)
	}
	for _, em := range fm.Extensions {
		e, err := buildExtension(em)
		if err != nil {
			return nil, errors.Wrapf(err, "extension %s", firstNonEmpty(em.Name, em.On))
		}
		b.Extensions(e)
	}
	return b.Build()
}

func buildDirectives(fm *FileModel) ([]*spec.Directive, error) {
	var builders []*spec.DirectiveBuilder
	if fm.Library != "" {
		builders = append(builders, spec.NewLibraryDirective(fm.Library))
	}
	if fm.PartOf != "" {
		builders = append(builders, spec.NewPartOf(fm.PartOf))
	}
	for _, im := range fm.Imports {
		builders = append(builders, spec.NewImport(im.Path).
			As(im.As).
			Deferred(im.Deferred).
			Show(im.Show...).
			Hide(im.Hide...))
	}
	for _, ex := range fm.Exports {
		b := spec.NewExport(ex.Path).Show(ex.Show...).Hide(ex.Hide...)
		if ex.As != "" {
			b.As(ex.As)
		}
		builders = append(builders, b)
	}
	for _, part := range fm.Parts {
		builders = append(builders, spec.NewPart(part))
	}

	out := make([]*spec.Directive, 0, len(builders))
	for _, b := range builders {
		dir, err := b.Build()
		if err != nil {
			return nil, err
		}
		out = append(out, dir)
	}
	return out, nil
}

var classKinds = []string{"class", "abstract", "mixin", "enum"}

func newClassBuilder(cm ClassModel) (*spec.ClassBuilder, error) {
	switch strings.ToLower(strings.TrimSpace(cm.Kind)) {
	case "", "class":
		return spec.NewClass(cm.Name), nil
	case "abstract":
		return spec.NewAbstractClass(cm.Name), nil
	case "mixin":
		return spec.NewMixin(cm.Name), nil
	case "enum":
		return spec.NewEnum(cm.Name), nil
	}
	err := errors.NewBuildErrorf("unknown class kind %q", cm.Kind)
	if ranks := fuzzy.RankFindFold(cm.Kind, classKinds); len(ranks) > 0 {
		sort.Sort(ranks)
		return nil, errors.WithHintf(err, "did you mean %q?", ranks[0].Target)
	}
	return nil, errors.WithHintf(err, "kinds are %s", strings.Join(classKinds, ", "))
}

func buildClass(cm ClassModel) (*spec.Class, error) {
	b, err := newClassBuilder(cm)
	if err != nil {
		return nil, err
	}
	mods, err := parseModifiers(cm.Modifiers)
	if err != nil {
		return nil, err
	}
	anns, err := buildAnnotations(cm.Annotations)
	if err != nil {
		return nil, err
	}
	b.Modifiers(mods...).
		TypeParameters(cm.TypeParameters...).
		With(parseTypes(cm.With)...).
		Implements(parseTypes(cm.Implements)...).
		On(parseTypes(cm.On)...).
		Annotations(anns...).
		Docs(docLines(cm.Docs)...).
		EndWithNewLine(cm.EndWithNewLine)
	if cm.Extends != "" {
		b.Extends(ParseType(cm.Extends))
	}

	for _, em := range cm.Entries {
		e, err := buildEnumEntry(em)
		if err != nil {
			return nil, errors.Wrapf(err, "entry %s", em.Name)
		}
		b.EnumEntries(e)
	}
	for _, pm := range cm.Constants {
		p, err := buildProperty(pm)
		if err != nil {
			return nil, errors.Wrapf(err, "constant %s", pm.Name)
		}
		b.Constants(p)
	}
	for _, pm := range cm.Properties {
		p, err := buildProperty(pm)
		if err != nil {
			return nil, errors.Wrapf(err, "property %s", pm.Name)
		}
		b.Properties(p)
	}
	for _, ctor := range cm.Constructors {
		c, err := buildConstructor(cm.Name, ctor)
		if err != nil {
			return nil, errors.Wrapf(err, "constructor %s", firstNonEmpty(ctor.Name, cm.Name))
		}
		b.Constructors(c)
	}
	for _, fn := range cm.Functions {
		f, err := buildFunction(fn)
		if err != nil {
			return nil, errors.Wrapf(err, "function %s", fn.Name)
		}
		b.Functions(f)
	}
	return b.Build()
}

func buildExtension(em ExtensionModel) (*spec.Extension, error) {
	anns, err := buildAnnotations(em.Annotations)
	if err != nil {
		return nil, err
	}
	var on code.TypeName
	if em.On != "" {
		on = ParseType(em.On)
	}
	b := spec.NewExtension(em.Name, on).
		TypeParameters(em.TypeParameters...).
		Annotations(anns...).
		Docs(docLines(em.Docs)...)
	for _, pm := range em.Constants {
		p, err := buildProperty(pm)
		if err != nil {
			return nil, errors.Wrapf(err, "constant %s", pm.Name)
		}
		b.Constants(p)
	}
	for _, fn := range em.Functions {
		f, err := buildFunction(fn)
		if err != nil {
			return nil, errors.Wrapf(err, "function %s", fn.Name)
		}
		b.Functions(f)
	}
	return b.Build()
}

func buildEnumEntry(em EnumEntryModel) (*spec.EnumEntry, error) {
	anns, err := buildAnnotations(em.Annotations)
	if err != nil {
		return nil, err
	}
	b := spec.NewEnumEntry(em.Name).Annotations(anns...).Docs(docLines(em.Docs)...)
	for _, arg := range em.Args {
		b.Argument("%L", arg)
	}
	return b.Build()
}

func buildProperty(pm PropertyModel) (*spec.Property, error) {
	mods, err := parseModifiers(pm.Modifiers)
	if err != nil {
		return nil, err
	}
	anns, err := buildAnnotations(pm.Annotations)
	if err != nil {
		return nil, err
	}
	var typ code.TypeName
	if pm.Type != "" {
		typ = ParseType(pm.Type)
	}
	b := spec.NewProperty(pm.Name, typ).
		Nullable(pm.Nullable).
		Modifiers(mods...).
		Annotations(anns...).
		Docs(docLines(pm.Docs)...)
	if pm.Initializer != "" {
		b.Initializer("%L", pm.Initializer)
	}
	return b.Build()
}

func buildParameters(pms []ParameterModel) ([]*spec.Parameter, error) {
	out := make([]*spec.Parameter, 0, len(pms))
	for _, pm := range pms {
		p, err := buildParameter(pm)
		if err != nil {
			return nil, errors.Wrapf(err, "parameter %s", pm.Name)
		}
		out = append(out, p)
	}
	return out, nil
}

func buildParameter(pm ParameterModel) (*spec.Parameter, error) {
	mods, err := parseModifiers(pm.Modifiers)
	if err != nil {
		return nil, err
	}
	anns, err := buildAnnotations(pm.Annotations)
	if err != nil {
		return nil, err
	}
	var b *spec.ParameterBuilder
	if pm.Type == "" {
		b = spec.NewFieldParameter(pm.Name).Super(pm.Super)
	} else {
		b = spec.NewParameter(pm.Name, ParseType(pm.Type))
	}
	b.Modifiers(mods...).
		Named(pm.Named).
		Required(pm.Required).
		Nullable(pm.Nullable).
		Annotations(anns...)
	if pm.Default != "" {
		b.Default("%L", pm.Default)
	}
	return b.Build()
}

func buildConstructor(className string, cm ConstructorModel) (*spec.Constructor, error) {
	mods, err := parseModifiers(cm.Modifiers)
	if err != nil {
		return nil, err
	}
	anns, err := buildAnnotations(cm.Annotations)
	if err != nil {
		return nil, err
	}
	params, err := buildParameters(cm.Parameters)
	if err != nil {
		return nil, err
	}
	b := spec.NewConstructor(className)
	if cm.Name != "" {
		b = spec.NewNamedConstructor(className, cm.Name)
	}
	if cm.Const {
		b.Const()
	}
	if cm.Factory {
		b.Factory()
	}
	b.Modifiers(mods...).
		Lambda(cm.Lambda).
		Parameters(params...).
		Annotations(anns...).
		Docs(docLines(cm.Docs)...)
	initializer, body := cm.Initializer, cm.Body
	// the expression of a lambda constructor may be given as its body
	if cm.Lambda && initializer == "" {
		initializer, body = strings.TrimSpace(body), ""
		if initializer != "" && !strings.HasSuffix(initializer, ";") {
			initializer += ";"
		}
	}
	if initializer != "" {
		b.Initializer("%L", initializer)
	}
	if body != "" {
		b.Body("%L", body)
	}
	return b.Build()
}

func buildFunction(fm FunctionModel) (*spec.Function, error) {
	mods, err := parseModifiers(fm.Modifiers)
	if err != nil {
		return nil, err
	}
	anns, err := buildAnnotations(fm.Annotations)
	if err != nil {
		return nil, err
	}
	params, err := buildParameters(fm.Parameters)
	if err != nil {
		return nil, err
	}
	b := spec.NewFunction(fm.Name).
		Modifiers(mods...).
		TypeParameters(fm.TypeParameters...).
		Parameters(params...).
		Async(fm.Async).
		Lambda(fm.Lambda).
		Getter(fm.Getter).
		Setter(fm.Setter).
		Typedef(fm.Typedef).
		Annotations(anns...).
		Docs(docLines(fm.Docs)...)
	if fm.Returns != "" {
		b.Returns(ParseType(fm.Returns))
	}
	if fm.Body != "" {
		b.Body("%L", fm.Body)
	}
	return b.Build()
}

func buildAnnotations(ams []AnnotationModel) ([]*spec.Annotation, error) {
	out := make([]*spec.Annotation, 0, len(ams))
	for _, am := range ams {
		b := spec.NewAnnotationOf(ParseType(am.Name)).Multiline(am.Multiline)
		if am.Call {
			b.Call()
		}
		for _, arg := range am.Args {
			b.Content("%L", arg)
		}
		a, err := b.Build()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

func parseModifiers(keywords []string) ([]spec.Modifier, error) {
	out := make([]spec.Modifier, 0, len(keywords))
	for _, k := range keywords {
		m, err := spec.ParseModifier(k)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// ParseType reads a type written as Dart source. A "@uri" suffix names the
// library that declares it so that rendering imports it.
func ParseType(s string) code.TypeName {
	s = strings.TrimSpace(s)
	if i := strings.LastIndex(s, "@"); i > 0 {
		return code.TypeFrom(strings.TrimSpace(s[i+1:]), strings.TrimSpace(s[:i]))
	}
	return code.Type(s)
}

func parseTypes(ss []string) []code.TypeName {
	out := make([]code.TypeName, 0, len(ss))
	for _, s := range ss {
		out = append(out, ParseType(s))
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// docLines splits multi-line doc and header entries, as written with YAML
// block scalars, into one entry per line.
func docLines(entries []string) []string {
	var lines []string
	for _, entry := range entries {
		entry = strings.TrimRight(entry, "\r\n")
		for _, line := range strings.Split(entry, "\n") {
			lines = append(lines, strings.TrimRight(line, " \t\r"))
		}
	}
	return lines
}

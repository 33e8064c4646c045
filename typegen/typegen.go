// Package typegen extracts Go type declarations into a language-agnostic
// Result that generators (typegen/dart) turn into source files.
//
// # Architecture
//
// The package uses a two-layer design:
//  1. Language-agnostic parsing (this package) extracts Go types into a Result
//  2. Language-specific generators format the Result
//
// Parsing runs in two passes per package: the first collects named types and
// typed constants across all files, the second pairs string types with their
// constants into enums. Output is sorted so generation is deterministic and
// can be checked in CI.
package typegen

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path"
	"path/filepath"
	"sort"
	"strconv"

	"golang.org/x/tools/go/packages"

	"github.com/teranos/dartpoet/errors"
	"github.com/teranos/dartpoet/logger"
	"github.com/teranos/dartpoet/typegen/util"
)

// TagName is the struct tag that overrides generated field types.
const TagName = "darttype"

// LoadPackage loads a Go package by import path or relative pattern
// ("./api") and extracts its exported types.
func LoadPackage(importPath string) (*Result, error) {
	log := logger.ComponentLogger("typegen")

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
	}
	pkgs, err := packages.Load(cfg, importPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load package %s", importPath)
	}
	if len(pkgs) == 0 {
		return nil, errors.Newf("no packages found for %s", importPath)
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		err := errors.Newf("package %s has errors: %v", importPath, pkg.Errors[0])
		return nil, errors.WithHint(err, "fix the compile errors, typegen needs a package that type-checks")
	}

	result := newResult(pkg.Name, pkg.PkgPath)
	collect(pkg.Fset, pkg.Syntax, result)

	log.Debugw("Loaded package",
		logger.FieldPackage, pkg.PkgPath,
		logger.FieldCount, len(result.Structs)+len(result.Enums)+len(result.Consts))
	return result, nil
}

// PackageDirs returns the source directories of the packages matched by
// patterns, for watching.
func PackageDirs(patterns ...string) ([]string, error) {
	pkgs, err := packages.Load(&packages.Config{Mode: packages.NeedName | packages.NeedFiles}, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to locate packages")
	}
	seen := map[string]bool{}
	var dirs []string
	for _, pkg := range pkgs {
		for _, file := range pkg.GoFiles {
			dir := filepath.Dir(file)
			if !seen[dir] {
				seen[dir] = true
				dirs = append(dirs, dir)
			}
		}
	}
	sort.Strings(dirs)
	return dirs, nil
}

// ParseSource extracts types from Go source text. Every source must declare
// package pkgName.
func ParseSource(pkgName string, srcs ...string) (*Result, error) {
	fset := token.NewFileSet()
	files := make([]*ast.File, 0, len(srcs))
	for i, src := range srcs {
		name := pkgName + "_" + strconv.Itoa(i) + ".go"
		file, err := parser.ParseFile(fset, name, src, parser.ParseComments)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s", name)
		}
		if file.Name.Name != pkgName {
			return nil, errors.Newf("%s declares package %s, expected %s", name, file.Name.Name, pkgName)
		}
		files = append(files, file)
	}

	result := newResult(pkgName, "")
	collect(fset, files, result)
	return result, nil
}

func newResult(name, importPath string) *Result {
	return &Result{
		PackageName:   name,
		ImportPath:    importPath,
		Aliases:       make(map[string]ast.Expr),
		TypePositions: make(map[string]Position),
	}
}

// Exclude drops the types and constants whose name matches any pattern
// (path.Match syntax).
func (r *Result) Exclude(patterns []string) {
	if len(patterns) == 0 {
		return
	}
	excluded := func(name string) bool {
		for _, p := range patterns {
			if ok, _ := path.Match(p, name); ok {
				return true
			}
		}
		return false
	}

	structs := r.Structs[:0]
	for _, s := range r.Structs {
		if !excluded(s.Name) {
			structs = append(structs, s)
		}
	}
	r.Structs = structs

	enums := r.Enums[:0]
	for _, e := range r.Enums {
		if !excluded(e.Name) {
			enums = append(enums, e)
		}
	}
	r.Enums = enums

	consts := r.Consts[:0]
	for _, c := range r.Consts {
		if !excluded(c.Name) {
			consts = append(consts, c)
		}
	}
	r.Consts = consts
}

// namedType is a non-struct type declaration found in the first pass.
type namedType struct {
	underlying ast.Expr
	doc        []string
}

// collect walks the files of one package and fills result.
func collect(fset *token.FileSet, files []*ast.File, result *Result) {
	named := make(map[string]namedType)         // type name -> declaration
	typedConsts := make(map[string][]EnumValue) // type name -> constants
	var untyped []Const

	// First pass: declarations
	for _, file := range files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			switch gen.Tok {
			case token.TYPE:
				for _, spec := range gen.Specs {
					ts := spec.(*ast.TypeSpec)
					if !ts.Name.IsExported() || ts.TypeParams != nil {
						continue
					}
					doc := util.CommentLines(ts.Doc)
					if len(doc) == 0 && len(gen.Specs) == 1 {
						doc = util.CommentLines(gen.Doc)
					}
					pos := fset.Position(ts.Pos())
					result.TypePositions[ts.Name.Name] = Position{File: filepath.Base(pos.Filename), Line: pos.Line}

					if st, ok := ts.Type.(*ast.StructType); ok {
						result.Structs = append(result.Structs, Struct{
							Name:   ts.Name.Name,
							Doc:    doc,
							Fields: structFields(st),
						})
						continue
					}
					named[ts.Name.Name] = namedType{underlying: ts.Type, doc: doc}
				}
			case token.CONST:
				collectConsts(gen, typedConsts, &untyped)
			}
		}
	}

	// Second pass: string types with constants become enums, the rest aliases
	for name, nt := range named {
		values := typedConsts[name]
		if ident, ok := nt.underlying.(*ast.Ident); ok && ident.Name == "string" && len(values) > 0 {
			result.Enums = append(result.Enums, Enum{Name: name, Doc: nt.doc, Values: values})
			continue
		}
		result.Aliases[name] = nt.underlying
	}
	result.Consts = untyped

	sort.Slice(result.Structs, func(i, j int) bool { return result.Structs[i].Name < result.Structs[j].Name })
	sort.Slice(result.Enums, func(i, j int) bool { return result.Enums[i].Name < result.Enums[j].Name })
	sort.Slice(result.Consts, func(i, j int) bool { return result.Consts[i].Name < result.Consts[j].Name })
}

// collectConsts extracts exported string constants from a const block.
// A spec without values repeats the previous type (iota style); a spec with
// values and no type is untyped.
func collectConsts(decl *ast.GenDecl, typed map[string][]EnumValue, untyped *[]Const) {
	var currentType string

	for _, spec := range decl.Specs {
		vs, ok := spec.(*ast.ValueSpec)
		if !ok {
			continue
		}
		switch {
		case vs.Type != nil:
			currentType = ""
			if ident, ok := vs.Type.(*ast.Ident); ok {
				currentType = ident.Name
			}
		case len(vs.Values) > 0:
			currentType = ""
		}

		doc := util.CommentLines(vs.Doc)
		if len(doc) == 0 && len(decl.Specs) == 1 {
			doc = util.CommentLines(decl.Doc)
		}
		if len(doc) == 0 {
			doc = util.CommentLines(vs.Comment)
		}
		for i, name := range vs.Names {
			if !name.IsExported() || i >= len(vs.Values) {
				continue
			}
			lit, ok := vs.Values[i].(*ast.BasicLit)
			if !ok || lit.Kind != token.STRING {
				continue
			}
			value, err := strconv.Unquote(lit.Value)
			if err != nil {
				continue
			}
			if currentType == "" {
				*untyped = append(*untyped, Const{Name: name.Name, Value: value, Doc: doc})
				continue
			}
			typed[currentType] = append(typed[currentType], EnumValue{Name: name.Name, Value: value, Doc: doc})
		}
	}
}

// structFields returns the exported fields of a struct, in declaration order.
func structFields(st *ast.StructType) []Field {
	var fields []Field
	for _, field := range st.Fields.List {
		tags := util.ParseFieldTags(field.Tag, TagName)
		if tags.Skip {
			continue
		}
		doc := util.ExtractFieldComment(field)

		if len(field.Names) == 0 {
			name := embeddedName(field.Type)
			if name == "" {
				continue
			}
			// a tagged embedded struct is encoded as a named field
			embedded := tags.JSONName == ""
			fields = append(fields, Field{
				Name:           name,
				JSONName:       tags.JSONName,
				Omitempty:      tags.Omitempty,
				Embedded:       embedded,
				Type:           field.Type,
				CustomType:     tags.CustomType,
				CustomOptional: tags.CustomOptional,
				Doc:            doc,
			})
			continue
		}

		for _, fieldName := range field.Names {
			if !fieldName.IsExported() {
				continue
			}
			fields = append(fields, Field{
				Name:           fieldName.Name,
				JSONName:       tags.JSONName,
				Omitempty:      tags.Omitempty,
				Type:           field.Type,
				CustomType:     tags.CustomType,
				CustomOptional: tags.CustomOptional,
				Doc:            doc,
			})
		}
	}
	return fields
}

// embeddedName returns the type name of an exported embedded field.
func embeddedName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return embeddedName(t.X)
	case *ast.Ident:
		if t.IsExported() {
			return t.Name
		}
	case *ast.SelectorExpr:
		return t.Sel.Name
	}
	return ""
}

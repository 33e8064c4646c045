package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectiveRendering(t *testing.T) {
	tests := []struct {
		name      string
		directive *DirectiveBuilder
		want      string
	}{
		{"package import", NewImport("package:http/http.dart"), "import 'package:http/http.dart';"},
		{"bare path gets package prefix", NewImport("http/http.dart"), "import 'package:http/http.dart';"},
		{"alias", NewImport("dart:math").As("math"), "import 'dart:math' as math;"},
		{"deferred", NewImport("package:big/big.dart").Deferred(true).As("big"), "import 'package:big/big.dart' deferred as big;"},
		{"show and hide", NewImport("package:a/a.dart").Show("A", "B").Hide("C"), "import 'package:a/a.dart' show A, B hide C;"},
		{"relative export", NewExport("./src/model.dart").Show("Model"), "export './src/model.dart' show Model;"},
		{"part", NewPart("item_model.freezed.dart"), "part 'item_model.freezed.dart';"},
		{"part of library", NewPartOf("testLibrary"), "part of testLibrary;"},
		{"part of file", NewPartOf("main.dart"), "part of 'main.dart';"},
		{"library", NewLibraryDirective("testLib"), "library testLib;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.directive.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDirectiveValidation(t *testing.T) {
	tests := []struct {
		reason    string
		directive *DirectiveBuilder
	}{
		{"The path of a directive can't be empty", NewImport(" ")},
		{"Only imports can declare an alias", NewExport("package:a/a.dart").As("a")},
		{"Only imports can be deferred", NewExport("package:a/a.dart").Deferred(true)},
		{"A deferred import needs an alias", NewImport("package:a/a.dart").Deferred(true)},
		{"Only imports and exports can show or hide names", NewPart("a.g.dart").Show("A")},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			_, err := tt.directive.Build()
			require.Error(t, err)
			assert.Equal(t, tt.reason, err.Error())
		})
	}
}

func TestNormalizeURI(t *testing.T) {
	tests := []struct {
		path  string
		want  string
		group ImportGroup
	}{
		{"dart:async", "dart:async", GroupDart},
		{"package:http/http.dart", "package:http/http.dart", GroupPackage},
		{"json_annotation/json_annotation.dart", "package:json_annotation/json_annotation.dart", GroupPackage},
		{"../model.dart", "../model.dart", GroupRelative},
		{"./model.dart", "./model.dart", GroupRelative},
		{"/abs/model.dart", "/abs/model.dart", GroupRelative},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			uri := NormalizeURI(tt.path)
			assert.Equal(t, tt.want, uri)
			assert.Equal(t, tt.group, groupOf(uri))
		})
	}
}

func TestSortDirectives(t *testing.T) {
	ds := []*Directive{
		NewImport("../b.dart").MustBuild(),
		NewImport("package:z/z.dart").MustBuild(),
		NewImport("dart:io").MustBuild(),
		NewImport("package:a/a.dart").MustBuild(),
		NewImport("dart:async").MustBuild(),
	}
	sortDirectives(ds)

	var uris []string
	for _, d := range ds {
		uris = append(uris, d.URI())
	}
	assert.Equal(t, []string{"dart:async", "dart:io", "package:a/a.dart", "package:z/z.dart", "../b.dart"}, uris)
}

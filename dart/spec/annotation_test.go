package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/dartpoet/dart/code"
)

func TestAnnotationRendering(t *testing.T) {
	tests := []struct {
		name string
		ann  *AnnotationBuilder
		want string
	}{
		{"marker", NewAnnotation("override"), "@override"},
		{"empty call", NewAnnotation("JsonSerializable").Call(), "@JsonSerializable()"},
		{"arguments", NewAnnotation("JsonKey").Content("name: %C", "id").Content("includeIfNull: false"), "@JsonKey(name: 'id', includeIfNull: false)"},
		{"call with arguments", NewAnnotation("Default").Call().Content("%L", 0), "@Default(0)"},
		{
			"multiline",
			NewAnnotation("JsonKey").Multiline(true).Content("name: %C", "id").Content("required: true"),
			"@JsonKey(\n  name: 'id',\n  required: true\n)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := tt.ann.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestAnnotationValidation(t *testing.T) {
	_, err := NewAnnotation(" ").Build()
	require.Error(t, err)
	assert.Equal(t, "The name of an annotation can't be empty", err.Error())
}

func TestAnnotationTypeIsImported(t *testing.T) {
	ann := NewAnnotationOf(code.TypeFrom("package:meta/meta.dart", "immutable")).MustBuild()
	file := NewFile("a").
		Types(NewClass("A").Annotations(ann).MustBuild()).
		MustBuild()

	assert.Equal(t, "import 'package:meta/meta.dart';\n\n@immutable\nclass A {}\n", file.String())
}

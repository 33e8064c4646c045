package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/dartpoet/dart/code"
)

func TestPropertyRendering(t *testing.T) {
	tests := []struct {
		name string
		prop *PropertyBuilder
		want string
	}{
		{
			name: "nullable with initializer",
			prop: NewProperty("age", code.Int).Nullable(true).Initializer("10"),
			want: "int? age = 10;",
		},
		{
			name: "initializer carrying its own assignment",
			prop: NewProperty("age", code.Int).Nullable(true).Initializer("= 10"),
			want: "int? age = 10;",
		},
		{
			name: "final",
			prop: NewProperty("apiClient", code.Type("ApiClient")).Modifiers(Final),
			want: "final ApiClient apiClient;",
		},
		{
			name: "private late",
			prop: NewProperty("cache", code.MapOf(code.String, code.Int)).Modifiers(Private, Late),
			want: "late Map<String, int> _cache;",
		},
		{
			name: "static const",
			prop: NewProperty("version", code.String).Modifiers(Static, Const).Initializer("%C", "1.0.0"),
			want: "static const String version = '1.0.0';",
		},
		{
			name: "untyped final",
			prop: NewProperty("names", code.TypeName{}).Modifiers(Final).Initializer("%V", []string{"a", "b"}),
			want: "final names = ['a', 'b'];",
		},
		{
			name: "untyped var",
			prop: NewProperty("count", code.TypeName{}).Initializer("0"),
			want: "var count = 0;",
		},
		{
			name: "annotated and documented",
			prop: NewProperty("id", code.Int).
				Modifiers(Final).
				Docs("Primary key.").
				Annotations(NewAnnotation("JsonKey").Content("name: %C", "ID").MustBuild()),
			want: "/// Primary key.\n@JsonKey(name: 'ID')\nfinal int id;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.prop.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestPropertyValidation(t *testing.T) {
	tests := []struct {
		reason string
		prop   *PropertyBuilder
	}{
		{"The name of a property can't be empty", NewProperty("", code.Int)},
		{"The const property max needs an initializer", NewProperty("max", code.Int).Modifiers(Const)},
		{"A property can't be late and const", NewProperty("max", code.Int).Modifiers(Late, Const).Initializer("1")},
		{
			"Received invalid keywords [required]. Allowed keywords for properties are [final, const, covariant, static, late, external]",
			NewProperty("x", code.Int).Modifiers(Required),
		},
		{"The public and private modifiers can't be used together", NewProperty("x", code.Int).Modifiers(Public, Private)},
		{"The annotation of a property can't be nil", NewProperty("x", code.Int).Annotations(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			_, err := tt.prop.Build()
			require.Error(t, err)
			assert.Equal(t, tt.reason, err.Error())
		})
	}
}

package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/dartpoet/dart/code"
	"github.com/teranos/dartpoet/errors"
)

func TestParameterValidation(t *testing.T) {
	tests := []struct {
		reason string
		param  *ParameterBuilder
	}{
		{
			"Received invalid keywords [abstract]. Allowed keywords for parameters are [final, required, const, covariant]",
			NewParameter("test", code.String).Modifiers(Abstract),
		},
		{
			"When a parameter should be const no other modifiers are allowed",
			NewParameter("test", code.String).Modifiers(Const, Final),
		},
		{
			"The required keyword can't be used in combination with const",
			NewParameter("test", code.String).Modifiers(Required, Const),
		},
		{
			"The name of a parameter can't be empty",
			NewParameter("  ", code.String),
		},
		{
			"The type can't be empty",
			NewParameter("test", code.Type(" ")),
		},
		{
			"The annotation of a parameter can't be nil",
			NewParameter("test", code.String).Annotations(nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.reason, func(t *testing.T) {
			_, err := tt.param.Build()
			require.Error(t, err)
			assert.Equal(t, tt.reason, err.Error())
			assert.True(t, errors.IsBuildError(err))
		})
	}
}

func TestParameterRendering(t *testing.T) {
	tests := []struct {
		name  string
		param *ParameterBuilder
		want  string
	}{
		{"typed", NewParameter("id", code.Int), "int id"},
		{"nullable", NewParameter("id", code.Int).Nullable(true), "int? id"},
		{"nullable type", NewParameter("id", code.Int.AsNullable()).Nullable(true), "int? id"},
		{"required", NewParameter("id", code.Int).Required(true), "required int id"},
		{"default", NewParameter("age", code.Int).Default("%L", 10), "int age = 10"},
		{"field formal", NewFieldParameter("name"), "this.name"},
		{"required field formal", NewFieldParameter("name").Required(true), "required this.name"},
		{"super formal", NewFieldParameter("key").Super(true), "super.key"},
		{"covariant final", NewParameter("v", code.Object).Modifiers(Covariant, Final), "covariant final Object v"},
		{
			"inline annotations",
			NewParameter("version", code.String).Annotations(
				NewAnnotation("JsonKey").Content("name: %C", "version").MustBuild(),
				NewAnnotation("Default").Content("%C", "1.0.0").MustBuild(),
			),
			"@JsonKey(name: 'version') @Default('1.0.0') String version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.param.Build()
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.String())
		})
	}
}

func TestParameterGroups(t *testing.T) {
	a := NewParameter("a", code.Int).MustBuild()
	b := NewParameter("b", code.Int).Named(true).MustBuild()
	c := NewParameter("c", code.Int).Required(true).MustBuild()
	d := NewParameter("d", code.Int).Default("1").MustBuild()
	e := NewParameter("e", code.Int).Named(true).Default("2").MustBuild()

	positional, named, optional := parameterGroups([]*Parameter{a, b, c, d, e})
	assert.Equal(t, []*Parameter{a}, positional)
	assert.Equal(t, []*Parameter{b, c, e}, named)
	assert.Equal(t, []*Parameter{d}, optional)
}

func TestParameterToBuilder(t *testing.T) {
	p := NewParameter("amount", code.Int).
		Nullable(true).
		Default("%L", "10").
		Annotations(NewAnnotation("nullable").MustBuild()).
		MustBuild()

	b := p.ToBuilder()
	assert.Equal(t, p.name, b.name)
	assert.Equal(t, p.typ, b.typ)
	assert.Equal(t, p.nullable, b.nullable)
	assert.False(t, b.initializer.IsEmpty())
	assert.Equal(t, p.annotations, b.annotations)
	assert.Equal(t, p.String(), b.MustBuild().String())
}

func TestRequiredToggle(t *testing.T) {
	p := NewParameter("x", code.Int).Modifiers(Final).Required(true).Required(false).MustBuild()
	assert.False(t, p.IsRequired())
	assert.Equal(t, "final int x", p.String())
}

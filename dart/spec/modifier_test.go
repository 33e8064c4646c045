package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/teranos/dartpoet/errors"
)

func TestParseModifier(t *testing.T) {
	for _, keyword := range []string{"final", "FINAL", " late ", "interface"} {
		m, err := ParseModifier(keyword)
		require.NoError(t, err, keyword)
		assert.NotZero(t, m)
	}

	m, err := ParseModifier("covariant")
	require.NoError(t, err)
	assert.Equal(t, Covariant, m)
}

func TestParseModifierHints(t *testing.T) {
	tests := []struct {
		keyword string
		hint    string
	}{
		{"finl", `did you mean "final"?`},
		{"abstrct", `did you mean "abstract"?`},
		{"requried", `did you mean "required"?`},
	}

	for _, tt := range tests {
		t.Run(tt.keyword, func(t *testing.T) {
			_, err := ParseModifier(tt.keyword)
			require.Error(t, err)
			assert.True(t, errors.IsBuildError(err))
			assert.Contains(t, errors.GetAllHints(err), tt.hint)
		})
	}

	_, err := ParseModifier("xyz")
	require.Error(t, err)
	assert.Empty(t, errors.GetAllHints(err))
}

func TestAllowedModifiers(t *testing.T) {
	assert.Equal(t, []Modifier{Final, Required, Const, Covariant}, AllowedModifiers(TargetParameter))
	assert.Equal(t, []Modifier{Static, Abstract, External, Async}, AllowedModifiers(TargetFunction))
	assert.Equal(t, []Modifier{Const, Factory, External}, AllowedModifiers(TargetConstructor))
}

func TestModifierString(t *testing.T) {
	assert.Equal(t, "required", Required.String())
	assert.Equal(t, "unknown", Modifier(0).String())
	assert.Equal(t, "unknown", Modifier(99).String())
	assert.False(t, Modifier(99).Allows(TargetClass))
}

func TestValidateModifiersProperty(t *testing.T) {
	targets := []Target{TargetClass, TargetFunction, TargetProperty, TargetParameter, TargetConstructor}

	rapid.Check(t, func(t *rapid.T) {
		target := rapid.SampledFrom(targets).Draw(t, "target")
		drawn := rapid.SliceOfN(rapid.IntRange(int(Public), int(Interface)), 0, 6).Draw(t, "modifiers")

		var ms []Modifier
		for _, d := range drawn {
			ms = appendModifier(ms, Modifier(d))
		}

		seen := map[Modifier]bool{}
		invalid := false
		for _, m := range ms {
			if seen[m] {
				t.Fatalf("modifier %s appended twice", m)
			}
			seen[m] = true
			invalid = invalid || !m.Allows(target)
		}
		invalid = invalid || (seen[Public] && seen[Private])

		err := validateModifiers(ms, target)
		if invalid != (err != nil) {
			t.Fatalf("validateModifiers(%v, %s) = %v, expected invalid=%v", ms, target, err, invalid)
		}
	})
}

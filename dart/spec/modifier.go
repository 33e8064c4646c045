package spec

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/teranos/dartpoet/errors"
)

// Modifier is a Dart keyword attached to a declaration. Public and Private
// are never rendered; Private turns the identifier into "_name".
type Modifier int

const (
	Public Modifier = iota + 1
	Private
	Final
	Required
	Const
	Covariant
	Static
	Abstract
	Late
	Factory
	External
	Async
	Sealed
	Base
	Interface
)

// Target is a set of declaration kinds a modifier may be applied to.
type Target uint8

const (
	TargetClass Target = 1 << iota
	TargetFunction
	TargetProperty
	TargetParameter
	TargetConstructor
)

var targetNames = map[Target]string{
	TargetClass:       "classes",
	TargetFunction:    "functions",
	TargetProperty:    "properties",
	TargetParameter:   "parameters",
	TargetConstructor: "constructors",
}

func (t Target) String() string {
	return targetNames[t]
}

type modifierInfo struct {
	keyword string
	targets Target
}

var modifiers = []modifierInfo{
	Public:    {"public", TargetClass | TargetFunction | TargetProperty | TargetConstructor},
	Private:   {"private", TargetClass | TargetFunction | TargetProperty | TargetConstructor},
	Final:     {"final", TargetClass | TargetProperty | TargetParameter},
	Required:  {"required", TargetParameter},
	Const:     {"const", TargetProperty | TargetParameter | TargetConstructor},
	Covariant: {"covariant", TargetProperty | TargetParameter},
	Static:    {"static", TargetFunction | TargetProperty},
	Abstract:  {"abstract", TargetClass | TargetFunction},
	Late:      {"late", TargetProperty},
	Factory:   {"factory", TargetConstructor},
	External:  {"external", TargetFunction | TargetProperty | TargetConstructor},
	Async:     {"async", TargetFunction},
	Sealed:    {"sealed", TargetClass},
	Base:      {"base", TargetClass},
	Interface: {"interface", TargetClass},
}

// String returns the Dart keyword.
func (m Modifier) String() string {
	if m <= 0 || int(m) >= len(modifiers) {
		return "unknown"
	}
	return modifiers[m].keyword
}

// Allows reports whether m may be applied to t.
func (m Modifier) Allows(t Target) bool {
	if m <= 0 || int(m) >= len(modifiers) {
		return false
	}
	return modifiers[m].targets&t != 0
}

// rendered reports whether m is emitted as a keyword.
func (m Modifier) rendered() bool {
	return m != Public && m != Private
}

// AllowedModifiers returns the modifiers valid for t in declaration order.
func AllowedModifiers(t Target) []Modifier {
	var out []Modifier
	for m := Public; int(m) < len(modifiers); m++ {
		if m.Allows(t) && m.rendered() {
			out = append(out, m)
		}
	}
	return out
}

// ParseModifier resolves a keyword. Unknown keywords fail with a hint naming
// the closest valid keyword.
func ParseModifier(keyword string) (Modifier, error) {
	k := strings.ToLower(strings.TrimSpace(keyword))
	keywords := make([]string, 0, len(modifiers))
	for m := Public; int(m) < len(modifiers); m++ {
		if modifiers[m].keyword == k {
			return m, nil
		}
		keywords = append(keywords, modifiers[m].keyword)
	}
	err := errors.NewBuildErrorf("unknown modifier %q", keyword)
	if ranks := fuzzy.RankFindFold(k, keywords); len(ranks) > 0 {
		sort.Sort(ranks)
		return 0, errors.WithHintf(err, "did you mean %q?", ranks[0].Target)
	}
	if closest := closestKeyword(k, keywords); closest != "" {
		return 0, errors.WithHintf(err, "did you mean %q?", closest)
	}
	return 0, err
}

// closestKeyword picks the keyword with the smallest edit distance to k.
func closestKeyword(k string, keywords []string) string {
	best, bestDist := "", -1
	for _, kw := range keywords {
		d := fuzzy.LevenshteinDistance(k, kw)
		if bestDist < 0 || d < bestDist {
			best, bestDist = kw, d
		}
	}
	if bestDist > len(k)/2+1 {
		return ""
	}
	return best
}

func formatModifiers(ms []Modifier) string {
	names := make([]string, len(ms))
	for i, m := range ms {
		names[i] = m.String()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

func hasModifier(ms []Modifier, m Modifier) bool {
	for _, x := range ms {
		if x == m {
			return true
		}
	}
	return false
}

// appendModifier appends m unless already present, keeping declaration order.
func appendModifier(ms []Modifier, m Modifier) []Modifier {
	if hasModifier(ms, m) {
		return ms
	}
	return append(ms, m)
}

// validateModifiers checks ms against the target and the visibility rule.
func validateModifiers(ms []Modifier, t Target) error {
	var invalid []Modifier
	for _, m := range ms {
		if !m.Allows(t) {
			invalid = append(invalid, m)
		}
	}
	if len(invalid) > 0 {
		return errors.NewBuildErrorf("Received invalid keywords %s. Allowed keywords for %s are %s",
			formatModifiers(invalid), t, formatModifiers(AllowedModifiers(t)))
	}
	if hasModifier(ms, Public) && hasModifier(ms, Private) {
		return errors.NewBuildError("The public and private modifiers can't be used together")
	}
	return nil
}

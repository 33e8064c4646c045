package code

import "strings"

// Structural markers. They carry no argument and produce no text; the Writer
// interprets them at render time.
const (
	IndentMarker         = "⇥"
	UnindentMarker       = "⇤"
	StatementBeginMarker = "«"
	StatementEndMarker   = "»"

	// NBSP is a space that binds its neighbours together. The Writer renders
	// it as a plain space.
	NBSP = "·"
)

type placeholderKind int

const (
	kindLiteral placeholderKind = iota
	kindDoubleQuoted
	kindSingleQuoted
	kindType
	kindName
	kindList
	kindPercent
	kindIndent
	kindUnindent
	kindStatementBegin
	kindStatementEnd
)

type placeholder struct {
	kind     placeholderKind
	takesArg bool
}

// placeholders is the fixed marker table. It is never written after
// initialization.
var placeholders = map[string]placeholder{
	"%L":                 {kind: kindLiteral, takesArg: true},
	"%S":                 {kind: kindDoubleQuoted, takesArg: true},
	"%C":                 {kind: kindSingleQuoted, takesArg: true},
	"%T":                 {kind: kindType, takesArg: true},
	"%N":                 {kind: kindName, takesArg: true},
	"%V":                 {kind: kindList, takesArg: true},
	"%%":                 {kind: kindPercent},
	IndentMarker:         {kind: kindIndent},
	UnindentMarker:       {kind: kindUnindent},
	StatementBeginMarker: {kind: kindStatementBegin},
	StatementEndMarker:   {kind: kindStatementEnd},
}

// markerStarts holds every character that may open a placeholder.
const markerStarts = "%" + IndentMarker + UnindentMarker + StatementBeginMarker + StatementEndMarker

func lookupPlaceholder(part string) (placeholder, bool) {
	p, ok := placeholders[part]
	return p, ok
}

// nextMarker returns the byte offset of the next potential placeholder in s
// at or after start, or -1.
func nextMarker(s string, start int) int {
	i := strings.IndexAny(s[start:], markerStarts)
	if i < 0 {
		return -1
	}
	return start + i
}

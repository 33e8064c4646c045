package code

import (
	"fmt"
	"strings"
)

// Quote returns s as a Dart string literal delimited by quote, which must be
// '"' or '\''. String interpolation is disabled by escaping "$".
func Quote(s string, quote rune) string {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteRune(quote)
	for _, r := range s {
		switch r {
		case '\\':
			sb.WriteString(`\\`)
		case '$':
			sb.WriteString(`\$`)
		case quote:
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\v':
			sb.WriteString(`\v`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&sb, `\x%02X`, r)
				continue
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteRune(quote)
	return sb.String()
}

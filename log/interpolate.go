package log

import (
	"fmt"
	"regexp"
	"strings"
)

// legacyPattern matches printf-style interpolation tokens:
// %s, %d, %f, %r, %c, %x, %o, %i, %%, and mapped forms like %(name)s.
var legacyPattern = regexp.MustCompile(`%(?:\([^)]+\))?[sdfrcoxi%]`)

// detectLegacyFormat reports whether the event message contains an
// old-style interpolation token. Pure predicate over the message text.
func detectLegacyFormat(event string) bool {
	return legacyPattern.MatchString(event)
}

// interpolate performs best-effort substitution of {identifier} tokens
// in event using the supplied fields. Tokens without a matching field
// are left verbatim. A malformed template (unterminated or empty token,
// non-identifier content, stray closing brace) yields the original
// string unchanged. Never fails.
//
// This is a dedicated scanner, not a template engine: there is no
// escape sequence and no nested or computed token support.
func interpolate(event string, fields []Field) string {
	if !strings.ContainsAny(event, "{}") {
		return event
	}

	byName := make(map[string]any, len(fields))
	for _, f := range fields {
		byName[f.Key] = f.Value
	}

	var b strings.Builder

	b.Grow(len(event))

	for i := 0; i < len(event); i++ {
		switch event[i] {
		case '}':
			return event

		case '{':
			end := strings.IndexByte(event[i+1:], '}')
			if end < 0 {
				return event
			}

			name := event[i+1 : i+1+end]
			if !isIdentifier(name) {
				return event
			}

			if v, ok := byName[name]; ok {
				fmt.Fprint(&b, v)
			} else {
				b.WriteByte('{')
				b.WriteString(name)
				b.WriteByte('}')
			}

			i += end + 1

		default:
			b.WriteByte(event[i])
		}
	}

	return b.String()
}

// isIdentifier reports whether s is a placeholder identifier:
// a letter or underscore followed by letters, digits, or underscores.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c == '_',
			c >= 'a' && c <= 'z',
			c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}

	return true
}

package services

import (
	"regexp"
	"strings"
)

// Entity substitutions applied in a single pass. A one-pass table lookup
// never double-unescapes, so text containing a literal "&amp;lt;" comes
// out as "&lt;" rather than "<".
var entityReplacements = []struct {
	entity string
	text   string
}{
	{"&#10;", "\n"},
	{"&quot;", "\""},
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&mdash;", "—"},
	{"&ndash;", "–"},
	{"&nbsp;", " "},
}

var blankRunPattern = regexp.MustCompile(`\n\s*\n`)

// sanitizeText unescapes the provider's HTML entities, collapses runs of
// blank lines to a single blank line, and trims surrounding whitespace.
func sanitizeText(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); {
		if s[i] == '&' {
			if text, n := matchEntity(s[i:]); n > 0 {
				sb.WriteString(text)
				i += n
				continue
			}
		}
		sb.WriteByte(s[i])
		i++
	}

	out := blankRunPattern.ReplaceAllString(sb.String(), "\n\n")
	return strings.TrimSpace(out)
}

func matchEntity(s string) (string, int) {
	for _, e := range entityReplacements {
		if strings.HasPrefix(s, e.entity) {
			return e.text, len(e.entity)
		}
	}
	return "", 0
}

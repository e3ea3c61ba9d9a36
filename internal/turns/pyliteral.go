package turns

import "strings"

// pyLiteralToJSON rewrites a Python-style literal (single-quoted strings,
// True/False/None) into JSON so the standard decoder can take a second try.
// It is a syntactic translation, not an evaluator: structure outside string
// literals passes through untouched.
func pyLiteralToJSON(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 16)

	i := 0
	for i < len(s) {
		c := s[i]
		switch {
		case c == '\'' || c == '"':
			i = writeJSONString(&b, s, i)
		case isIdentStart(c):
			j := i + 1
			for j < len(s) && isIdentPart(s[j]) {
				j++
			}
			switch word := s[i:j]; word {
			case "True":
				b.WriteString("true")
			case "False":
				b.WriteString("false")
			case "None":
				b.WriteString("null")
			default:
				b.WriteString(word)
			}
			i = j
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// writeJSONString consumes the quoted literal starting at i, writes its JSON
// form, and returns the index just past the closing quote.
func writeJSONString(b *strings.Builder, s string, i int) int {
	quote := s[i]
	b.WriteByte('"')
	j := i + 1
	for j < len(s) {
		c := s[j]
		switch {
		case c == '\\' && j+1 < len(s):
			next := s[j+1]
			if next == '\'' {
				b.WriteByte('\'') // \' is not a JSON escape
			} else {
				b.WriteByte('\\')
				b.WriteByte(next)
			}
			j += 2
			continue
		case c == quote:
			b.WriteByte('"')
			return j + 1
		case c == '"':
			b.WriteString(`\"`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c == '\t':
			b.WriteString(`\t`)
		default:
			b.WriteByte(c)
		}
		j++
	}
	// unterminated literal; the JSON parser will report it
	b.WriteByte('"')
	return j
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

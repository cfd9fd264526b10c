package adapter

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"allurelint.dev/pkg/allurelint/internal/pyast"
)

// decodeStringLiteral evaluates the source text of a single Python string
// literal such as r'a\b', b"x" or """doc""". It returns false for f-strings
// and t-strings, which are not constants.
func decodeStringLiteral(text string) (pyast.Literal, bool) {
	quote := strings.IndexAny(text, `'"`)
	if quote < 0 {
		return nil, false
	}

	prefix := strings.ToLower(text[:quote])
	if strings.ContainsAny(prefix, "ft") {
		return nil, false
	}

	body := stripQuotes(text[quote:])
	isBytes := strings.Contains(prefix, "b")

	if !strings.Contains(prefix, "r") {
		body = unescape(body, isBytes)
	}

	if isBytes {
		return pyast.BytesLiteral(body), true
	}

	return pyast.StringLiteral(body), true
}

func stripQuotes(quoted string) string {
	for _, q := range []string{`"""`, `'''`} {
		if len(quoted) >= 6 && strings.HasPrefix(quoted, q) && strings.HasSuffix(quoted, q) {
			return quoted[3 : len(quoted)-3]
		}
	}

	if len(quoted) >= 2 {
		return quoted[1 : len(quoted)-1]
	}

	return ""
}

var simpleEscapes = map[byte]byte{
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
	'a':  '\a',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
}

// unescape applies Python's backslash escapes. Unknown escapes are kept
// verbatim, as Python does. \N{...} is kept verbatim as well.
func unescape(s string, isBytes bool) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			continue
		}

		next := s[i+1]

		if r, ok := simpleEscapes[next]; ok {
			b.WriteByte(r)
			i++

			continue
		}

		switch {
		case next == '\n':
			i++
		case next == '\r':
			i++
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
		case next >= '0' && next <= '7':
			end := i + 2
			for end < len(s) && end < i+4 && s[end] >= '0' && s[end] <= '7' {
				end++
			}

			v, _ := strconv.ParseUint(s[i+1:end], 8, 32)
			writeCode(&b, rune(v), isBytes)
			i = end - 1
		case next == 'x':
			i += writeHex(&b, s, i, 2, isBytes)
		case next == 'u' && !isBytes:
			i += writeHex(&b, s, i, 4, isBytes)
		case next == 'U' && !isBytes:
			i += writeHex(&b, s, i, 8, isBytes)
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}

// writeHex decodes the escape starting at s[i] ('\\') followed by a letter and
// width hex digits. It returns how many extra bytes were consumed.
func writeHex(b *strings.Builder, s string, i, width int, isBytes bool) int {
	start := i + 2
	if start+width > len(s) {
		b.WriteByte(s[i])
		return 0
	}

	v, err := strconv.ParseUint(s[start:start+width], 16, 32)
	if err != nil {
		b.WriteByte(s[i])
		return 0
	}

	writeCode(b, rune(v), isBytes)

	return 1 + width
}

func writeCode(b *strings.Builder, r rune, isBytes bool) {
	if isBytes || r < utf8.RuneSelf {
		b.WriteByte(byte(r))
		return
	}

	b.WriteRune(r)
}

package dom

import "strings"

// htmlEscapes covers the characters that must never appear raw in markup.
var htmlEscapes = map[rune]string{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&#39;",
}

// attrEscapes additionally encodes whitespace that could break attribute
// parsing.
var attrEscapes = map[rune]string{
	'\n': "&#10;",
	'\r': "&#13;",
	'\t': "&#9;",
}

func escape(s string, extra map[rune]string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		if e, ok := htmlEscapes[r]; ok {
			buf.WriteString(e)
			continue
		}
		if e, ok := extra[r]; ok {
			buf.WriteString(e)
			continue
		}
		buf.WriteRune(r)
	}
	return buf.String()
}

// EscapeText escapes text for safe inclusion in HTML content.
func EscapeText(s string) string { return escape(s, nil) }

// EscapeAttr escapes text for safe inclusion in HTML attribute values.
func EscapeAttr(s string) string { return escape(s, attrEscapes) }

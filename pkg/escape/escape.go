// Package escape provides the character escaping used when HTML is
// rendered. Two variants exist: Text for element content and Attribute
// for double-quoted attribute values.
//
// Both functions are pure and total. They are not idempotent: escaping
// an already escaped string escapes the ampersands again ("&amp;"
// becomes "&amp;amp;"). Escape exactly once, at render time.
package escape

import "strings"

// Func is the signature of an escaping function. The renderer accepts
// custom Funcs so the escaping policy can be swapped or tested in
// isolation from tree construction.
type Func func(string) string

// Text escapes a string for safe inclusion in HTML element content.
// It converts special characters to their HTML entity equivalents
// to prevent XSS attacks.
func Text(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#x27;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

// Attribute escapes a string for safe inclusion in a double-quoted
// HTML attribute value. In addition to the standard HTML entities,
// it escapes whitespace characters that could break attribute parsing.
func Attribute(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))

	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#x27;")
		case '\n':
			buf.WriteString("&#10;")
		case '\r':
			buf.WriteString("&#13;")
		case '\t':
			buf.WriteString("&#9;")
		default:
			buf.WriteRune(r)
		}
	}

	return buf.String()
}

package htmltree

import (
	"strconv"
	"strings"
)

// entityNames maps named character references to their literal text.
// The five core names are also the encode direction; the rest are
// decode-only conveniences seen in real documents.
var entityNames = map[string]string{
	"amp":  "&",
	"lt":   "<",
	"gt":   ">",
	"quot": `"`,
	"apos": "'",

	"nbsp":   "\u00a0",
	"copy":   "©",
	"reg":    "®",
	"trade":  "™",
	"hellip": "…",
	"mdash":  "—",
	"ndash":  "–",
	"laquo":  "«",
	"raquo":  "»",
	"times":  "×",
	"divide": "÷",
}

// entityChars is the encode direction: the characters Escape rewrites
// and the references it rewrites them to.
var entityChars = map[byte]string{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&apos;",
}

// maxEntityLen caps the reference body length the decoder will scan
// for a terminating semicolon.
const maxEntityLen = 10

// Numeric reference bounds: only printable ASCII decodes.
const (
	minNumericRef = 32
	maxNumericRef = 126
)

// decodeEntity attempts to decode a character reference at the start
// of s, which must begin with '&'. It returns the decoded text and the
// number of input bytes consumed, or ("", 0) when s does not start
// with a recognized reference. Unrecognized references are not an
// error: the caller passes the '&' through literally.
func decodeEntity(s string) (text string, size int) {
	window := s
	if len(window) > maxEntityLen+2 {
		window = window[:maxEntityLen+2]
	}
	end := strings.IndexByte(window, ';')
	if end <= 1 {
		return "", 0
	}

	body := s[1:end]
	if body[0] == '#' {
		n, err := strconv.Atoi(body[1:])
		if err != nil || n < minNumericRef || n > maxNumericRef {
			return "", 0
		}
		return string(rune(n)), end + 1
	}

	lit, ok := entityNames[body]
	if !ok {
		return "", 0
	}
	return lit, end + 1
}

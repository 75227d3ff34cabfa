package htmltree

import "strings"

var textEscape = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// EscapeString replaces the markup-significant characters & < > " '
// with named entities. It is not idempotent: escaping twice turns a
// literal & into &amp;amp;. Apply it at most once per text value.
func EscapeString(s string) string {
	return textEscape.Replace(s)
}

// UnescapeString reverses named entities and numeric references &#N;
// for codepoints 32 through 126. Anything unrecognized stays literal.
func UnescapeString(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '&' {
			if text, size := decodeEntity(s[i:]); size > 0 {
				b.WriteString(text)
				i += size
				continue
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// EscapeTree escapes every Text leaf of a tree. Elements, attributes,
// and Raw leaves are left untouched; the result is a new tree.
func EscapeTree(n Node) Node {
	return mapText(n, EscapeString)
}

// UnescapeTree unescapes every Text leaf of a tree. Elements,
// attributes, and Raw leaves are left untouched.
func UnescapeTree(n Node) Node {
	return mapText(n, UnescapeString)
}

func mapText(n Node, f func(string) string) Node {
	switch t := n.(type) {
	case Text:
		return Text(f(string(t)))
	case *Element:
		if len(t.Content) == 0 {
			return t
		}
		content := make([]Node, len(t.Content))
		for i, child := range t.Content {
			content[i] = mapText(child, f)
		}
		return NewElement(t.Tag, t.Attrs, content...)
	default:
		// Raw and anything unknown pass through; the renderer is the
		// one that rejects unsupported nodes.
		return n
	}
}

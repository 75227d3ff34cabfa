package htmltree

import "fmt"

// tokenKind enumerates the tokens the scanner produces. Comments and
// doctype declarations are recognized and discarded, so no kind exists
// for them.
type tokenKind int

const (
	tokenTagOpen   tokenKind = iota // "<"
	tokenSlash                      // "/" inside a tag
	tokenTagName                    // tag identifier
	tokenAttrName                   // attribute name
	tokenAttrValue                  // attribute value, "" for boolean attributes
	tokenTagClose                   // ">"
	tokenSelfClose                  // "/>" or a void tag's ">"
	tokenText                       // character data, entities decoded
	tokenCData                      // opaque body of a CDATA-mode element
)

func (k tokenKind) String() string {
	switch k {
	case tokenTagOpen:
		return "tag-open"
	case tokenSlash:
		return "slash"
	case tokenTagName:
		return "tag-name"
	case tokenAttrName:
		return "attr-name"
	case tokenAttrValue:
		return "attr-value"
	case tokenTagClose:
		return "tag-close"
	case tokenSelfClose:
		return "self-close"
	case tokenText:
		return "text"
	case tokenCData:
		return "cdata"
	default:
		return fmt.Sprintf("tokenKind(%d)", int(k))
	}
}

// token is one scanner output. text carries the payload for tag-name,
// attr-name, attr-value, text, and cdata tokens; it is empty for
// punctuation kinds.
type token struct {
	kind tokenKind
	text string
}

func (t token) String() string {
	switch t.kind {
	case tokenTagName, tokenAttrName, tokenAttrValue, tokenText, tokenCData:
		return fmt.Sprintf("%s %q", t.kind, t.text)
	default:
		return t.kind.String()
	}
}

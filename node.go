package htmltree

import (
	"sort"
	"strings"
)

// Void elements per the HTML standard. They never carry content, are
// always rendered self-closed, and the parser never waits for their
// closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true,
	"embed": true, "hr": true, "img": true, "input": true,
	"keygen": true, "link": true, "meta": true, "param": true,
	"source": true, "track": true, "wbr": true,
}

// IsVoid reports whether tag is a void element. The check is exact:
// tag casing is preserved everywhere, so "BR" is not void.
func IsVoid(tag string) bool {
	return voidElements[tag]
}

// Node is a single node in a markup tree: Text, Raw, or *Element.
// The interface is sealed; the renderer rejects anything else.
type Node interface {
	isNode()
}

// Text is a plain text leaf. Its content is escaped on render unless
// escaping is disabled.
type Text string

func (Text) isNode() {}

// Raw is a pre-escaped text leaf. The renderer emits it verbatim and
// the escape utilities leave it untouched. The parser never produces
// Raw nodes; they exist for callers that build trees programmatically.
type Raw string

func (Raw) isNode() {}

// Element is a tagged node with attributes and ordered content.
// Elements are immutable values: build them through NewElement and do
// not modify Attrs or Content afterwards.
type Element struct {
	Tag     string
	Attrs   Attrs
	Content []Node
}

func (*Element) isNode() {}

// Attrs maps attribute names to values. A zero-value AttrValue means
// the attribute is absent and is omitted from output entirely.
type Attrs map[string]AttrValue

type attrKind int

const (
	attrAbsent attrKind = iota
	attrString
	attrList
)

// AttrValue is the value of one attribute: a string, an ordered list
// of strings (multi-valued attributes such as class), or absent.
// The zero value is absent.
type AttrValue struct {
	kind attrKind
	str  string
	list []string
}

// Value returns a plain string attribute value. Value("") is a
// boolean attribute: it renders as name='' and round-trips to itself.
func Value(s string) AttrValue {
	return AttrValue{kind: attrString, str: s}
}

// List returns a multi-valued attribute value. The parts are copied.
func List(parts ...string) AttrValue {
	cp := make([]string, len(parts))
	copy(cp, parts)
	return AttrValue{kind: attrList, list: cp}
}

// IsAbsent reports whether the value is absent (the zero value).
func (v AttrValue) IsAbsent() bool {
	return v.kind == attrAbsent
}

// IsList reports whether the value is multi-valued.
func (v AttrValue) IsList() bool {
	return v.kind == attrList
}

// Parts returns the value as a list of strings: the list itself for
// multi-valued attributes, a single-element list for strings, and nil
// for absent values. The returned slice is a copy.
func (v AttrValue) Parts() []string {
	switch v.kind {
	case attrString:
		return []string{v.str}
	case attrList:
		cp := make([]string, len(v.list))
		copy(cp, v.list)
		return cp
	default:
		return nil
	}
}

// String returns the rendered form of the value: the string itself,
// list parts joined with single spaces, or "" for absent values.
func (v AttrValue) String() string {
	switch v.kind {
	case attrString:
		return v.str
	case attrList:
		return strings.Join(v.list, " ")
	default:
		return ""
	}
}

// Equal reports whether two attribute values are the same kind with
// the same content. go-cmp picks this up in tests.
func (v AttrValue) Equal(o AttrValue) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case attrString:
		return v.str == o.str
	case attrList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != o.list[i] {
				return false
			}
		}
	}
	return true
}

// NewElement builds an element. The attrs map and content slice are
// copied, so the caller may reuse its own. Absent attribute values are
// dropped during the copy.
// Panics if a void element is given content (programmer error, similar
// to time.NewTicker with a non-positive duration).
func NewElement(tag string, attrs Attrs, content ...Node) *Element {
	if IsVoid(tag) && len(content) > 0 {
		panic("htmltree: void element " + tag + " cannot have content")
	}

	var cpAttrs Attrs
	if len(attrs) > 0 {
		cpAttrs = make(Attrs, len(attrs))
		for name, value := range attrs {
			if value.IsAbsent() {
				continue
			}
			cpAttrs[name] = value
		}
		if len(cpAttrs) == 0 {
			cpAttrs = nil
		}
	}

	var cpContent []Node
	if len(content) > 0 {
		cpContent = make([]Node, len(content))
		copy(cpContent, content)
	}

	return &Element{Tag: tag, Attrs: cpAttrs, Content: cpContent}
}

// attrNames returns the attribute names in sorted order. Go maps are
// unordered; sorting keeps rendered output deterministic.
func (e *Element) attrNames() []string {
	if len(e.Attrs) == 0 {
		return nil
	}
	names := make([]string, 0, len(e.Attrs))
	for name := range e.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

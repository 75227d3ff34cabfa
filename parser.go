package htmltree

import "strings"

// defaultCDATATags returns the tags whose bodies are lexed as opaque
// text rather than nested markup.
func defaultCDATATags() map[string]bool {
	return map[string]bool{"script": true, "style": true}
}

// preserveTags keep their whitespace verbatim even though their bodies
// are parsed as normal markup.
var preserveTags = map[string]bool{"pre": true, "textarea": true}

// Parser converts markup text into node trees. The zero configuration
// treats script and style as CDATA; WithCDATATags extends that set.
// A Parser is stateless after construction and safe for concurrent use.
type Parser struct {
	cdata map[string]bool
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithCDATATags adds tag names whose bodies are treated as opaque
// literal text, on top of the default script and style.
func WithCDATATags(tags ...string) ParserOption {
	return func(p *Parser) {
		for _, tag := range tags {
			p.cdata[tag] = true
		}
	}
}

// NewParser creates a Parser.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{cdata: defaultCDATATags()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse parses input with the default configuration. The result is a
// fragment: one node for a single root, several for sibling roots.
func Parse(input string) ([]Node, error) {
	return NewParser().Parse(input)
}

// Parse tokenizes input and builds the node tree. Errors are always
// *ParseError values; errors.Is distinguishes ErrParse (lexical) from
// ErrUnbalanced (mismatched or missing close tags).
func (p *Parser) Parse(input string) ([]Node, error) {
	tokens, err := tokenize(input, p.cdata)
	if err != nil {
		return nil, err
	}

	b := &treeBuilder{tokens: tokens, cdata: p.cdata}
	nodes, err := b.parseNodes(false)
	if err != nil {
		return nil, err
	}
	if b.pos < len(b.tokens) {
		// A stray close tag leaves its tokens unconsumed.
		return nil, b.buildError(ErrUnbalanced)
	}
	return tidyContent(nodes, false), nil
}

// treeBuilder is the recursive-descent consumer of the token stream.
type treeBuilder struct {
	tokens []token
	pos    int
	cdata  map[string]bool
}

// parseNodes consumes sibling nodes until a close-tag sequence or the
// end of the stream, leaving the close sequence for the caller.
// Adjacent text tokens are merged. preserve is true inside a
// whitespace-preserving element and flows down to every descendant.
func (b *treeBuilder) parseNodes(preserve bool) ([]Node, error) {
	var nodes []Node
	for b.pos < len(b.tokens) {
		t := b.tokens[b.pos]
		switch t.kind {
		case tokenText:
			if len(nodes) > 0 {
				if prev, ok := nodes[len(nodes)-1].(Text); ok {
					nodes[len(nodes)-1] = prev + Text(t.text)
					b.pos++
					continue
				}
			}
			nodes = append(nodes, Text(t.text))
			b.pos++
		case tokenTagOpen:
			if b.pos+1 < len(b.tokens) && b.tokens[b.pos+1].kind == tokenSlash {
				return nodes, nil
			}
			el, err := b.parseElement(preserve)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, el)
		default:
			return nil, b.buildError(ErrParse)
		}
	}
	return nodes, nil
}

// parseElement consumes one element: name, attributes, then either a
// self-close, an opaque CDATA body, or recursively built children up
// to the matching close tag.
func (b *treeBuilder) parseElement(preserve bool) (*Element, error) {
	if !b.take(tokenTagOpen) {
		return nil, b.buildError(ErrParse)
	}
	name, ok := b.takeText(tokenTagName)
	if !ok {
		return nil, b.buildError(ErrParse)
	}

	var attrs Attrs
	for {
		if b.pos >= len(b.tokens) {
			return nil, b.buildError(ErrUnbalanced)
		}
		t := b.tokens[b.pos]
		switch t.kind {
		case tokenAttrName:
			b.pos++
			value, ok := b.takeText(tokenAttrValue)
			if !ok {
				return nil, b.buildError(ErrParse)
			}
			if attrs == nil {
				attrs = Attrs{}
			}
			addAttr(attrs, t.text, value)
		case tokenSelfClose:
			b.pos++
			return NewElement(name, attrs), nil
		case tokenTagClose:
			b.pos++
			return b.parseContent(name, attrs, preserve)
		default:
			return nil, b.buildError(ErrParse)
		}
	}
}

// parseContent builds the body of an already-opened element. A
// preserve element turns tidying off for its whole subtree, not only
// its direct children.
func (b *treeBuilder) parseContent(name string, attrs Attrs, preserve bool) (*Element, error) {
	if b.cdata[name] {
		raw, ok := b.takeText(tokenCData)
		if !ok {
			return nil, b.buildError(ErrParse)
		}
		if err := b.expectClose(name); err != nil {
			return nil, err
		}
		if raw == "" {
			return NewElement(name, attrs), nil
		}
		return NewElement(name, attrs, Text(raw)), nil
	}

	preserve = preserve || preserveTags[name]
	children, err := b.parseNodes(preserve)
	if err != nil {
		return nil, err
	}
	if err := b.expectClose(name); err != nil {
		return nil, err
	}
	children = tidyContent(children, preserve)
	return NewElement(name, attrs, children...), nil
}

// expectClose consumes "</name>" and fails on any mismatch.
func (b *treeBuilder) expectClose(name string) error {
	if !b.take(tokenTagOpen) || !b.take(tokenSlash) {
		return b.buildError(ErrUnbalanced)
	}
	got, ok := b.takeText(tokenTagName)
	if !ok || got != name {
		return b.buildError(ErrUnbalanced)
	}
	if !b.take(tokenTagClose) {
		return b.buildError(ErrUnbalanced)
	}
	return nil
}

// take consumes the next token if it has the given kind.
func (b *treeBuilder) take(kind tokenKind) bool {
	if b.pos < len(b.tokens) && b.tokens[b.pos].kind == kind {
		b.pos++
		return true
	}
	return false
}

// takeText consumes the next token if it has the given kind and
// returns its payload.
func (b *treeBuilder) takeText(kind tokenKind) (string, bool) {
	if b.pos < len(b.tokens) && b.tokens[b.pos].kind == kind {
		text := b.tokens[b.pos].text
		b.pos++
		return text, true
	}
	return "", false
}

// buildError reports where tree building stopped, mirroring the
// tokenizer's structured errors at the token level.
func (b *treeBuilder) buildError(sentinel error) error {
	var last string
	if b.pos > 0 {
		last = b.tokens[b.pos-1].String()
	}
	var remaining []string
	for i := b.pos; i < len(b.tokens) && i < b.pos+4; i++ {
		remaining = append(remaining, b.tokens[i].String())
	}
	return &ParseError{
		State:     "tree",
		LastToken: last,
		Remaining: strings.Join(remaining, " "),
		sentinel:  sentinel,
	}
}

// addAttr records one attribute. class values merge into a list split
// on whitespace; everything else keeps its raw string, with boolean
// attributes as "".
func addAttr(attrs Attrs, name, value string) {
	if name != "class" {
		attrs[name] = Value(value)
		return
	}
	parts := strings.Fields(value)
	if existing, ok := attrs[name]; ok && existing.IsList() {
		parts = append(existing.Parts(), parts...)
	}
	attrs[name] = List(parts...)
}

// tidyContent applies the whitespace policy to an element's direct
// children: interior runs collapse to one space, the first child loses
// leading and the last child trailing whitespace, and children that
// collapse to nothing are dropped. Preserve-tagged elements skip all
// of it.
func tidyContent(nodes []Node, preserve bool) []Node {
	if preserve || len(nodes) == 0 {
		return nodes
	}

	tidied := make([]Node, len(nodes))
	for i, n := range nodes {
		if t, ok := n.(Text); ok {
			tidied[i] = Text(collapseSpace(string(t)))
		} else {
			tidied[i] = n
		}
	}
	if t, ok := tidied[0].(Text); ok {
		tidied[0] = Text(strings.TrimLeft(string(t), " "))
	}
	if t, ok := tidied[len(tidied)-1].(Text); ok {
		tidied[len(tidied)-1] = Text(strings.TrimRight(string(t), " "))
	}

	out := tidied[:0:0]
	for _, n := range tidied {
		if t, ok := n.(Text); ok && t == "" {
			continue
		}
		out = append(out, n)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// collapseSpace rewrites every whitespace run in s to a single space.
func collapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for i := 0; i < len(s); i++ {
		if isSpace(s[i]) {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteByte(s[i])
	}
	return b.String()
}

package htmltree

import (
	"fmt"
	"strings"
)

// QuoteStyle selects the attribute quote character.
type QuoteStyle int

const (
	SingleQuote QuoteStyle = iota
	DoubleQuote
)

func (q QuoteStyle) String() string {
	if q == DoubleQuote {
		return `"`
	}
	return "'"
}

// Renderer serializes node trees back into markup text. The defaults
// are single-quoted attributes with escaping on. A Renderer is
// stateless after construction and safe for concurrent use.
type Renderer struct {
	quote   QuoteStyle
	escape  bool
	rawTags map[string]bool
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithQuote sets the attribute quote character.
// Panics on an undefined style (programmer error).
func WithQuote(q QuoteStyle) RendererOption {
	if q != SingleQuote && q != DoubleQuote {
		panic("htmltree: undefined quote style")
	}
	return func(r *Renderer) {
		r.quote = q
	}
}

// WithoutEscaping disables entity escaping of text and attribute
// values. The caller becomes responsible for the output being
// well-formed.
func WithoutEscaping() RendererOption {
	return func(r *Renderer) {
		r.escape = false
	}
}

// WithRawTags adds tag names whose direct text content is emitted
// without escaping, on top of the default script and style. This set
// should match the parser's CDATA set or round-trips will not hold.
func WithRawTags(tags ...string) RendererOption {
	return func(r *Renderer) {
		for _, tag := range tags {
			r.rawTags[tag] = true
		}
	}
}

// NewRenderer creates a Renderer.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		quote:   SingleQuote,
		escape:  true,
		rawTags: defaultCDATATags(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render serializes nodes with the default configuration.
func Render(nodes ...Node) (string, error) {
	return NewRenderer().Render(nodes...)
}

// Render serializes nodes into a single string.
func (r *Renderer) Render(nodes ...Node) (string, error) {
	chunks, err := r.RenderChunks(nodes...)
	if err != nil {
		return "", err
	}
	return strings.Join(chunks, ""), nil
}

// RenderChunks serializes nodes into the ordered chunk list the walk
// accumulates. Render is exactly strings.Join over this.
func (r *Renderer) RenderChunks(nodes ...Node) ([]string, error) {
	var chunks []string
	for _, n := range nodes {
		// A top-level html element gets the doctype; nothing else does.
		if el, ok := n.(*Element); ok && el.Tag == "html" {
			chunks = append(chunks, "<!doctype html>\n")
		}
		var err error
		chunks, err = r.walk(chunks, n, false)
		if err != nil {
			return nil, err
		}
	}
	return chunks, nil
}

func (r *Renderer) walk(chunks []string, n Node, rawText bool) ([]string, error) {
	switch t := n.(type) {
	case Text:
		if r.escape && !rawText {
			return append(chunks, EscapeString(string(t))), nil
		}
		return append(chunks, string(t)), nil
	case Raw:
		return append(chunks, string(t)), nil
	case *Element:
		return r.walkElement(chunks, t)
	default:
		return nil, fmt.Errorf("%w: %T", ErrRenderNode, n)
	}
}

func (r *Renderer) walkElement(chunks []string, e *Element) ([]string, error) {
	quote := r.quote.String()

	chunks = append(chunks, "<"+e.Tag)
	for _, name := range e.attrNames() {
		value := e.Attrs[name]
		if value.IsAbsent() {
			continue
		}
		text := value.String()
		if r.escape {
			text = r.escapeAttr(text)
		}
		chunks = append(chunks, " "+name+"="+quote+text+quote)
	}

	if IsVoid(e.Tag) {
		return append(chunks, "/>"), nil
	}

	chunks = append(chunks, ">")
	rawText := r.rawTags[e.Tag]
	for _, child := range e.Content {
		var err error
		chunks, err = r.walk(chunks, child, rawText)
		if err != nil {
			return nil, err
		}
	}
	return append(chunks, "</"+e.Tag+">"), nil
}

// Only the quote character in use needs escaping inside attribute
// values; the other quote passes through.
var (
	attrEscapeSingle = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", "'", "&apos;")
	attrEscapeDouble = strings.NewReplacer(
		"&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

func (r *Renderer) escapeAttr(s string) string {
	if r.quote == DoubleQuote {
		return attrEscapeDouble.Replace(s)
	}
	return attrEscapeSingle.Replace(s)
}

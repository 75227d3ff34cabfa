package htmltree

import (
	"bytes"
	"fmt"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

// MarkdownOption configures FromMarkdown.
type MarkdownOption func(*markdownConfig)

type markdownConfig struct {
	highlightStyle string
}

// WithHighlightStyle selects a chroma style for fenced code blocks,
// switching highlighting from CSS classes to inline styles. The name
// is validated against the chroma style registry.
func WithHighlightStyle(name string) MarkdownOption {
	return func(c *markdownConfig) {
		c.highlightStyle = name
	}
}

// FromMarkdown converts Markdown (GFM) into a node fragment: goldmark
// renders an XHTML fragment, which is then parsed by this package's
// parser. The result obeys the same whitespace and CDATA rules as any
// other parsed input.
func FromMarkdown(source string, opts ...MarkdownOption) ([]Node, error) {
	var cfg markdownConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var hl goldmark.Extender
	if cfg.highlightStyle != "" {
		if _, ok := styles.Registry[cfg.highlightStyle]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrHighlightStyle, cfg.highlightStyle)
		}
		hl = highlighting.NewHighlighting(
			highlighting.WithStyle(cfg.highlightStyle),
		)
	} else {
		hl = highlighting.NewHighlighting(
			highlighting.WithFormatOptions(
				chromahtml.WithClasses(true), // external stylesheet controls the palette
			),
		)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, // tables, strikethrough, autolinks, task lists
			hl,
		),
		goldmark.WithParserOptions(
			gmparser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithXHTML(), // self-closing tags, which this parser requires
		),
	)

	var buf bytes.Buffer
	if err := md.Convert([]byte(source), &buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarkdown, err)
	}
	nodes, err := Parse(buf.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMarkdown, err)
	}
	return nodes, nil
}

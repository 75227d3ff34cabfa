// Package htmltree parses HTML-like markup into immutable node trees
// and serializes such trees back into text.
//
// # Quick Start
//
// Parse a fragment, inspect it, and render it back:
//
//	nodes, err := htmltree.Parse("<div class='a b'>Tom &amp; Jerry</div>")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := htmltree.Render(nodes...)
//	// out == "<div class='a b'>Tom &amp; Jerry</div>"
//
// Trees can equally be built programmatically and rendered without a
// parse step:
//
//	page := htmltree.NewElement("html", nil,
//	    htmltree.NewElement("body", nil, htmltree.Text("hello")),
//	)
//	out, _ := htmltree.Render(page) // begins with "<!doctype html>\n"
//
// # Data Model
//
// A Node is either Text, Raw, or *Element. Elements carry a tag, an
// attribute map, and ordered content. Attribute values are strings,
// ordered lists (class), or absent; absent values are omitted from
// output entirely. Trees are immutable values: constructors copy
// their inputs and nothing mutates a node after construction, so any
// number of parses and renders may run concurrently.
//
// # Parsing Rules
//
// The tokenizer is a hand-written state machine. Void elements (br,
// img, input, ...) never take content and never wait for a closing
// tag; all other unclosed tags are errors, as is any mismatched close
// tag. script and style bodies are lexed as opaque CDATA so embedded
// '<' and '>' never become markup; WithCDATATags extends that set.
// Comments and doctype declarations are recognized and discarded.
// Entity references decode through a fixed table; unknown references
// degrade to a literal '&'. Inter-tag indentation is dropped and
// interior whitespace runs collapse to single spaces, except inside
// CDATA tags, pre, and textarea.
//
// Failed parses return a *ParseError carrying the machine state, the
// offending character, the last token, and the unconsumed input.
//
// # Rendering
//
// The renderer walks a tree depth-first, accumulating chunks that are
// concatenated once (RenderChunks exposes them). Attributes render in
// sorted name order with single quotes by default (WithQuote switches
// to double), text and attribute values are entity-escaped unless
// WithoutEscaping is set, and Raw leaves always bypass escaping. A
// top-level html element is preceded by "<!doctype html>".
//
// # Beyond Parse and Render
//
// EscapeTree and UnescapeTree transform the text leaves of a tree
// without touching its structure. FromMarkdown converts Markdown to a
// node fragment via goldmark. Sanitize filters a fragment through a
// bluemonday policy. ToGomponents bridges trees into the gomponents
// ecosystem.
package htmltree

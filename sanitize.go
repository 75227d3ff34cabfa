package htmltree

import (
	"fmt"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitize runs a node fragment through a bluemonday policy and
// returns the cleaned fragment. The tree is rendered with
// double-quoted attributes (the form bluemonday itself emits), the
// policy filters the markup, and the result is parsed back.
//
// Use this on fragments built from untrusted input, for example:
//
//	nodes, err := htmltree.Sanitize(bluemonday.UGCPolicy(), untrusted...)
func Sanitize(policy *bluemonday.Policy, nodes ...Node) ([]Node, error) {
	if policy == nil {
		return nil, ErrNilPolicy
	}

	markup, err := NewRenderer(WithQuote(DoubleQuote)).Render(nodes...)
	if err != nil {
		return nil, err
	}

	out, err := Parse(policy.Sanitize(markup))
	if err != nil {
		return nil, fmt.Errorf("reparsing sanitized markup: %w", err)
	}
	return out, nil
}

package htmltree

import (
	"errors"
	"fmt"
)

// Sentinel errors for library operations.
var (
	ErrParse          = errors.New("malformed markup")
	ErrUnbalanced     = errors.New("unbalanced markup")
	ErrRenderNode     = errors.New("unsupported node type")
	ErrMarkdown       = errors.New("markdown conversion failed")
	ErrHighlightStyle = errors.New("unknown highlight style")
	ErrNilPolicy      = errors.New("sanitize policy cannot be nil")
)

// ParseError describes exactly where tokenizing or tree building
// stopped: the machine state, the offending character, the last token
// produced, and a window of the unconsumed input.
type ParseError struct {
	State     string // state name at the point of failure
	Char      rune   // offending character, 0 at end of input
	LastToken string // last emitted token, "" if none
	Remaining string // unconsumed input window

	sentinel error // ErrParse or ErrUnbalanced
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%v: state %s", e.sentinel, e.State)
	// Tree-builder errors have no offending character; only claim end
	// of input when nothing actually remains.
	if e.Char != 0 {
		msg += fmt.Sprintf(", char %q", e.Char)
	} else if e.Remaining == "" {
		msg += ", at end of input"
	}
	if e.LastToken != "" {
		msg += fmt.Sprintf(", after %s", e.LastToken)
	}
	if e.Remaining != "" {
		msg += fmt.Sprintf(", remaining %q", e.Remaining)
	}
	return msg
}

// Unwrap exposes the sentinel so callers can use errors.Is(err, ErrParse)
// or errors.Is(err, ErrUnbalanced).
func (e *ParseError) Unwrap() error {
	return e.sentinel
}

package main

import (
	"errors"
	"os"

	htmltree "github.com/alnah/go-htmltree"
	"github.com/alnah/go-htmltree/internal/config"
)

// Exit codes for the htmltree CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid command, flags, or config
	ExitIO      = 3 // File not found, permission denied
	ExitParse   = 4 // Malformed or unbalanced markup
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Parse errors (exit 4)
	if errors.Is(err, htmltree.ErrParse) ||
		errors.Is(err, htmltree.ErrUnbalanced) ||
		errors.Is(err, htmltree.ErrMarkdown) {
		return ExitParse
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) {
		return ExitIO
	}

	// Usage/config errors (exit 2)
	if errors.Is(err, ErrNoCommand) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidQuote) ||
		errors.Is(err, htmltree.ErrHighlightStyle) {
		return ExitUsage
	}

	return ExitGeneral
}

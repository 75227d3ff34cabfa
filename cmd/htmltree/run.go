package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	htmltree "github.com/alnah/go-htmltree"
	"github.com/alnah/go-htmltree/internal/config"
	flag "github.com/spf13/pflag"
)

// Sentinel errors for CLI operations.
var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrReadInput      = errors.New("failed to read input")
	ErrWriteOutput    = errors.New("failed to write output")
)

// filePermissions for written output files: owner read+write, others read.
const filePermissions = 0o644

// run dispatches to a subcommand. Input comes from the first
// positional argument or stdin; output goes to --output or stdout.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return ErrNoCommand
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "fmt":
		err = runFmt(rest, stdin, stdout, stderr)
	case "escape":
		err = runText(rest, stdin, stdout, htmltree.EscapeString)
	case "unescape":
		err = runText(rest, stdin, stdout, htmltree.UnescapeString)
	case "md":
		err = runMd(rest, stdin, stdout, stderr)
	case "version":
		fmt.Fprintln(stdout, "htmltree "+Version)
	case "help":
		printHelp(rest, stdout)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
	if errors.Is(err, flag.ErrHelp) {
		return nil // pflag already printed the flag usage
	}
	return err
}

// runFmt parses markup and re-renders it with the configured style.
func runFmt(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags, rest, err := parseFmtFlags(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	input, err := readInput(rest, stdin)
	if err != nil {
		return err
	}

	// Flags win over config.
	quoteName := flags.quote
	if quoteName == "" && cfg.DoubleQuote() {
		quoteName = "double"
	}
	var quote htmltree.QuoteStyle
	switch quoteName {
	case "", "single":
		quote = htmltree.SingleQuote
	case "double":
		quote = htmltree.DoubleQuote
	default:
		return fmt.Errorf("%w: %q (must be single or double)", config.ErrInvalidQuote, quoteName)
	}
	cdataTags := append(cfg.Format.CDATATags, flags.cdataTags...)

	parser := htmltree.NewParser(htmltree.WithCDATATags(cdataTags...))
	nodes, err := parser.Parse(input)
	if err != nil {
		return err
	}
	if flags.common.verbose {
		fmt.Fprintf(stderr, "parsed %d top-level node(s)\n", len(nodes))
	}

	opts := []htmltree.RendererOption{htmltree.WithQuote(quote)}
	if flags.noEscape || !cfg.EscapeEnabled() {
		opts = append(opts, htmltree.WithoutEscaping())
	}
	if len(cdataTags) > 0 {
		opts = append(opts, htmltree.WithRawTags(cdataTags...))
	}
	out, err := htmltree.NewRenderer(opts...).Render(nodes...)
	if err != nil {
		return err
	}
	return writeOutput(flags.common.output, out+"\n", stdout)
}

// runText handles the escape and unescape commands.
func runText(args []string, stdin io.Reader, stdout io.Writer, transform func(string) string) error {
	flags, rest, err := parseTextFlags("text", args)
	if err != nil {
		return err
	}
	input, err := readInput(rest, stdin)
	if err != nil {
		return err
	}
	return writeOutput(flags.output, transform(input), stdout)
}

// runMd converts Markdown input to a markup fragment.
func runMd(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags, rest, err := parseMdFlags(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(flags.common.config)
	if err != nil {
		return err
	}

	input, err := readInput(rest, stdin)
	if err != nil {
		return err
	}

	highlight := flags.highlight
	if highlight == "" {
		highlight = cfg.Markdown.HighlightStyle
	}
	var opts []htmltree.MarkdownOption
	if highlight != "" {
		opts = append(opts, htmltree.WithHighlightStyle(highlight))
	}

	nodes, err := htmltree.FromMarkdown(input, opts...)
	if err != nil {
		return err
	}
	if flags.common.verbose {
		fmt.Fprintf(stderr, "converted to %d top-level node(s)\n", len(nodes))
	}
	out, err := htmltree.Render(nodes...)
	if err != nil {
		return err
	}
	return writeOutput(flags.common.output, out+"\n", stdout)
}

func loadConfig(nameOrPath string) (*config.Config, error) {
	if nameOrPath == "" {
		return config.Default(), nil
	}
	return config.Load(nameOrPath)
}

// readInput reads the first positional argument as a file, or stdin
// when no argument is given.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		data, err := os.ReadFile(args[0]) // #nosec G304 -- input path is user-provided
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrReadInput, err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReadInput, err)
	}
	return string(data), nil
}

// writeOutput writes to the given path, or stdout when path is empty.
func writeOutput(path, content string, stdout io.Writer) error {
	if path == "" {
		_, err := io.WriteString(stdout, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

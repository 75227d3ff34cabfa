package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htmltree <command> [flags] [file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  fmt        Parse markup and re-render it")
	fmt.Fprintln(w, "  escape     Entity-escape text")
	fmt.Fprintln(w, "  unescape   Reverse entity escaping")
	fmt.Fprintln(w, "  md         Convert Markdown to a markup fragment")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input is read from the file argument, or stdin when omitted.")
	fmt.Fprintln(w, "Run 'htmltree help <command>' for details on a specific command.")
}

// printFmtUsage prints usage for the fmt command.
func printFmtUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htmltree fmt [flags] [file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Parse markup and re-render it in normalized form.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>     Output file (default stdout)")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "      --quote <s>         Attribute quotes: single, double")
	fmt.Fprintln(w, "      --no-escape         Disable entity escaping")
	fmt.Fprintln(w, "      --cdata-tag <s>     Extra CDATA tag name (repeatable)")
	fmt.Fprintln(w, "  -v, --verbose           Show parse diagnostics on stderr")
}

// printMdUsage prints usage for the md command.
func printMdUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: htmltree md [flags] [file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert Markdown (GFM) to a markup fragment.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>     Output file (default stdout)")
	fmt.Fprintln(w, "  -c, --config <name>     Config file name or path")
	fmt.Fprintln(w, "      --highlight <s>     Chroma style for code blocks")
	fmt.Fprintln(w, "  -v, --verbose           Show parse diagnostics on stderr")
}

// printTextUsage prints usage for the escape and unescape commands.
func printTextUsage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage: htmltree %s [flags] [file]\n", name)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <path>     Output file (default stdout)")
}

// printHelp routes 'htmltree help <command>'.
func printHelp(args []string, w io.Writer) {
	if len(args) == 0 {
		printUsage(w)
		return
	}
	switch args[0] {
	case "fmt":
		printFmtUsage(w)
	case "md":
		printMdUsage(w)
	case "escape", "unescape":
		printTextUsage(w, args[0])
	default:
		printUsage(w)
	}
}

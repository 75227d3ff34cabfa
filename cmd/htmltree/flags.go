package main

import (
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	output  string
	verbose bool
}

// fmtFlags holds flags for the fmt command.
type fmtFlags struct {
	common    commonFlags
	quote     string
	noEscape  bool
	cdataTags []string
}

// mdFlags holds flags for the md command.
type mdFlags struct {
	common    commonFlags
	highlight string
}

// textFlags holds flags for the escape and unescape commands.
type textFlags struct {
	output string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show parse diagnostics on stderr")
}

func parseFmtFlags(args []string) (*fmtFlags, []string, error) {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	f := &fmtFlags{}
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.quote, "quote", "", "attribute quote style: single, double")
	fs.BoolVar(&f.noEscape, "no-escape", false, "disable entity escaping")
	fs.StringSliceVar(&f.cdataTags, "cdata-tag", nil, "extra CDATA tag name (repeatable)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func parseMdFlags(args []string) (*mdFlags, []string, error) {
	fs := flag.NewFlagSet("md", flag.ContinueOnError)
	f := &mdFlags{}
	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.highlight, "highlight", "", "chroma style for code blocks (default: CSS classes)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

func parseTextFlags(name string, args []string) (*textFlags, []string, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	f := &textFlags{}
	fs.StringVarP(&f.output, "output", "o", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// Package config loads the CLI configuration file: formatting options
// for the fmt command and markdown options for the md command.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-htmltree/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidQuote    = errors.New("invalid quote style")
)

// Config holds all CLI configuration.
type Config struct {
	Format   FormatConfig   `yaml:"format"`
	Markdown MarkdownConfig `yaml:"markdown"`
}

// FormatConfig defines options for parsing and re-rendering markup.
type FormatConfig struct {
	Quote     string   `yaml:"quote"`     // "single" (default) or "double"
	Escape    *bool    `yaml:"escape"`    // nil = enabled
	CDATATags []string `yaml:"cdataTags"` // added on top of script, style
}

// MarkdownConfig defines options for markdown conversion.
type MarkdownConfig struct {
	HighlightStyle string `yaml:"highlightStyle"` // chroma style name, "" = CSS classes
}

// Default returns the neutral configuration: single quotes, escaping
// on, no extra CDATA tags.
func Default() *Config {
	return &Config{Format: FormatConfig{Quote: "single"}}
}

// Validate checks that configured values are usable.
func (c *Config) Validate() error {
	switch c.Format.Quote {
	case "", "single", "double":
		return nil
	default:
		return fmt.Errorf("%w: %q (must be single or double)", ErrInvalidQuote, c.Format.Quote)
	}
}

// DoubleQuote reports whether attributes should render double-quoted.
func (c *Config) DoubleQuote() bool {
	return c.Format.Quote == "double"
}

// EscapeEnabled reports whether entity escaping is on (the default).
func (c *Config) EscapeEnabled() bool {
	return c.Format.Escape == nil || *c.Format.Escape
}

// Load reads configuration from a file path or config name.
// A string containing a path separator is treated as a file path;
// anything else is searched in the current directory and the user
// config directory. A missing file is an error, never a silent
// fallback.
func Load(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path := nameOrPath
	if !strings.ContainsAny(nameOrPath, "/\\") {
		resolved, err := resolvePath(nameOrPath)
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolvePath searches for a config by name: current directory first,
// then the user config directory, trying .yaml then .yml.
func resolvePath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	tried := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		local := name + ext
		if fileExists(local) {
			return local, nil
		}
		tried = append(tried, local)
	}

	if userDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			path := filepath.Join(userDir, "go-htmltree", name+ext)
			if fileExists(path) {
				return path, nil
			}
			tried = append(tried, path)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func boolPtr(b bool) *bool { return &b }

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Format.Quote != "single" {
		t.Errorf("Quote = %q, want %q", cfg.Format.Quote, "single")
	}
	if cfg.DoubleQuote() {
		t.Error("DoubleQuote() = true for the default config")
	}
	if !cfg.EscapeEnabled() {
		t.Error("EscapeEnabled() = false for the default config")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		quote   string
		wantErr bool
	}{
		{"empty", "", false},
		{"single", "single", false},
		{"double", "double", false},
		{"unknown", "fancy", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := &Config{Format: FormatConfig{Quote: tt.quote}}
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidQuote) {
					t.Errorf("errors.Is(err, ErrInvalidQuote) = false for %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestConfig_EscapeEnabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		escape *bool
		want   bool
	}{
		{"unset defaults on", nil, true},
		{"explicitly on", boolPtr(true), true},
		{"explicitly off", boolPtr(false), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := &Config{Format: FormatConfig{Escape: tt.escape}}
			if got := cfg.EscapeEnabled(); got != tt.want {
				t.Errorf("EscapeEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoad_Path(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	content := "format:\n  quote: double\n  escape: false\n  cdataTags:\n    - template\nmarkdown:\n  highlightStyle: monokai\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !cfg.DoubleQuote() {
		t.Error("DoubleQuote() = false")
	}
	if cfg.EscapeEnabled() {
		t.Error("EscapeEnabled() = true, want false")
	}
	if len(cfg.Format.CDATATags) != 1 || cfg.Format.CDATATags[0] != "template" {
		t.Errorf("CDATATags = %v, want [template]", cfg.Format.CDATATags)
	}
	if cfg.Markdown.HighlightStyle != "monokai" {
		t.Errorf("HighlightStyle = %q, want %q", cfg.Markdown.HighlightStyle, "monokai")
	}
}

func TestLoad_NameResolvesInWorkingDirectory(t *testing.T) {
	t.Chdir(t.TempDir())

	content := "format:\n  quote: single\n"
	if err := os.WriteFile("htmltree.yml", []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("htmltree")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Format.Quote != "single" {
		t.Errorf("Quote = %q, want %q", cfg.Format.Quote, "single")
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name, content string) string {
		t.Helper()
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name     string
		arg      string
		sentinel error
	}{
		{"empty name", "", ErrEmptyConfigName},
		{"missing path", filepath.Join(dir, "missing.yaml"), ErrConfigNotFound},
		{"unresolvable name", "definitely-not-a-config-name", ErrConfigNotFound},
		{"malformed yaml", write("bad.yaml", "format: [unclosed"), ErrConfigParse},
		{"unknown field", write("extra.yaml", "format:\n  quote: single\n  bogus: 1\n"), ErrConfigParse},
		{"invalid quote", write("quote.yaml", "format:\n  quote: fancy\n"), ErrInvalidQuote},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Load(tt.arg)
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(err, %v) = false for %v", tt.sentinel, err)
			}
		})
	}
}

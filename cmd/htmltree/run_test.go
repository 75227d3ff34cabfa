package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-htmltree/internal/config"
)

func runCmd(t *testing.T, args []string, stdin string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := run(args, strings.NewReader(stdin), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestRun_Fmt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{
			name:  "normalizes stdin",
			args:  []string{"fmt"},
			stdin: "<div class='b  a'>\n  <p>x</p>\n</div>",
			want:  "<div class='b a'><p>x</p></div>\n",
		},
		{
			name:  "double quote flag",
			args:  []string{"fmt", "--quote", "double"},
			stdin: "<a href='/x'>go</a>",
			want:  "<a href=\"/x\">go</a>\n",
		},
		{
			name:  "no-escape flag",
			args:  []string{"fmt", "--no-escape"},
			stdin: "<p>a &amp; b</p>",
			want:  "<p>a & b</p>\n",
		},
		{
			name:  "extra cdata tag",
			args:  []string{"fmt", "--cdata-tag", "template"},
			stdin: "<template>1 < 2</template>",
			want:  "<template>1 < 2</template>\n",
		},
		{
			name:  "escaping applies on re-render",
			args:  []string{"fmt"},
			stdin: "<p>Tom &amp; Jerry</p>",
			want:  "<p>Tom &amp; Jerry</p>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			stdout, _, err := runCmd(t, tt.args, tt.stdin)
			if err != nil {
				t.Fatalf("run error: %v", err)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
		})
	}
}

func TestRun_FmtFileRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.html")
	out := filepath.Join(dir, "out.html")
	if err := os.WriteFile(in, []byte("<p>  hi  </p>"), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runCmd(t, []string{"fmt", "--output", out, in}, "")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty when writing to a file", stdout)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(data), "<p>hi</p>\n"; got != want {
		t.Errorf("output file = %q, want %q", got, want)
	}
}

func TestRun_FmtVerbose(t *testing.T) {
	t.Parallel()

	_, stderr, err := runCmd(t, []string{"fmt", "-v"}, "<p>x</p><p>y</p>")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !strings.Contains(stderr, "2 top-level node(s)") {
		t.Errorf("stderr = %q, want node count diagnostic", stderr)
	}
}

func TestRun_FmtConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := "format:\n  quote: double\n"
	if err := os.WriteFile(path, []byte(cfg), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout, _, err := runCmd(t, []string{"fmt", "--config", path}, "<p title='x'>a</p>")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if want := "<p title=\"x\">a</p>\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}

	// A flag still beats the config file.
	stdout, _, err = runCmd(t, []string{"fmt", "--config", path, "--quote", "single"}, "<p title='x'>a</p>")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if want := "<p title='x'>a</p>\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRun_FmtErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		stdin    string
		sentinel error
	}{
		{"invalid quote flag", []string{"fmt", "--quote", "fancy"}, "<p>x</p>", config.ErrInvalidQuote},
		{"missing input file", []string{"fmt", "no-such-file.html"}, "", ErrReadInput},
		{"missing config", []string{"fmt", "--config", "./no-such-config.yaml"}, "<p>x</p>", config.ErrConfigNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, _, err := runCmd(t, tt.args, tt.stdin)
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(err, %v) = false for %v", tt.sentinel, err)
			}
		})
	}
}

func TestRun_EscapeUnescape(t *testing.T) {
	t.Parallel()

	stdout, _, err := runCmd(t, []string{"escape"}, "a < b & c")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if want := "a &lt; b &amp; c"; stdout != want {
		t.Errorf("escape stdout = %q, want %q", stdout, want)
	}

	stdout, _, err = runCmd(t, []string{"unescape"}, "a &lt; b &amp; c")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if want := "a < b & c"; stdout != want {
		t.Errorf("unescape stdout = %q, want %q", stdout, want)
	}
}

func TestRun_Md(t *testing.T) {
	t.Parallel()

	stdout, _, err := runCmd(t, []string{"md"}, "# Hi")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if want := "<h1 id='hi'>Hi</h1>\n"; stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	stdout, _, err := runCmd(t, []string{"version"}, "")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !strings.HasPrefix(stdout, "htmltree ") {
		t.Errorf("stdout = %q, want htmltree version line", stdout)
	}
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	stdout, _, err := runCmd(t, []string{"help"}, "")
	if err != nil {
		t.Fatalf("run error: %v", err)
	}
	if !strings.Contains(stdout, "fmt") || !strings.Contains(stdout, "md") {
		t.Errorf("help output missing commands:\n%s", stdout)
	}
}

func TestRun_Dispatch(t *testing.T) {
	t.Parallel()

	_, stderr, err := runCmd(t, nil, "")
	if !errors.Is(err, ErrNoCommand) {
		t.Errorf("errors.Is(err, ErrNoCommand) = false for %v", err)
	}
	if stderr == "" {
		t.Error("no usage printed for missing command")
	}

	_, _, err = runCmd(t, []string{"bogus"}, "")
	if !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("errors.Is(err, ErrUnknownCommand) = false for %v", err)
	}
}

package htmltree

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/microcosm-cc/bluemonday"
)

func TestSanitize_StripsScript(t *testing.T) {
	t.Parallel()

	dirty := []Node{
		NewElement("p", nil, Text("hi")),
		NewElement("script", nil, Text("alert(1)")),
	}
	got, err := Sanitize(bluemonday.UGCPolicy(), dirty...)
	if err != nil {
		t.Fatalf("Sanitize error: %v", err)
	}
	want := []Node{NewElement("p", nil, Text("hi"))}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestSanitize_AnnotatesLinks(t *testing.T) {
	t.Parallel()

	dirty := []Node{
		NewElement("a", Attrs{"href": Value("http://example.com/")}, Text("go")),
	}
	got, err := Sanitize(bluemonday.UGCPolicy(), dirty...)
	if err != nil {
		t.Fatalf("Sanitize error: %v", err)
	}
	// The UGC policy forces rel="nofollow" onto links.
	want := []Node{
		NewElement("a", Attrs{
			"href": Value("http://example.com/"),
			"rel":  Value("nofollow"),
		}, Text("go")),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestSanitize_StrictPolicyLeavesText(t *testing.T) {
	t.Parallel()

	got, err := Sanitize(bluemonday.StrictPolicy(), NewElement("p", nil, Text("hi")))
	if err != nil {
		t.Fatalf("Sanitize error: %v", err)
	}
	want := []Node{Text("hi")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestSanitize_NilPolicy(t *testing.T) {
	t.Parallel()

	_, err := Sanitize(nil, Text("x"))
	if !errors.Is(err, ErrNilPolicy) {
		t.Errorf("errors.Is(err, ErrNilPolicy) = false for %v", err)
	}
}

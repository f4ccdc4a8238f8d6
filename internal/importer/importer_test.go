package importer

import (
	"strings"
	"testing"
)

func TestExtractTextRejectsGarbage(t *testing.T) {
	if _, err := ExtractText([]byte("not a pdf")); err != ErrUnreadablePDF {
		t.Fatalf("expected ErrUnreadablePDF, got %v", err)
	}
	if _, err := ExtractText(nil); err != ErrUnreadablePDF {
		t.Fatalf("expected ErrUnreadablePDF for empty input, got %v", err)
	}
}

func TestPrefillFromTextFindsContactFields(t *testing.T) {
	text := strings.Join([]string{
		"Dana Fox",
		"dana@example.com | (555) 010-0100",
		"Operations lead with six years running retail floors.",
		"Cut shrink 12% across three stores.",
	}, "\n")

	p := PrefillFromText(text)
	if p.FullName != "Dana Fox" {
		t.Fatalf("expected name guess, got %q", p.FullName)
	}
	if p.Email != "dana@example.com" {
		t.Fatalf("expected email, got %q", p.Email)
	}
	if p.Phone == "" {
		t.Fatal("expected phone guess")
	}
	if !strings.Contains(p.Summary, "Operations lead") {
		t.Fatalf("expected summary seed, got %q", p.Summary)
	}
}

func TestPrefillFromTextEmptyInput(t *testing.T) {
	p := PrefillFromText("")
	if p.FullName != "" || p.Email != "" || p.Summary != "" {
		t.Fatalf("expected zero prefill, got %+v", p)
	}
}

func TestLooksLikeName(t *testing.T) {
	cases := map[string]bool{
		"Dana Fox":                   true,
		"dana@example.com":           false,
		"Call me at 555-0100":        false,
		"An enormously long line that could never plausibly be just a name on a resume": false,
	}
	for line, want := range cases {
		if got := looksLikeName(line); got != want {
			t.Fatalf("looksLikeName(%q) = %v, want %v", line, got, want)
		}
	}
}

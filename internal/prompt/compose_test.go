package prompt

import (
	"errors"
	"strings"
	"testing"
)

func TestComposeEmptyInput(t *testing.T) {
	_, err := Compose(nil)
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func TestComposeStartsWithBaseClause(t *testing.T) {
	captions := []string{
		"a cat, realistic, photograph",
		"a cat, realistic, photo",
	}

	composite, err := Compose(captions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(composite, "a cat") {
		t.Fatalf("composite must start with the first clause, got %q", composite)
	}
	if !strings.Contains(composite, "realistic") {
		t.Fatalf("top keyword missing from %q", composite)
	}
}

func TestComposeNonEmptyForNonEmptyCaptions(t *testing.T) {
	cases := [][]string{
		{"a dog"},
		{"", "a dog running"},
		{"unreal engine render, 4k"},
	}
	for _, captions := range cases {
		composite, err := Compose(captions)
		if err != nil {
			t.Fatalf("Compose(%v): unexpected error %v", captions, err)
		}
		if composite == "" {
			t.Errorf("Compose(%v) returned empty composite", captions)
		}
	}
}

func TestComposeKeywordCap(t *testing.T) {
	caption := "alpha bravo charlie delta echo foxtrot golf hotel india juliet " +
		"kilo lima mike november oscar papa quebec romeo sierra tango"

	composite, err := Compose([]string{caption})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Base clause plus at most 15 keywords, no styles for a one-clause caption.
	parts := strings.Split(composite, ", ")
	if len(parts) > 16 {
		t.Fatalf("expected at most 16 parts, got %d: %q", len(parts), composite)
	}
}

func TestComposeAppendsStyleTags(t *testing.T) {
	captions := []string{
		"a castle, on a hill, at dusk, matte painting, dramatic lighting, wide shot",
		"a castle, towers, fog, matte painting, dramatic lighting, wide shot",
	}

	composite, err := Compose(captions)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(composite, "matte painting") {
		t.Fatalf("expected style tag in composite, got %q", composite)
	}
}

package features

import "testing"

func TestAnalyzeTextRealismPrompt(t *testing.T) {
	scores := AnalyzeText("a realistic photo, 4k, cinematic")

	if scores[Realism] <= 0 {
		t.Fatalf("expected positive realism score, got %v", scores)
	}
	if _, ok := scores[Animation]; ok {
		t.Fatal("animation category must be absent, not zero")
	}
}

func TestAnalyzeTextAnimationPrompt(t *testing.T) {
	scores := AnalyzeText("an anime character, 2d animation, cartoon style")

	if scores[Animation] <= 0 {
		t.Fatalf("expected positive animation score, got %v", scores)
	}
}

func TestAnalyzeTextScoreCap(t *testing.T) {
	// All eight realism terms present pushes hits/|set|*1.5 past 1.0.
	scores := AnalyzeText("realistic photorealistic real photograph cinematic 4k 8k hdr")
	if got := scores[Realism]; got != 1.0 {
		t.Fatalf("expected capped score 1.0, got %v", got)
	}
}

func TestAnalyzeTextEmptyPrompt(t *testing.T) {
	if scores := AnalyzeText(""); len(scores) != 0 {
		t.Fatalf("expected empty table, got %v", scores)
	}
}

func TestAnalyzeTextBounds(t *testing.T) {
	prompts := []string{
		"a painting of a dog, artwork, illustration",
		"stylized concept art, digital art",
		"a photograph of a real place",
	}
	for _, p := range prompts {
		for name, score := range AnalyzeText(p) {
			if score <= 0 || score > 1 {
				t.Errorf("prompt %q: feature %s out of (0,1]: %v", p, name, score)
			}
		}
	}
}

package features

import (
	"testing"

	"github.com/vidprompt/vidprompt/internal/models"
)

// solidFrame builds a frame filled with a single color.
func solidFrame(width, height int, r, g, b uint8) models.Frame {
	pix := make([]uint8, 0, width*height*3)
	for i := 0; i < width*height; i++ {
		pix = append(pix, r, g, b)
	}
	return models.Frame{Width: width, Height: height, Pix: pix}
}

// checkerFrame alternates black and white pixels for maximal channel variance.
func checkerFrame(width, height int) models.Frame {
	pix := make([]uint8, 0, width*height*3)
	for i := 0; i < width*height; i++ {
		var v uint8
		if i%2 == 0 {
			v = 255
		}
		pix = append(pix, v, v, v)
	}
	return models.Frame{Width: width, Height: height, Pix: pix}
}

func TestAnalyzeVisualEmpty(t *testing.T) {
	scores := AnalyzeVisual(nil)
	if len(scores) != 0 {
		t.Fatalf("expected empty table for no frames, got %v", scores)
	}
}

func TestAnalyzeVisualSingleFrameSkipsConsistency(t *testing.T) {
	scores := AnalyzeVisual([]models.Frame{solidFrame(8, 8, 120, 120, 120)})
	if _, ok := scores[Consistency]; ok {
		t.Fatal("consistency must not be scored for a single frame")
	}
	if _, ok := scores[HighResolution]; !ok {
		t.Fatal("resolution tier missing")
	}
	if _, ok := scores[ColorRichness]; !ok {
		t.Fatal("color richness missing")
	}
}

func TestAnalyzeVisualResolutionTiers(t *testing.T) {
	cases := []struct {
		width, height int
		want          float64
	}{
		{1920, 1080, 0.8},
		{3840, 2160, 0.8},
		{640, 1080, 0.8}, // height alone crosses the top tier
		{1280, 720, 0.6},
		{640, 480, 0.4},
	}
	for _, tc := range cases {
		frame := models.Frame{Width: tc.width, Height: tc.height, Pix: []uint8{0, 0, 0}}
		scores := AnalyzeVisual([]models.Frame{frame})
		if got := scores[HighResolution]; got != tc.want {
			t.Errorf("%dx%d: expected %.1f, got %.1f", tc.width, tc.height, tc.want, got)
		}
	}
}

func TestAnalyzeVisualIdenticalFramesMaxConsistency(t *testing.T) {
	frame := solidFrame(16, 16, 40, 80, 120)
	scores := AnalyzeVisual([]models.Frame{frame, frame})
	if got := scores[Consistency]; got != 0.9 {
		t.Fatalf("identical frames must hit the top consistency tier, got %.2f", got)
	}
}

func TestAnalyzeVisualLargeDriftLowConsistency(t *testing.T) {
	a := solidFrame(16, 16, 0, 0, 0)
	b := solidFrame(16, 16, 200, 200, 200)
	scores := AnalyzeVisual([]models.Frame{a, b})
	if got := scores[Consistency]; got != 0.5 {
		t.Fatalf("expected bottom consistency tier, got %.2f", got)
	}
}

func TestAnalyzeVisualColorRichness(t *testing.T) {
	flat := AnalyzeVisual([]models.Frame{solidFrame(16, 16, 90, 90, 90)})
	if got := flat[ColorRichness]; got != 0.4 {
		t.Errorf("flat frame: expected 0.4, got %.1f", got)
	}

	rich := AnalyzeVisual([]models.Frame{checkerFrame(16, 16)})
	if got := rich[ColorRichness]; got != 0.8 {
		t.Errorf("checker frame: expected 0.8, got %.1f", got)
	}
}

func TestMergeTextualOverridesVisual(t *testing.T) {
	visual := Score{Consistency: 0.7, HighResolution: 0.8}
	textual := Score{Consistency: 0.2, Realism: 0.9}

	merged := Merge(visual, textual)
	if merged[Consistency] != 0.2 {
		t.Errorf("textual value must win on collision, got %.2f", merged[Consistency])
	}
	if merged[HighResolution] != 0.8 || merged[Realism] != 0.9 {
		t.Errorf("merge lost entries: %v", merged)
	}
}

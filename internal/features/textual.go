package features

import "strings"

// Keyword sets for the three semantic categories the textual analyzer
// scores. Membership is tested by substring, matching how caption models
// phrase these qualifiers.
var (
	realismTerms = []string{
		"realistic", "photorealistic", "real", "photograph",
		"cinematic", "4k", "8k", "hdr",
	}
	animationTerms = []string{
		"anime", "animation", "cartoon", "animated",
		"stylized", "2d", "character",
	}
	artTerms = []string{
		"painting", "artwork", "illustration",
		"digital art", "concept art", "artistic",
	}
)

// AnalyzeText scores the composite prompt against the realism, animation
// and art-style vocabularies. Each category scores hits/|set| boosted by
// 1.5 and capped at 1.0; a category with no hits is left out of the table
// entirely.
func AnalyzeText(prompt string) Score {
	scores := make(Score)
	lowered := strings.ToLower(prompt)

	categories := []struct {
		name  string
		terms []string
	}{
		{Realism, realismTerms},
		{Animation, animationTerms},
		{ArtStyle, artTerms},
	}

	for _, cat := range categories {
		hits := 0
		for _, term := range cat.terms {
			if strings.Contains(lowered, term) {
				hits++
			}
		}
		if hits == 0 {
			continue
		}
		score := float64(hits) / float64(len(cat.terms)) * 1.5
		if score > 1.0 {
			score = 1.0
		}
		scores[cat.name] = score
	}

	return scores
}

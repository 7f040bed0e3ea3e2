package fingerprint

import (
	"strings"

	"github.com/vidprompt/vidprompt/internal/features"
	"github.com/vidprompt/vidprompt/internal/models"
)

// keywordWeight is the share of every profile's total weight reserved for
// the keyword trigger pass. It is always added to the denominator, even for
// a profile with no triggers matched, so confidence is never inflated by a
// keyword-less normalization.
const keywordWeight = 0.3

// Match holds one profile's normalized score against the observed features.
type Match struct {
	Score            float64
	MatchingFeatures features.Score
	KeywordMatches   []string
}

// Attribution is the final ranked guess for one analysis request.
type Attribution struct {
	Model          string             `json:"model"`
	Description    string             `json:"description"`
	Confidence     float64            `json:"confidence"`
	Features       map[string]float64 `json:"features"`
	KeywordMatches []string           `json:"keyword_matches"`
}

// ScoreAll scores the combined visual and textual features plus the
// composite prompt against every catalogue entry. Visual scores merge
// first and textual second, so textual observations win on collision.
func ScoreAll(visual, textual features.Score, prompt string) map[string]Match {
	combined := features.Merge(visual, textual)
	lowered := strings.ToLower(prompt)

	results := make(map[string]Match, len(catalogue))
	for _, profile := range catalogue {
		results[profile.Name] = scoreProfile(profile, combined, lowered)
	}
	return results
}

func scoreProfile(profile Profile, observed features.Score, lowered string) Match {
	var score, totalWeight float64
	matching := make(features.Score)

	for _, expected := range profile.Features {
		value, ok := observed[expected.Name]
		if !ok {
			continue
		}
		score += value * expected.Weight
		totalWeight += expected.Weight
		matching[expected.Name] = value
	}

	var matched []string
	for _, keyword := range profile.Keywords {
		if strings.Contains(lowered, keyword) {
			matched = append(matched, keyword)
		}
	}

	keywordRatio := 0.0
	if len(profile.Keywords) > 0 {
		keywordRatio = float64(len(matched)) / float64(len(profile.Keywords))
	}
	score += keywordRatio * keywordWeight
	totalWeight += keywordWeight

	final := 0.0
	if totalWeight > 0 {
		final = score / totalWeight
	}

	return Match{
		Score:            final,
		MatchingFeatures: matching,
		KeywordMatches:   matched,
	}
}

// Guess analyzes the frames and composite prompt and returns the best
// matching generator profile. Ties resolve to the profile defined first in
// the catalogue. Guess never fails: with nothing observed every profile
// scores zero and the first catalogue entry is reported with zero
// confidence.
func Guess(frames []models.Frame, prompt string) Attribution {
	visual := features.AnalyzeVisual(frames)
	textual := features.AnalyzeText(prompt)
	matches := ScoreAll(visual, textual, prompt)

	best := catalogue[0]
	bestMatch := matches[best.Name]
	for _, profile := range catalogue[1:] {
		if m := matches[profile.Name]; m.Score > bestMatch.Score {
			best = profile
			bestMatch = m
		}
	}

	return Attribution{
		Model:          best.Name,
		Description:    best.Description,
		Confidence:     bestMatch.Score,
		Features:       bestMatch.MatchingFeatures,
		KeywordMatches: bestMatch.KeywordMatches,
	}
}

// Package features computes coarse visual and textual feature scores used
// for generator attribution. Scores are bounded confidence values in [0, 1]
// keyed by feature category; a category that was not observed is absent
// from the score table rather than present with a zero value.
package features

// Feature category names. The catalogue of generator fingerprints is keyed
// on these exact strings, so they must not change.
const (
	HighResolution = "高分辨率"
	Consistency    = "风格一致性"
	ColorRichness  = "色彩丰富度"
	Realism        = "高真实感"
	Animation      = "动画风格"
	ArtStyle       = "艺术风格"
)

// Score maps a feature category to a confidence value in [0, 1].
type Score map[string]float64

// Merge combines two score tables into a new one. Entries from the second
// table win on key collision; attribution merges visual scores first and
// textual scores second, so textual observations take precedence.
func Merge(first, second Score) Score {
	merged := make(Score, len(first)+len(second))
	for name, value := range first {
		merged[name] = value
	}
	for name, value := range second {
		merged[name] = value
	}
	return merged
}

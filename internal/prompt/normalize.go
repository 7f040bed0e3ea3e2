package prompt

import "strings"

// noisePhrases are rendering/platform/quality-hype fragments that caption
// models routinely append but that carry no scene content. Any clause
// containing one of these is dropped during normalization.
var noisePhrases = []string{
	"trending on artstation",
	"artstation",
	"unreal engine",
	"octane render",
	"award winning",
	"4k",
	"8k",
	"uhd",
}

// Normalize cleans a single raw caption: lowercases it, splits it into
// comma-separated clauses, drops clauses that contain a noise phrase or any
// character outside printable ASCII, and rejoins the survivors. The result
// is only empty when the input was empty; if every clause is dropped the
// first original clause is kept so downstream stages always have text to
// work with. Normalize is a fixed point: running it on its own output
// returns the same string.
func Normalize(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	lowered := strings.ToLower(raw)

	var clauses []string
	for _, part := range strings.Split(lowered, ",") {
		if part = strings.TrimSpace(part); part != "" {
			clauses = append(clauses, part)
		}
	}

	if len(clauses) == 0 {
		return "image"
	}

	var kept []string
	for _, clause := range clauses {
		if isNoise(clause) || !isPrintable(clause) {
			continue
		}
		kept = append(kept, clause)
	}

	// Keep the first clause rather than returning nothing.
	if len(kept) == 0 {
		return clauses[0]
	}

	return strings.Join(kept, ", ")
}

func isNoise(clause string) bool {
	for _, phrase := range noisePhrases {
		if strings.Contains(clause, phrase) {
			return true
		}
	}
	return false
}

// isPrintable reports whether every character is printable ASCII.
func isPrintable(s string) bool {
	for _, r := range s {
		if r < 0x20 || r > 0x7e {
			return false
		}
	}
	return true
}

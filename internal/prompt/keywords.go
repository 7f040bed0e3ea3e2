package prompt

import (
	"regexp"
	"sort"
	"strings"
)

// stopWords are common English function words excluded from keyword counts.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "with": {}, "by": {}, "of": {},
	"from": {}, "as": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "being": {}, "have": {}, "has": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {}, "shall": {},
	"should": {}, "may": {}, "might": {}, "must": {}, "can": {}, "could": {},
}

var wordPattern = regexp.MustCompile(`\w+`)

// TokenCount pairs a keyword with its occurrence count across a caption batch.
type TokenCount struct {
	Token string
	Count int
}

// AggregateKeywords tokenizes all captions, discards stop words and tokens
// of length two or less, and returns the surviving tokens ranked by count
// descending. Counts do not depend on caption order; tokens with equal
// counts keep their first-seen order, which makes the ranking deterministic
// for any given input.
func AggregateKeywords(captions []string) []TokenCount {
	text := strings.ToLower(strings.Join(captions, " "))

	counts := make(map[string]int)
	var order []string

	for _, word := range wordPattern.FindAllString(text, -1) {
		if len(word) <= 2 {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	ranked := make([]TokenCount, 0, len(order))
	for _, word := range order {
		ranked = append(ranked, TokenCount{Token: word, Count: counts[word]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	return ranked
}

package prompt

import (
	"sort"
	"strings"
)

// TagCount pairs a style tag with its occurrence count across a caption batch.
type TagCount struct {
	Tag   string
	Count int
}

// AggregateStyles extracts trailing style tags from each caption and returns
// them ranked by count descending, ties in first-seen order. Caption models
// append art-style qualifiers at the end of a description, so only captions
// with more than three comma-separated clauses contribute, and only their
// last three clauses are taken as candidates. Candidates containing
// non-printable characters are discarded.
func AggregateStyles(captions []string) []TagCount {
	counts := make(map[string]int)
	var order []string

	for _, caption := range captions {
		parts := strings.Split(caption, ", ")
		if len(parts) <= 3 {
			continue
		}
		for _, tag := range parts[len(parts)-3:] {
			if !isPrintable(tag) {
				continue
			}
			if counts[tag] == 0 {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	ranked := make([]TagCount, 0, len(order))
	for _, tag := range order {
		ranked = append(ranked, TagCount{Tag: tag, Count: counts[tag]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	return ranked
}

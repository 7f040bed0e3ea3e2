// Package prompt merges per-frame captions into one composite description.
//
// Each caption is normalized, keyword and style frequencies are aggregated
// across the batch, and the top-ranked entries are joined onto a base scene
// description taken from the first caption.
package prompt

import (
	"errors"
	"strings"
)

// ErrEmptyInput is returned by Compose when no captions are supplied:
// a composite prompt has no meaningful base description without at least one.
var ErrEmptyInput = errors.New("no captions to compose")

const (
	maxKeywords = 15
	maxStyles   = 5
)

// Compose builds the composite prompt for a batch of per-frame captions.
// The result starts with the first clause of the first caption, followed by
// the top keywords by frequency and, when present, the most common trailing
// style tags. The result is never empty as long as at least one caption has
// content.
func Compose(captions []string) (string, error) {
	if len(captions) == 0 {
		return "", ErrEmptyInput
	}

	cleaned := make([]string, len(captions))
	for i, caption := range captions {
		cleaned[i] = Normalize(caption)
	}

	base := strings.TrimSpace(strings.SplitN(cleaned[0], ",", 2)[0])

	var parts []string
	if base != "" {
		parts = append(parts, base)
	}

	keywords := AggregateKeywords(cleaned)
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	for _, kw := range keywords {
		parts = append(parts, kw.Token)
	}

	styles := AggregateStyles(cleaned)
	if len(styles) > maxStyles {
		styles = styles[:maxStyles]
	}
	for _, style := range styles {
		if isPrintable(style.Tag) {
			parts = append(parts, style.Tag)
		}
	}

	return strings.Join(parts, ", "), nil
}

// Package captioner abstracts the vision-language model that turns a frame
// into a free-text caption. The production implementation talks to a local
// Ollama vision model; tests substitute a double returning canned strings.
package captioner

import (
	"context"
	"fmt"
)

// Captioner produces a natural-language caption for one extracted frame.
// Implementations return a *CaptionError when the frame cannot be analyzed.
type Captioner interface {
	Caption(ctx context.Context, framePath string) (string, error)
}

// CaptionError reports a per-frame captioning failure. The pipeline treats
// it as recoverable: the affected frame degrades to a placeholder caption
// instead of failing the whole batch.
type CaptionError struct {
	FramePath string
	Err       error
}

func (e *CaptionError) Error() string {
	return fmt.Sprintf("captioning frame %q failed: %v", e.FramePath, e.Err)
}

func (e *CaptionError) Unwrap() error {
	return e.Err
}

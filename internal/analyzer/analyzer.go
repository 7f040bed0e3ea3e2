// Package analyzer runs one video through the full pipeline: key-frame
// extraction, concurrent per-frame captioning, prompt composition and
// generator attribution. One Processor call is one request; nothing is
// shared between requests except the injected collaborators.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/vidprompt/vidprompt/internal/captioner"
	"github.com/vidprompt/vidprompt/internal/extractor"
	"github.com/vidprompt/vidprompt/internal/fingerprint"
	"github.com/vidprompt/vidprompt/internal/models"
	"github.com/vidprompt/vidprompt/internal/prompt"
	"github.com/vidprompt/vidprompt/internal/storage"
)

// placeholderCaption stands in for a frame the captioner could not analyze.
// One bad frame degrades to this instead of failing the whole batch.
const placeholderCaption = "unable to analyze image"

const defaultWorkers = 4 // Adjust based on your CPU cores

// Report is the complete outcome of analyzing one video.
type Report struct {
	ID              string                  `json:"id"`
	VideoPath       string                  `json:"video_path"`
	Info            *extractor.VideoInfo    `json:"info"`
	Captions        []models.CaptionResult  `json:"captions"`
	CompositePrompt string                  `json:"composite_prompt"`
	Attribution     fingerprint.Attribution `json:"attribution"`
}

// Processor wires the collaborators for one analysis pipeline.
type Processor struct {
	captioner  captioner.Captioner
	store      storage.Store
	logger     *slog.Logger
	workers    int
	frameCount int
}

// NewProcessor creates a processor around an injected captioner and store.
func NewProcessor(c captioner.Captioner, store storage.Store, logger *slog.Logger, workers, frameCount int) *Processor {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if frameCount <= 0 {
		frameCount = 5
	}
	return &Processor{
		captioner:  c,
		store:      store,
		logger:     logger,
		workers:    workers,
		frameCount: frameCount,
	}
}

// ProcessVideo analyzes a video end to end and returns the report.
func (p *Processor) ProcessVideo(ctx context.Context, videoPath, outputDir string) (*Report, error) {
	p.logger.Info("processing video", "path", videoPath)

	info, err := extractor.ProbeVideo(ctx, videoPath)
	if err != nil {
		return nil, fmt.Errorf("failed to probe video: %w", err)
	}

	frames, err := extractor.ExtractKeyFrames(ctx, videoPath, outputDir, p.frameCount)
	if err != nil {
		return nil, fmt.Errorf("failed to extract frames: %w", err)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frames extracted from '%s'", videoPath)
	}

	p.logger.Info("extracted key frames", "count", len(frames))

	captions := p.captionFrames(ctx, frames)

	results := make([]models.CaptionResult, len(frames))
	for i, frame := range frames {
		results[i] = models.CaptionResult{
			Frame:     filepath.Base(frame.Path),
			Timestamp: frame.Timestamp,
			Content:   captions[i],
		}
		if err := p.store.AddResult(ctx, results[i]); err != nil {
			p.logger.Warn("failed to store caption result", "frame", results[i].Frame, "error", err)
		}
	}
	if err := p.store.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush caption results: %w", err)
	}

	composite, err := prompt.Compose(captions)
	if err != nil {
		return nil, fmt.Errorf("failed to compose prompt: %w", err)
	}

	attribution := fingerprint.Guess(frames, composite)

	report := &Report{
		ID:              uuid.NewString(),
		VideoPath:       videoPath,
		Info:            info,
		Captions:        results,
		CompositePrompt: composite,
		Attribution:     attribution,
	}

	p.logger.Info("analysis complete",
		"report", report.ID,
		"model", attribution.Model,
		"confidence", attribution.Confidence)

	return report, nil
}

// captionFrames runs the captioner over all frames with a worker pool.
// Results keep frame order no matter which worker finishes first, and a
// captioning failure leaves the placeholder caption in that slot.
func (p *Processor) captionFrames(ctx context.Context, frames []models.Frame) []string {
	captions := make([]string, len(frames))

	workChan := make(chan models.WorkItem, len(frames))

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for work := range workChan {
				frame := frames[work.Index]
				content, err := p.captioner.Caption(ctx, frame.Path)
				if err != nil {
					var capErr *captioner.CaptionError
					if errors.As(err, &capErr) {
						p.logger.Warn("frame captioning failed",
							"frame", work.Index+1, "total", work.Total, "error", err)
					} else {
						p.logger.Error("captioner returned unexpected error",
							"frame", work.Index+1, "total", work.Total, "error", err)
					}
					captions[work.Index] = placeholderCaption
					continue
				}
				captions[work.Index] = strings.TrimSpace(content)
			}
		}()
	}

	for i := range frames {
		workChan <- models.WorkItem{Index: i, Total: len(frames)}
	}
	close(workChan)

	wg.Wait()

	return captions
}

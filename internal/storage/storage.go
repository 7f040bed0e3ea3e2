// Package storage persists per-frame caption results for the hosting
// shell. The analysis core itself keeps nothing; only the intermediate
// captions are written so a long captioning run is not lost with the
// process.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/vidprompt/vidprompt/internal/models"
)

const batchSize = 10 // Number of results to batch write

// Store defines the interface for persisting caption results
type Store interface {
	// AddResult adds a single caption result
	AddResult(ctx context.Context, result models.CaptionResult) error

	// Flush ensures all pending results are saved
	Flush() error
}

// fileStore appends caption results to a JSON file, batching writes.
type fileStore struct {
	results   []models.CaptionResult
	mu        sync.Mutex
	outputDir string
	videoName string
}

// NewFileStore creates a JSON file store under outputDir/<video name>/
func NewFileStore(outputDir, videoName string) *fileStore {
	return &fileStore{
		results:   []models.CaptionResult{},
		outputDir: outputDir,
		videoName: videoName,
	}
}

// AddResult adds a result to the batch and flushes if the batch is full
func (s *fileStore) AddResult(ctx context.Context, result models.CaptionResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results = append(s.results, result)

	if len(s.results) >= batchSize {
		return s.flush()
	}
	return nil
}

// Flush writes all pending results to disk
func (s *fileStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.flush()
}

func (s *fileStore) flush() error {
	if len(s.results) == 0 {
		return nil
	}

	resultsFilePath := filepath.Join(s.outputDir, s.videoName, "captions.json")

	var existingResults []models.CaptionResult
	if data, err := os.ReadFile(resultsFilePath); err == nil {
		if err := json.Unmarshal(data, &existingResults); err != nil {
			return fmt.Errorf("failed to unmarshal existing results: %v", err)
		}
	}

	allResults := append(existingResults, s.results...)

	if err := os.MkdirAll(filepath.Dir(resultsFilePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory for results: %v", err)
	}

	file, err := os.Create(resultsFilePath)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := json.NewEncoder(file).Encode(allResults); err != nil {
		return err
	}

	s.results = nil // Clear the batch
	return nil
}

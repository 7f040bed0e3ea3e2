package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/vidprompt/vidprompt/internal/models"
)

func TestFileStoreFlushAndAppend(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	store := NewFileStore(dir, "clip")
	results := []models.CaptionResult{
		{Frame: "frame_0001.jpg", Timestamp: 0, Content: "a cat, realistic"},
		{Frame: "frame_0002.jpg", Timestamp: 2.5, Content: "a cat, photo"},
	}
	for _, r := range results {
		if err := store.AddResult(ctx, r); err != nil {
			t.Fatalf("AddResult: %v", err)
		}
	}
	if err := store.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	path := filepath.Join(dir, "clip", "captions.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("results file missing: %v", err)
	}

	var saved []models.CaptionResult
	if err := json.Unmarshal(data, &saved); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(saved) != 2 {
		t.Fatalf("expected 2 saved results, got %d", len(saved))
	}
	if saved[1].Content != "a cat, photo" || saved[1].Timestamp != 2.5 {
		t.Fatalf("unexpected saved result: %+v", saved[1])
	}

	// A second flush cycle must append, not overwrite.
	if err := store.AddResult(ctx, models.CaptionResult{Frame: "frame_0003.jpg", Timestamp: 5, Content: "a cat, sleeping"}); err != nil {
		t.Fatalf("AddResult: %v", err)
	}
	if err := store.Flush(); err != nil {
		t.Fatalf("second Flush: %v", err)
	}

	data, err = os.ReadFile(path)
	if err != nil {
		t.Fatalf("read after second flush: %v", err)
	}
	saved = nil
	if err := json.Unmarshal(data, &saved); err != nil {
		t.Fatalf("unmarshal after second flush: %v", err)
	}
	if len(saved) != 3 {
		t.Fatalf("expected 3 saved results after append, got %d", len(saved))
	}
}

func TestFileStoreFlushEmptyIsNoop(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir, "clip")

	if err := store.Flush(); err != nil {
		t.Fatalf("Flush on empty store: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "clip", "captions.json")); !os.IsNotExist(err) {
		t.Fatal("empty flush must not create a results file")
	}
}

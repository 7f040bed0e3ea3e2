// Package extractor samples representative frames from a video with ffmpeg
// and exposes read-only metadata via ffprobe.
package extractor

import (
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/vidprompt/vidprompt/internal/models"
)

// ExtractKeyFrames decodes count evenly spaced frames from the video,
// always including the first and last frame, and returns them as RGB pixel
// grids with their source timestamps. Frame images are written under
// outputDir/<video name>/ so the captioner can read them back as files.
func ExtractKeyFrames(ctx context.Context, videoPath, outputDir string, count int) ([]models.Frame, error) {
	if _, err := os.Stat(videoPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("video file does not exist at path: '%s'", videoPath)
	}
	if count <= 0 {
		count = 1
	}

	info, err := ProbeVideo(ctx, videoPath)
	if err != nil {
		return nil, err
	}
	if info.FrameCount > 0 && count > info.FrameCount {
		count = info.FrameCount
	}

	videoName := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))
	frameDirPath := filepath.Join(outputDir, videoName)
	if err := os.MkdirAll(frameDirPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create frame directory '%s': %v", frameDirPath, err)
	}

	timestamps := sampleTimestamps(info.Duration, count)

	frames := make([]models.Frame, 0, len(timestamps))
	for i, ts := range timestamps {
		framePath := filepath.Join(frameDirPath, fmt.Sprintf("frame_%04d.jpg", i+1))

		ffmpegCommand := exec.CommandContext(
			ctx,
			"ffmpeg",
			"-y",
			"-ss", fmt.Sprintf("%.3f", ts),
			"-i", videoPath,
			"-frames:v", "1",
			"-q:v", "2",
			framePath,
		)
		output, err := ffmpegCommand.CombinedOutput()
		if err != nil {
			return nil, fmt.Errorf("ffmpeg failed at %.2fs: %v\nOutput: %s", ts, err, string(output))
		}

		frame, err := LoadFrame(framePath, ts)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}

	return frames, nil
}

// sampleTimestamps spreads count sample points evenly over the duration,
// pinning the first point to zero and the last just short of the end so the
// seek never lands past the final frame.
func sampleTimestamps(duration float64, count int) []float64 {
	if count <= 1 || duration <= 0 {
		return []float64{0}
	}

	last := duration * 0.99
	timestamps := make([]float64, count)
	for i := 0; i < count; i++ {
		timestamps[i] = float64(i) * last / float64(count-1)
	}
	return timestamps
}

// LoadFrame decodes a frame image file into its raw RGB pixel grid.
func LoadFrame(framePath string, timestamp float64) (models.Frame, error) {
	f, err := os.Open(framePath)
	if err != nil {
		return models.Frame{}, fmt.Errorf("failed to open frame '%s': %v", framePath, err)
	}
	defer f.Close()

	img, err := jpeg.Decode(f)
	if err != nil {
		return models.Frame{}, fmt.Errorf("failed to decode frame '%s': %v", framePath, err)
	}

	return frameFromImage(img, framePath, timestamp), nil
}

func frameFromImage(img image.Image, framePath string, timestamp float64) models.Frame {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	pix := make([]uint8, 0, width*height*3)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pix = append(pix, uint8(r>>8), uint8(g>>8), uint8(b>>8))
		}
	}

	return models.Frame{
		Path:      framePath,
		Width:     width,
		Height:    height,
		Pix:       pix,
		Timestamp: timestamp,
	}
}

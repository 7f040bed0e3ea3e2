package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// VideoInfo contains read-only metadata about a video file
type VideoInfo struct {
	FilePath   string
	Width      int
	Height     int
	FPS        float64
	FrameCount int
	Duration   float64
	VideoCodec string
	HasAudio   bool
	AudioCodec string
}

// ProbeVideo extracts metadata from a video file via ffprobe
func ProbeVideo(ctx context.Context, filePath string) (*VideoInfo, error) {
	if filePath == "" {
		return nil, fmt.Errorf("file path is required")
	}

	cmd := exec.CommandContext(
		ctx,
		"ffprobe",
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		filePath,
	)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %v\nOutput: %s", err, string(output))
	}

	var probe probeResult
	if err := json.Unmarshal(output, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %v", err)
	}

	info := &VideoInfo{FilePath: filePath}

	if dur, err := strconv.ParseFloat(probe.Format.Duration, 64); err == nil {
		info.Duration = dur
	}

	for _, stream := range probe.Streams {
		switch stream.CodecType {
		case "video":
			info.Width = stream.Width
			info.Height = stream.Height
			info.VideoCodec = stream.CodecName
			info.FPS = parseFrameRate(stream.RFrameRate)
			if n, err := strconv.Atoi(stream.NbFrames); err == nil {
				info.FrameCount = n
			}
		case "audio":
			info.HasAudio = true
			info.AudioCodec = stream.CodecName
		}
	}

	// Some containers omit nb_frames; derive it from duration and fps.
	if info.FrameCount == 0 && info.FPS > 0 {
		info.FrameCount = int(info.Duration * info.FPS)
	}

	return info, nil
}

// parseFrameRate converts ffprobe's rational frame rate (e.g. "30000/1001")
// to frames per second.
func parseFrameRate(rate string) float64 {
	parts := strings.SplitN(rate, "/", 2)
	if len(parts) != 2 {
		if v, err := strconv.ParseFloat(rate, 64); err == nil {
			return v
		}
		return 0
	}

	num, err1 := strconv.ParseFloat(parts[0], 64)
	den, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0
	}
	return num / den
}

// probeResult matches ffprobe JSON output structure
type probeResult struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecType  string `json:"codec_type"`
		CodecName  string `json:"codec_name"`
		Width      int    `json:"width"`
		Height     int    `json:"height"`
		RFrameRate string `json:"r_frame_rate"`
		NbFrames   string `json:"nb_frames"`
	} `json:"streams"`
}

package features

import "github.com/vidprompt/vidprompt/internal/models"

// AnalyzeVisual derives feature scores from raw frame pixels: a resolution
// tier from the first frame, inter-frame pixel drift as a consistency proxy
// (lower drift means a steadier, more coherent render), and mean per-channel
// color variance as a richness proxy. All thresholds are fixed empirical
// constants. An empty frame slice yields an empty table; the consistency
// score needs at least two frames.
func AnalyzeVisual(frames []models.Frame) Score {
	scores := make(Score)
	if len(frames) == 0 {
		return scores
	}

	scores[HighResolution] = resolutionTier(frames[0])

	if len(frames) > 1 {
		scores[Consistency] = consistencyTier(frames)
	}

	scores[ColorRichness] = colorRichnessTier(frames)

	return scores
}

func resolutionTier(frame models.Frame) float64 {
	switch {
	case frame.Width >= 1920 || frame.Height >= 1080:
		return 0.8
	case frame.Width >= 1280 || frame.Height >= 720:
		return 0.6
	default:
		return 0.4
	}
}

func consistencyTier(frames []models.Frame) float64 {
	var total float64
	pairs := 0

	for i := 0; i < len(frames)-1; i++ {
		a, b := frames[i].Pix, frames[i+1].Pix
		n := len(a)
		if len(b) < n {
			n = len(b)
		}
		if n == 0 {
			continue
		}

		var diff float64
		for j := 0; j < n; j++ {
			d := float64(a[j]) - float64(b[j])
			if d < 0 {
				d = -d
			}
			diff += d
		}
		total += diff / float64(n)
		pairs++
	}

	if pairs == 0 {
		return 0.5
	}

	switch avg := total / float64(pairs); {
	case avg < 20:
		return 0.9
	case avg < 40:
		return 0.7
	default:
		return 0.5
	}
}

func colorRichnessTier(frames []models.Frame) float64 {
	var total float64
	counted := 0

	for _, frame := range frames {
		pixels := len(frame.Pix) / 3
		if pixels == 0 {
			continue
		}

		// Per-channel variance, averaged over the three channels.
		var channelSum float64
		for c := 0; c < 3; c++ {
			var sum, sumSq float64
			for i := c; i < pixels*3; i += 3 {
				v := float64(frame.Pix[i])
				sum += v
				sumSq += v * v
			}
			mean := sum / float64(pixels)
			channelSum += sumSq/float64(pixels) - mean*mean
		}
		total += channelSum / 3
		counted++
	}

	if counted == 0 {
		return 0.4
	}

	switch variance := total / float64(counted); {
	case variance > 2000:
		return 0.8
	case variance > 1000:
		return 0.6
	default:
		return 0.4
	}
}

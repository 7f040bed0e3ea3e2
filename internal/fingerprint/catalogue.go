// Package fingerprint matches observed video and prompt features against a
// fixed catalogue of generator profiles to name the most likely source
// model. The match is a best-effort heuristic score, not a certified
// detection.
package fingerprint

import "github.com/vidprompt/vidprompt/internal/features"

// FeatureWeight is one expected feature of a generator profile together
// with its importance weight in (0, 1].
type FeatureWeight struct {
	Name   string
	Weight float64
}

// Profile describes one generator's expected feature signature and the
// prompt keywords that hint at it.
type Profile struct {
	Name        string
	Description string
	Features    []FeatureWeight
	Keywords    []string
}

// catalogue holds the known generator fingerprints in definition order.
// Order matters: equal scores resolve to the earliest entry, and that
// tie-break must stay stable across runs. The table is read-only after
// process start, so unsynchronized concurrent reads are safe.
var catalogue = []Profile{
	{
		Name:        "Sora",
		Description: "OpenAI的视频生成模型",
		Features: []FeatureWeight{
			{features.Realism, 0.9},
			{"复杂运动", 0.9},
			{"长时间连贯性", 0.85},
			{"物理准确性", 0.8},
			{features.HighResolution, 0.8},
		},
		Keywords: []string{"photorealistic", "realistic", "cinematic", "detailed", "4k", "8k"},
	},
	{
		Name:        "Runway Gen-2",
		Description: "Runway的视频生成模型",
		Features: []FeatureWeight{
			{features.ArtStyle, 0.8},
			{"创意转场", 0.7},
			{"风格多样性", 0.85},
			{"长时间连贯性", 0.6},
			{"分辨率", 0.7},
		},
		Keywords: []string{"stylized", "artistic", "creative", "transition", "animation"},
	},
	{
		Name:        "Pika Labs",
		Description: "Pika Labs的视频生成模型",
		Features: []FeatureWeight{
			{features.Animation, 0.8},
			{"卡通效果", 0.75},
			{"创意表现", 0.8},
			{"短视频", 0.7},
			{features.Consistency, 0.75},
		},
		Keywords: []string{"animation", "cartoon", "stylized", "creative", "character"},
	},
	{
		Name:        "AnimateDiff",
		Description: "基于Stable Diffusion的动画生成模型",
		Features: []FeatureWeight{
			{features.Animation, 0.9},
			{"二次元", 0.85},
			{"角色动画", 0.8},
			{"短循环", 0.9},
			{features.Consistency, 0.7},
		},
		Keywords: []string{"anime", "animation", "character", "loop", "2d", "cartoon"},
	},
	{
		Name:        "Stable Video Diffusion",
		Description: "Stability AI的视频扩散模型",
		Features: []FeatureWeight{
			{"图像到视频", 0.9},
			{"短视频", 0.8},
			{features.Consistency, 0.75},
			{"有限运动", 0.7},
			{"分辨率", 0.65},
		},
		Keywords: []string{"short", "consistent", "image-to-video", "diffusion"},
	},
}

// Catalogue returns the generator profiles in definition order.
func Catalogue() []Profile {
	return catalogue
}

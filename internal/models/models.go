package models

// Frame is one decoded key frame of the analyzed video. Pix holds the raw
// RGB pixel data row by row, three bytes per pixel.
type Frame struct {
	Path      string
	Width     int
	Height    int
	Pix       []uint8
	Timestamp float64
}

// RGB returns the pixel at (x, y). The caller must stay in bounds.
func (f *Frame) RGB(x, y int) (r, g, b uint8) {
	i := (y*f.Width + x) * 3
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// WorkItem represents a frame queued for captioning
type WorkItem struct {
	Index int
	Total int
}

// CaptionResult represents the caption produced for a single frame
type CaptionResult struct {
	Frame     string  `json:"frame"`
	Timestamp float64 `json:"timestamp"`
	Content   string  `json:"content"`
}

// CaptionSearchResult is one hit from a caption similarity search
type CaptionSearchResult struct {
	FrameNumber int
	FramePath   string
	Description string
	Similarity  float64
}

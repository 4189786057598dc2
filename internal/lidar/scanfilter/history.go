package scanfilter

// frameHistory keeps copies of the last depth frames in a ring. While the
// ring is filling, frames are appended; once full, each push overwrites the
// oldest slot and advances the oldest index.
type frameHistory struct {
	frames [][]float64
	depth  int
	oldest int // slot holding the oldest frame
}

func newFrameHistory(depth int) *frameHistory {
	return &frameHistory{
		frames: make([][]float64, 0, depth),
		depth:  depth,
	}
}

// Len returns the number of frames held.
func (h *frameHistory) Len() int { return len(h.frames) }

// Full reports whether the ring holds depth frames.
func (h *frameHistory) Full() bool { return len(h.frames) == h.depth }

// Oldest returns the oldest stored frame, or nil when empty. The slice is
// owned by the ring and is overwritten by the next Push once full.
func (h *frameHistory) Oldest() []float64 {
	if len(h.frames) == 0 {
		return nil
	}
	return h.frames[h.oldest]
}

// Push stores a copy of frame.
func (h *frameHistory) Push(frame []float64) {
	if len(h.frames) < h.depth {
		h.frames = append(h.frames, append([]float64(nil), frame...))
		return
	}
	copy(h.frames[h.oldest], frame)
	h.oldest = (h.oldest + 1) % h.depth
}

// Clear drops every frame.
func (h *frameHistory) Clear() {
	h.frames = h.frames[:0]
	h.oldest = 0
}

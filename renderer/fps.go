package renderer

import "time"

// fpsCounter accumulates frame counts and reports once per second.
type fpsCounter struct {
	frames int
	last   time.Time
}

func newFPSCounter(now time.Time) *fpsCounter {
	return &fpsCounter{last: now}
}

// Tick records one frame. When at least a second has passed since the last
// report it returns the frame count since then and true.
func (f *fpsCounter) Tick(now time.Time) (int, bool) {
	f.frames++
	if now.Sub(f.last) < time.Second {
		return 0, false
	}
	n := f.frames
	f.frames = 0
	f.last = now
	return n, true
}

package runner

import "github.com/vovakirdan/florian-runner/internal/core"

// DefaultMaxDelta caps a single frame at roughly one 30fps frame.
const DefaultMaxDelta = 34.0

// ClampDelta returns now-prev limited to [0, maxDelta]. A stalled tab or a
// backwards clock must never turn into a huge or negative physics step.
func ClampDelta(prev, now, maxDelta float64) float64 {
	return core.ClampF(now-prev, 0, maxDelta)
}

// Clock converts a stream of frame timestamps (milliseconds) into clamped
// per-frame deltas.
type Clock struct {
	last     float64
	maxDelta float64
}

// NewClock creates a clock whose first delta is measured from start.
func NewClock(start, maxDelta float64) *Clock {
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	return &Clock{last: start, maxDelta: maxDelta}
}

// Tick records now as the latest frame and returns the clamped delta since
// the previous one.
func (c *Clock) Tick(now float64) float64 {
	dt := ClampDelta(c.last, now, c.maxDelta)
	c.last = now
	return dt
}

// Last returns the timestamp of the most recent frame.
func (c *Clock) Last() float64 {
	return c.last
}

package runner

// Cloud is a decorative background puff. It has no collision.
type Cloud struct {
	X, Y float64
}

// drift moves the cloud left and wraps it past the right edge once it has
// left the surface.
func (c *Cloud) drift(dx, wrapX, surfaceW, jitter float64, rng Rand) {
	c.X -= dx
	if c.X < wrapX {
		c.X = surfaceW + rng.Float64()*jitter
	}
}

package runner

import (
	"github.com/vovakirdan/florian-runner/internal/config"
	"github.com/vovakirdan/florian-runner/internal/core"
)

// Player is the runner's body. X never changes; only Y and VY evolve.
type Player struct {
	X, Y          float64
	Width, Height float64
	VY            float64
	OnGround      bool
}

// NewPlayer creates a player standing on the ground line.
func NewPlayer(cfg config.PlayerConfig, groundY float64) Player {
	p := Player{
		X:      cfg.X,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
	p.Land(groundY)
	return p
}

// Land puts the player on the ground with zero velocity.
func (p *Player) Land(groundY float64) {
	p.Y = groundY - p.Height
	p.VY = 0
	p.OnGround = true
}

// Step applies one tick of gravity. The ground is a hard floor.
func (p *Player) Step(gravity, groundY float64) {
	p.VY += gravity
	p.Y += p.VY
	if p.Y >= groundY-p.Height {
		p.Land(groundY)
	}
}

// Jump launches the player if it is standing on the ground and reports
// whether it did. There is no double jump.
func (p *Player) Jump(impulse float64) bool {
	if !p.OnGround {
		return false
	}
	p.VY = impulse
	p.OnGround = false
	return true
}

// Rect returns the player's bounding box.
func (p Player) Rect() core.RectF {
	return core.RectF{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

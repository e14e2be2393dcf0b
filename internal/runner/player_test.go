package runner

import (
	"testing"

	"github.com/vovakirdan/florian-runner/internal/config"
)

const testGroundY = 160.0

func newTestPlayer() Player {
	return NewPlayer(config.DefaultRunnerConfig().Player, testGroundY)
}

func TestNewPlayerStandsOnGround(t *testing.T) {
	p := newTestPlayer()

	if !p.OnGround {
		t.Error("new player should be on the ground")
	}
	if p.Y+p.Height != testGroundY {
		t.Errorf("player bottom = %v, expected %v", p.Y+p.Height, testGroundY)
	}
	if p.VY != 0 {
		t.Errorf("VY = %v, expected 0", p.VY)
	}
}

func TestPlayerStepOnGroundStaysPut(t *testing.T) {
	p := newTestPlayer()
	for i := 0; i < 10; i++ {
		p.Step(0.5, testGroundY)
	}

	if p.Y != 128 || p.VY != 0 || !p.OnGround {
		t.Errorf("grounded player drifted: %+v", p)
	}
}

func TestPlayerJump(t *testing.T) {
	p := newTestPlayer()

	if !p.Jump(-9.5) {
		t.Fatal("Jump() from the ground should succeed")
	}
	if p.VY != -9.5 {
		t.Errorf("VY = %v, expected -9.5", p.VY)
	}
	if p.OnGround {
		t.Error("player should be airborne after jumping")
	}
}

func TestPlayerJumpWhileAirborneIsNoop(t *testing.T) {
	p := newTestPlayer()
	p.Jump(-9.5)
	p.Step(0.5, testGroundY)

	before := p
	if p.Jump(-9.5) {
		t.Error("Jump() while airborne should report false")
	}
	if p != before {
		t.Errorf("Jump() while airborne changed state: before %+v, after %+v", before, p)
	}
}

func TestJumpArcIsParabolic(t *testing.T) {
	const gravity = 0.5
	p := newTestPlayer()
	p.Jump(-9.5)

	prevVY := p.VY
	prevY := p.Y
	apex := p.Y
	steps := 0

	for !p.OnGround {
		steps++
		if steps > 1000 {
			t.Fatal("player never landed")
		}
		p.Step(gravity, testGroundY)

		if p.Y+p.Height > testGroundY {
			t.Fatalf("step %d: player penetrated ground, bottom = %v", steps, p.Y+p.Height)
		}
		if p.OnGround {
			break
		}
		if p.VY-prevVY != gravity {
			t.Fatalf("step %d: velocity changed by %v, expected constant %v", steps, p.VY-prevVY, gravity)
		}
		// Position moves by the updated velocity each tick
		if p.Y-prevY != p.VY {
			t.Fatalf("step %d: y moved by %v, expected %v", steps, p.Y-prevY, p.VY)
		}
		prevVY, prevY = p.VY, p.Y
		apex = min(apex, p.Y)
	}

	if apex >= 128 {
		t.Errorf("player never rose, apex = %v", apex)
	}
	if p.Y != 128 || p.VY != 0 {
		t.Errorf("landing should reset to ground: %+v", p)
	}
	if steps < 30 {
		t.Errorf("jump lasted only %d ticks, expected a full arc", steps)
	}
}

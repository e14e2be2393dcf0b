package runner

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/florian-runner/internal/core"
)

type worldSnapshot struct {
	player    Player
	obstacles []Obstacle
	clouds    []Cloud
	score     float64
	elapsed   float64
	interval  float64
	state     State
}

func snapshot(w *World) worldSnapshot {
	return worldSnapshot{
		player:    w.Player(),
		obstacles: w.Obstacles(),
		clouds:    w.Clouds(),
		score:     w.score,
		elapsed:   w.elapsed,
		interval:  w.SpawnInterval(),
		state:     w.state,
	}
}

func TestRenderDoesNotMutateWorld(t *testing.T) {
	w := newTestWorld()
	w.obstacles = append(w.obstacles, Obstacle{X: 400, Y: 140, Width: 30, Height: 20})
	for i := 0; i < 20; i++ {
		w.Step(16)
	}
	before := snapshot(w)

	Render(w, core.NewScreen(80, 24), ThemeFor(false))
	Render(w, core.NewScreen(80, 24), ThemeFor(true))

	if after := snapshot(w); !reflect.DeepEqual(before, after) {
		t.Errorf("Render mutated the world:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestRenderLayout(t *testing.T) {
	w := newTestWorld()
	dst := core.NewScreen(80, 24)

	Render(w, dst, ThemeFor(false))

	if row := dst.Row(0); !strings.HasPrefix(row, " Score: 0") {
		t.Errorf("score should be top-left, row 0 = %q", row)
	}
	if row := dst.Row(0); !strings.HasSuffix(row, ControlHint+" ") {
		t.Errorf("control hint should be top-right, row 0 = %q", row)
	}
	if row := dst.Row(20); row != strings.Repeat(string(GroundChar), 80) {
		t.Errorf("ground row = %q", row)
	}
	if !strings.ContainsRune(dst.Row(21), GroundDashChar) {
		t.Errorf("dashed ground missing, row 21 = %q", dst.Row(21))
	}
	if !strings.Contains(dst.Row(14), PlayerLabel) {
		t.Errorf("player label should sit above the player, row 14 = %q", dst.Row(14))
	}
	if got := dst.Get(8, 15); got != HeadChar {
		t.Errorf("head cell = %q, expected %q", got, HeadChar)
	}
	if !strings.ContainsRune(dst.String(), CloudChar) {
		t.Error("clouds missing")
	}
}

func TestRenderGameOver(t *testing.T) {
	w := newTestWorld()
	blockPlayer(w)
	w.Step(16)

	dst := core.NewScreen(80, 24)
	Render(w, dst, ThemeFor(false))
	out := dst.String()

	if !strings.Contains(out, GameOverTitle) {
		t.Error("game over title missing")
	}
	if !strings.Contains(out, RestartHint) {
		t.Error("restart instructions missing")
	}
	if strings.Contains(out, ControlHint) {
		t.Error("control hint should be replaced by the game over box")
	}
}

func TestRenderClearsPreviousFrame(t *testing.T) {
	w := newTestWorld()
	dst := core.NewScreen(80, 24)
	dst.Set(79, 10, 'X')

	Render(w, dst, ThemeFor(false))

	if got := dst.Get(79, 10); got == 'X' {
		t.Error("stale cell survived the redraw")
	}
}

func TestRenderMonitorColours(t *testing.T) {
	w := newTestWorld()
	w.obstacles = append(w.obstacles, Obstacle{X: 400, Y: 140, Width: 30, Height: 20})

	for _, dark := range []bool{false, true} {
		th := ThemeFor(dark)
		dst := core.NewScreen(80, 24)
		Render(w, dst, th)

		frame := dst.GetCell(50, 16)
		if frame.Rune != MonitorChar || frame.Color != th.Monitor {
			t.Errorf("dark=%v: monitor frame cell = %+v", dark, frame)
		}
		screen := dst.GetCell(51, 17)
		if screen.Rune != ScreenChar || screen.Color != th.MonitorScreen {
			t.Errorf("dark=%v: monitor screen cell = %+v", dark, screen)
		}
	}

	if ThemeFor(true).Text == ThemeFor(false).Text {
		t.Error("light and dark themes should differ in text colour")
	}
}

func TestRenderSmallSurfaces(t *testing.T) {
	w := newTestWorld()
	w.obstacles = append(w.obstacles, Obstacle{X: 100, Y: 140, Width: 30, Height: 20})

	sizes := []struct{ w, h int }{{0, 0}, {1, 1}, {10, 3}, {20, 6}, {200, 60}}
	for _, s := range sizes {
		Render(w, core.NewScreen(s.w, s.h), ThemeFor(true))
	}

	blockPlayer(w)
	w.Step(16)
	for _, s := range sizes {
		Render(w, core.NewScreen(s.w, s.h), ThemeFor(false))
	}
}

func TestRenderTruncatesHint(t *testing.T) {
	w := newTestWorld()
	dst := core.NewScreen(24, 8)

	Render(w, dst, ThemeFor(false))

	row := dst.Row(0)
	if !strings.Contains(row, "Score: 0") {
		t.Errorf("score missing on narrow screen: %q", row)
	}
	if strings.Contains(row, ControlHint) {
		t.Errorf("hint should be truncated on narrow screen: %q", row)
	}
}

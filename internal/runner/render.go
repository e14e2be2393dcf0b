package runner

import (
	"fmt"
	"math"

	"github.com/muesli/reflow/truncate"

	"github.com/vovakirdan/florian-runner/internal/core"
)

// Visual characters for rendering
const (
	GroundChar     = '━'
	GroundDashChar = '╌'
	CloudChar      = '░'
	MonitorChar    = '█'
	ScreenChar     = '▒'
	StandChar      = '┴'
	StandBaseChar  = '─'
	BodyChar       = '█'
	HeadChar       = '●'
	LegChar1       = '╱'
	LegChar2       = '╲'
)

// HUD texts
const (
	PlayerLabel   = "Florian"
	ControlHint   = "SPACE/↑ or click: jump"
	GameOverTitle = "GAME OVER"
	RestartHint   = "click, tap or SPACE: restart"
)

// viewport maps logical surface units onto screen cells.
type viewport struct {
	sx, sy float64
}

func (v viewport) rect(r core.RectF) core.Rect {
	return r.Scale(v.sx, v.sy)
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.sx))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// Render redraws the whole frame from the world. It only reads the world.
func Render(w *World, dst *core.Screen, th Theme) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	surface := w.cfg.Surface
	v := viewport{
		sx: float64(dst.Width()) / surface.Width,
		sy: float64(dst.Height()) / surface.Height,
	}

	drawBackground(w, dst, v, th)
	for _, o := range w.obstacles {
		drawMonitor(dst, v.rect(o.Rect()), th)
	}
	drawPlayer(w, dst, v, th)
	drawHUD(w, dst, th)
}

// groundRow is the first cell row below everything standing on the ground.
func groundRow(w *World, v viewport) int {
	return int(math.Ceil(w.cfg.Surface.GroundY * v.sy))
}

func drawBackground(w *World, dst *core.Screen, v viewport, th Theme) {
	for _, c := range w.clouds {
		r := v.rect(core.RectF{X: c.X - 12, Y: c.Y - 10, W: 52, H: 20})
		dst.DrawRect(r, CloudChar, th.Cloud)
	}

	gy := groundRow(w, v)
	dashOffset := max(1, int(math.Round(12*v.sy)))
	dst.DrawDashedHLine(0, gy+dashOffset, dst.Width(), 2, 2, GroundDashChar, th.GroundDash)
	dst.DrawHLine(0, gy, dst.Width(), GroundChar, th.Ground)
}

// drawMonitor draws an obstacle as a small computer monitor on a stand.
func drawMonitor(dst *core.Screen, r core.Rect, th Theme) {
	if r.H < 2 {
		dst.DrawRect(r, MonitorChar, th.Monitor)
		return
	}

	body := core.NewRect(r.X, r.Y, r.W, r.H-1)
	dst.DrawRect(body, MonitorChar, th.Monitor)
	if r.W >= 3 && body.H >= 2 {
		inner := core.NewRect(body.X+1, body.Y+1, body.W-2, max(1, body.H-2))
		dst.DrawRect(inner, ScreenChar, th.MonitorScreen)
	}

	standY := r.Bottom() - 1
	cx := r.X + r.W/2
	for x := cx - 1; x <= cx+1; x++ {
		if x >= r.X && x < r.Right() {
			dst.SetColor(x, standY, StandBaseChar, th.MonitorStand)
		}
	}
	dst.SetColor(cx, standY, StandChar, th.MonitorStand)
}

// drawPlayer draws the stylized runner with its name above it.
func drawPlayer(w *World, dst *core.Screen, v viewport, th Theme) {
	p := w.player
	r := v.rect(p.Rect())

	if r.H < 3 {
		dst.DrawRect(r, BodyChar, th.Body)
	} else {
		cx := r.X + r.W/2
		dst.SetColor(cx, r.Y, HeadChar, th.Head)

		torso := core.NewRect(r.X, r.Y+1, r.W, r.H-2)
		if r.W >= 3 {
			torso = core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)
		}
		dst.DrawRect(torso, BodyChar, th.Body)

		legY := r.Bottom() - 1
		left, right := r.X, r.Right()-1
		switch {
		case !p.OnGround:
			dst.SetColor(left+1, legY, LegChar2, th.Legs)
			dst.SetColor(right-1, legY, LegChar1, th.Legs)
		case int(w.elapsed/120)%2 == 0:
			dst.SetColor(left, legY, LegChar1, th.Legs)
			dst.SetColor(right, legY, LegChar2, th.Legs)
		default:
			dst.SetColor(left+1, legY, LegChar1, th.Legs)
			dst.SetColor(right-1, legY, LegChar2, th.Legs)
		}
	}

	labelY := r.Y - 1
	if labelY >= 0 {
		labelX := r.X + (r.W-len(PlayerLabel))/2
		dst.DrawText(max(0, labelX), labelY, PlayerLabel, th.Label)
	}
}

func drawHUD(w *World, dst *core.Screen, th Theme) {
	scoreText := fmt.Sprintf("Score: %d", w.Score())
	dst.DrawText(1, 0, scoreText, th.Text)

	if w.state == GameOver {
		drawCenteredMessage(dst, th, GameOverTitle, scoreText, RestartHint)
		return
	}

	// Keep the hint clear of the score readout on narrow terminals.
	room := dst.Width() - len(scoreText) - 4
	if room <= 0 {
		return
	}
	hint := clip(ControlHint, room)
	width := len([]rune(hint))
	dst.DrawText(dst.Width()-width-1, 0, hint, th.Text)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, th Theme, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	inner := 0
	for _, l := range lines {
		inner = max(inner, len([]rune(l)))
	}
	inner = min(inner, max(0, w-4))

	boxW := inner + 4
	boxH := len(lines) + 2
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', th.Text)
	dst.DrawBox(box, th.Text)

	for i, l := range lines {
		l = clip(l, inner)
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawText(x, box.Y+1+i, l, th.Text)
	}
}

// clip shortens s to at most width cells, marking the cut with an ellipsis.
func clip(s string, width int) string {
	if len([]rune(s)) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(max(0, width)), "…")
}

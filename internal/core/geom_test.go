package core

import "testing"

func TestRectContainsSurface(t *testing.T) {
	// An 80x24 terminal with one help row under a 23-row surface.
	surface := NewRect(0, 0, 80, 23)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"origin", 0, 0, true},
		{"last cell", 79, 22, true},
		{"help row", 10, 23, false},
		{"right of surface", 80, 5, false},
		{"negative", -1, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := surface.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	monitor := NewRect(82, 17, 4, 3)

	if monitor.Right() != 86 {
		t.Errorf("Right() = %d, expected 86", monitor.Right())
	}
	if monitor.Bottom() != 20 {
		t.Errorf("Bottom() = %d, expected 20", monitor.Bottom())
	}
}

func TestRectFIntersects(t *testing.T) {
	player := RectF{X: 50, Y: 128, W: 26, H: 32}

	tests := []struct {
		name     string
		other    RectF
		expected bool
	}{
		{"overlapping", RectF{X: 70, Y: 140, W: 26, H: 20}, true},
		{"touching right edge", RectF{X: 76, Y: 128, W: 26, H: 32}, false},
		{"touching left edge", RectF{X: 24, Y: 128, W: 26, H: 32}, false},
		{"above", RectF{X: 50, Y: 90, W: 26, H: 38}, false},
		{"fractional overlap", RectF{X: 75.5, Y: 159.5, W: 1, H: 1}, true},
		{"far away", RectF{X: 600, Y: 140, W: 26, H: 20}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := player.Intersects(tc.other); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.other.Intersects(player); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectFScale(t *testing.T) {
	tests := []struct {
		name   string
		r      RectF
		sx, sy float64
		want   Rect
	}{
		{"identity", RectF{X: 2, Y: 3, W: 4, H: 5}, 1, 1, NewRect(2, 3, 4, 5)},
		{"eighth", RectF{X: 50, Y: 128, W: 26, H: 32}, 0.125, 0.12, NewRect(6, 15, 4, 5)},
		{"tiny keeps one cell", RectF{X: 10, Y: 10, W: 0.1, H: 0.1}, 0.01, 0.01, NewRect(0, 0, 1, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Scale(tc.sx, tc.sy); got != tc.want {
				t.Errorf("Scale() = %+v, expected %+v", got, tc.want)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

package core

import "testing"

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestMinMax(t *testing.T) {
	if Min(5, 10) != 5 {
		t.Error("Min(5, 10) should be 5")
	}
	if Min(10, 5) != 5 {
		t.Error("Min(10, 5) should be 5")
	}
	if Max(5, 10) != 10 {
		t.Error("Max(5, 10) should be 10")
	}
	if Max(10, 5) != 10 {
		t.Error("Max(10, 5) should be 10")
	}
}

func TestRectScaled(t *testing.T) {
	r := NewRect(100, 200, 150, 120)
	scaled := r.Scaled(0.9)

	if scaled.W != 135 || scaled.H != 108 {
		t.Errorf("Scaled(0.9) size = %dx%d, expected 135x108", scaled.W, scaled.H)
	}

	// Scaled rect stays centered in the original
	cx, cy := r.Center()
	sx, sy := scaled.Center()
	if cx-sx > 1 || sx-cx > 1 {
		t.Errorf("Scaled center x drifted: %d vs %d", sx, cx)
	}
	if cy-sy > 1 || sy-cy > 1 {
		t.Errorf("Scaled center y drifted: %d vs %d", sy, cy)
	}

	same := r.Scaled(1.0)
	if same != r {
		t.Errorf("Scaled(1.0) = %+v, expected %+v", same, r)
	}
}

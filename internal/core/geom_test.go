package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		name                    string
		val, min, max, expected float64
	}{
		{"camera inside range", 330, 0, 1280, 330},
		{"camera before start", -270, 0, 1280, 0},
		{"camera past end", 1600, 0, 1280, 1280},
		{"inverted range resolves to min", 5, 0, -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
				t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.min, tc.max, got, tc.expected)
			}
		})
	}
}

func TestMinMax(t *testing.T) {
	tests := []struct {
		a, b, lo, hi int
	}{
		{5, 10, 5, 10},
		{10, 5, 5, 10},
		{-3, -3, -3, -3},
	}

	for _, tc := range tests {
		if got := Min(tc.a, tc.b); got != tc.lo {
			t.Errorf("Min(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.lo)
		}
		if got := Max(tc.a, tc.b); got != tc.hi {
			t.Errorf("Max(%d, %d) = %d, expected %d", tc.a, tc.b, got, tc.hi)
		}
	}
}

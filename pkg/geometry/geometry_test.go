package geometry

import (
	"math"
	"testing"
)

func TestPointRotate(t *testing.T) {
	tests := []struct {
		name string
		p    Point
		deg  float64
		want Point
	}{
		{"zero", Point{X: 3, Y: 4}, 0, Point{X: 3, Y: 4}},
		{"quarter turn", Point{X: 1, Y: 0}, 90, Point{X: 0, Y: 1}},
		{"half turn", Point{X: 2, Y: -3}, 180, Point{X: -2, Y: 3}},
		{"clockwise quarter", Point{X: -50, Y: 0}, -90, Point{X: 0, Y: 50}},
		{"full turn", Point{X: 7, Y: 9}, 360, Point{X: 7, Y: 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Rotate(tt.deg)
			if got != tt.want {
				t.Errorf("Rotate(%v) = %v, want %v", tt.deg, got, tt.want)
			}
		})
	}
}

func TestPointRotateArbitrary(t *testing.T) {
	got := Point{X: 1, Y: 0}.Rotate(45)
	want := math.Sqrt2 / 2
	if math.Abs(got.X-want) > 1e-12 || math.Abs(got.Y-want) > 1e-12 {
		t.Errorf("Rotate(45) = %v, want (%v, %v)", got, want, want)
	}
}

func TestRectExpand(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	tests := []struct {
		name string
		p    Point
		want Rect
	}{
		{"inside", Point{X: 5, Y: 5}, NewRect(0, 0, 10, 10)},
		{"left", Point{X: -3, Y: 5}, NewRect(-3, 0, 10, 10)},
		{"above right", Point{X: 12, Y: 15}, NewRect(0, 0, 12, 15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Expand(tt.p); got != tt.want {
				t.Errorf("Expand(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestRectHelpers(t *testing.T) {
	r := NewRect(-10, -20, 30, 20)

	if got := r.Width(); got != 40 {
		t.Errorf("Width() = %v, want 40", got)
	}
	if got := r.Height(); got != 40 {
		t.Errorf("Height() = %v, want 40", got)
	}
	if got := r.Center(); got != (Point{X: 10, Y: 0}) {
		t.Errorf("Center() = %v, want (10, 0)", got)
	}
	if !r.Contains(Point{X: 30, Y: 20}) {
		t.Error("Contains should include the boundary")
	}
	if r.Contains(Point{X: 31, Y: 0}) {
		t.Error("Contains accepted a point outside the rect")
	}
	if got := r.Pad(5); got != NewRect(-15, -25, 35, 25) {
		t.Errorf("Pad(5) = %v", got)
	}
}

func TestDirectionFromAngle(t *testing.T) {
	tests := []struct {
		deg  float64
		want Direction
	}{
		{0, East},
		{90, North},
		{180, West},
		{270, South},
		{-90, South},
		{44.9, East},
		{45, North},
		{315, East},
		{359, East},
		{450, North},
	}

	for _, tt := range tests {
		if got := DirectionFromAngle(tt.deg); got != tt.want {
			t.Errorf("DirectionFromAngle(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func TestDirectionValid(t *testing.T) {
	for _, d := range []Direction{North, South, East, West} {
		if !d.Valid() {
			t.Errorf("%v should be valid", d)
		}
	}
	if Direction("NE").Valid() {
		t.Error("NE should not be valid")
	}
}

func TestRound1(t *testing.T) {
	tests := []struct {
		v    float64
		want float64
	}{
		{1.24, 1.2},
		{1.25, 1.3},
		{-1.25, -1.3},
		{-387.16, -387.2},
		{0, 0},
	}

	for _, tt := range tests {
		if got := Round1(tt.v); got != tt.want {
			t.Errorf("Round1(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestMean(t *testing.T) {
	if got := Mean(nil); got != 0 {
		t.Errorf("Mean(nil) = %v, want 0", got)
	}
	if got := Mean([]float64{-10, 10, 30}); got != 10 {
		t.Errorf("Mean = %v, want 10", got)
	}
}

func TestExtent(t *testing.T) {
	lo, hi := Extent([]float64{4, -2, 9, 0})
	if lo != -2 || hi != 9 {
		t.Errorf("Extent = (%v, %v), want (-2, 9)", lo, hi)
	}
	lo, hi = Extent(nil)
	if lo != 0 || hi != 0 {
		t.Errorf("Extent(nil) = (%v, %v), want (0, 0)", lo, hi)
	}
}

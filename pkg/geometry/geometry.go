// Package geometry provides the planar primitives shared by the circuit
// model, the fan-out core, and the renderers. Coordinates are float64 layout
// units with x growing east and y growing north.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Point is a position in the layout plane.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of p and q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rotate returns p rotated counterclockwise by deg degrees around the
// origin. Multiples of 90 rotate exactly so cardinal placements keep clean
// coordinates.
func (p Point) Rotate(deg float64) Point {
	switch NormalizeAngle(deg) {
	case 0:
		return p
	case 90:
		return Point{X: -p.Y, Y: p.X}
	case 180:
		return Point{X: -p.X, Y: -p.Y}
	case 270:
		return Point{X: p.Y, Y: -p.X}
	}
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return Point{X: p.X*cos - p.Y*sin, Y: p.X*sin + p.Y*cos}
}

// Size is a width/height extent.
type Size struct {
	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// Rect is an axis-aligned rectangle spanning Min to Max.
type Rect struct {
	Min Point `json:"min" bson:"min"`
	Max Point `json:"max" bson:"max"`
}

// NewRect builds a Rect from two opposite corners in any order.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		Min: Point{X: math.Min(x0, x1), Y: math.Min(y0, y1)},
		Max: Point{X: math.Max(x0, x1), Y: math.Max(y0, y1)},
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Size returns the rectangle's extent as a Size.
func (r Rect) Size() Size { return Size{Width: r.Width(), Height: r.Height()} }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports whether p lies inside r, boundary included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Expand grows r just enough to cover p.
func (r Rect) Expand(p Point) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, p.X), Y: math.Min(r.Min.Y, p.Y)},
		Max: Point{X: math.Max(r.Max.X, p.X), Y: math.Max(r.Max.Y, p.Y)},
	}
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	return r.Expand(o.Min).Expand(o.Max)
}

// Pad returns r grown by margin on every side.
func (r Rect) Pad(margin float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X - margin, Y: r.Min.Y - margin},
		Max: Point{X: r.Max.X + margin, Y: r.Max.Y + margin},
	}
}

// Direction identifies the device edge a port faces.
type Direction string

// The four cardinal directions.
const (
	North Direction = "N"
	South Direction = "S"
	East  Direction = "E"
	West  Direction = "W"
)

// Valid reports whether d is one of the four cardinal directions.
func (d Direction) Valid() bool {
	switch d {
	case North, South, East, West:
		return true
	}
	return false
}

// DirectionFromAngle snaps an orientation angle in degrees to the nearest
// cardinal direction. Angles follow layout convention: 0 east, 90 north,
// 180 west, 270 south. Diagonal boundaries snap counterclockwise, so 45
// maps north.
func DirectionFromAngle(deg float64) Direction {
	a := NormalizeAngle(deg)
	switch {
	case a < 45 || a >= 315:
		return East
	case a < 135:
		return North
	case a < 225:
		return West
	default:
		return South
	}
}

// NormalizeAngle maps deg into [0, 360).
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// Round1 rounds v to one decimal place, half away from zero. Pad
// coordinates are reported at this resolution.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Mean returns the arithmetic mean of vs, 0 for an empty slice.
func Mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	return stat.Mean(vs, nil)
}

// Extent returns the minimum and maximum of vs. Empty input yields (0, 0).
func Extent(vs []float64) (lo, hi float64) {
	if len(vs) == 0 {
		return 0, 0
	}
	return floats.Min(vs), floats.Max(vs)
}

package route

import (
	"math"

	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/geometry"
)

// DefaultWidth is the trace width used when neither the router nor the
// source port specifies one.
const DefaultWidth = 10.0

// Electrical routes two ports with right-angle wire segments: a vertical
// run from the device port, a horizontal jog, and a vertical approach into
// the pad port. Corners are chamfered by the bend radius.
//
// Each routed pair takes the next lane: the jog drops below the halfway
// level by one Separation per previous route, so parallel runs from the
// same device edge never share a horizontal segment. The lane counter
// belongs to the router instance; use a fresh router per computation.
type Electrical struct {
	// Width is the trace width. Zero falls back to the source port width,
	// then DefaultWidth.
	Width float64

	// BendRadius chamfers corners. Zero keeps them sharp.
	BendRadius float64

	// Separation is the vertical distance between the jog levels of
	// consecutive routes. Zero stacks every jog at the halfway level.
	Separation float64

	// lane counts routed pairs; each claims its own jog level.
	lane int
}

// Route builds the wire between from and to as a single centerline ref.
func (e *Electrical) Route(from, to *circuit.Port) (*Route, error) {
	if from == nil || to == nil {
		return nil, ErrNilPort
	}

	lane := e.lane
	e.lane++

	path := chamfer(manhattanPath(from.Center, to.Center, float64(lane)*e.Separation), e.BendRadius)

	ref := circuit.NewRef(circuit.CellWire)
	ref.Origin = from.Center
	ref.Path = path
	ref.Width = e.width(from)

	return &Route{References: []*circuit.Ref{ref}, Length: pathLength(path)}, nil
}

func (e *Electrical) width(from *circuit.Port) float64 {
	if e.Width > 0 {
		return e.Width
	}
	if from.Width > 0 {
		return from.Width
	}
	return DefaultWidth
}

// manhattanPath returns the right-angle centerline from a to b. Collinear
// endpoints produce a single segment, everything else a Z with the jog
// laneOffset below the halfway level, clamped so it stays between the
// endpoints.
func manhattanPath(a, b geometry.Point, laneOffset float64) []geometry.Point {
	if a.X == b.X || a.Y == b.Y {
		return []geometry.Point{a, b}
	}

	jog := (a.Y+b.Y)/2 - laneOffset
	lo, hi := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	if jog < lo {
		jog = lo
	}
	if jog > hi {
		jog = hi
	}

	return dedupe([]geometry.Point{a, {X: a.X, Y: jog}, {X: b.X, Y: jog}, b})
}

// dedupe removes consecutive duplicate points, which appear when the jog
// clamps onto an endpoint level.
func dedupe(path []geometry.Point) []geometry.Point {
	out := path[:1]
	for _, p := range path[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// chamfer cuts every interior corner back by r along both legs, capped at
// half the leg length so neighboring corners never cross.
func chamfer(path []geometry.Point, r float64) []geometry.Point {
	if r <= 0 || len(path) < 3 {
		return path
	}

	out := make([]geometry.Point, 0, 2*len(path))
	out = append(out, path[0])
	for i := 1; i < len(path)-1; i++ {
		c := path[i]
		in := toward(c, path[i-1], min(r, c.Distance(path[i-1])/2))
		exit := toward(c, path[i+1], min(r, c.Distance(path[i+1])/2))
		if in != out[len(out)-1] {
			out = append(out, in)
		}
		out = append(out, exit)
	}
	return append(out, path[len(path)-1])
}

// toward moves from a toward b by d, clamped at b.
func toward(a, b geometry.Point, d float64) geometry.Point {
	total := a.Distance(b)
	if total == 0 || d >= total {
		return b
	}
	t := d / total
	return geometry.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

func pathLength(path []geometry.Point) float64 {
	var sum float64
	for i := 1; i < len(path); i++ {
		sum += path[i-1].Distance(path[i])
	}
	return sum
}

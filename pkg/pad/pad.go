// Package pad defines connector pad prototypes and the sources that supply
// them to fan-out computations.
//
// A [Pad] is a reusable shape with named local ports. Placing one produces
// a [circuit.Ref] anchored so that a designated port lands exactly at the
// requested position, which is how probe pads meet their route endpoints.
// Prototypes come from the built-in set ([DC]) or from a TOML library file
// ([LoadLibrary]); either can feed a computation through a [Source].
package pad

import (
	"errors"
	"fmt"

	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/geometry"
)

var (
	// ErrUnknownPad indicates a pad name that is not in the library.
	ErrUnknownPad = errors.New("unknown pad")

	// ErrUnknownPort indicates a port name the pad does not define.
	ErrUnknownPort = errors.New("pad port not found")

	// ErrNilPad indicates a source that produced no prototype.
	ErrNilPad = errors.New("nil pad")
)

// Pad is a reusable connector prototype. Ports are in the pad-local frame,
// centered on the pad body, so a port on the west edge of a 100-wide pad
// sits at x -50.
type Pad struct {
	Name  string                   `json:"name" bson:"name"`
	Size  geometry.Size            `json:"size" bson:"size"`
	Ports map[string]*circuit.Port `json:"ports" bson:"ports"`
}

// Port returns the named local port.
func (p *Pad) Port(name string) (*circuit.Port, error) {
	q, ok := p.Ports[name]
	if !ok {
		return nil, fmt.Errorf("%w: pad %q has no port %q", ErrUnknownPort, p.Name, name)
	}
	return q, nil
}

// RefAt places the pad so that the named local port lands at anchor after
// rotating the pad by rotation degrees. The returned ref carries all pad
// ports transformed into the layout frame.
func (p *Pad) RefAt(anchor geometry.Point, rotation float64, portName string) (*circuit.Ref, error) {
	lp, err := p.Port(portName)
	if err != nil {
		return nil, err
	}

	origin := anchor.Sub(lp.Center.Rotate(rotation))
	ref := circuit.NewRef(p.Name)
	ref.Origin = origin
	ref.Rotation = geometry.NormalizeAngle(rotation)

	// Body outline in the layout frame; renderers close the polygon.
	w, h := p.Size.Width/2, p.Size.Height/2
	corners := []geometry.Point{{X: -w, Y: -h}, {X: w, Y: -h}, {X: w, Y: h}, {X: -w, Y: h}}
	ref.Path = make([]geometry.Point, len(corners))
	for i, c := range corners {
		ref.Path[i] = c.Rotate(rotation).Add(origin)
	}

	ref.Ports = make(map[string]*circuit.Port, len(p.Ports))
	for name, q := range p.Ports {
		placed := &circuit.Port{
			Name:   name,
			Center: q.Center.Rotate(rotation).Add(origin),
			Width:  q.Width,
			Class:  q.Class,
		}
		if a, ok := q.Facing(); ok {
			placed = placed.WithOrientation(a + rotation)
		}
		ref.Ports[name] = placed
	}
	return ref, nil
}

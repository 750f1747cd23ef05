// Package route builds the wire geometry connecting device ports to placed
// pads.
//
// The placement core only depends on the [Router] interface; styling
// parameters such as trace width and bend radius belong to the concrete
// router, set at construction. [Electrical] is the standard implementation
// for probe and bond wiring.
package route

import (
	"errors"

	"github.com/dominauta/padring/pkg/circuit"
)

// ErrNilPort indicates a route request with a missing endpoint.
var ErrNilPort = errors.New("nil port")

// Route is the geometry produced for one port-to-pad connection. The
// placement core treats it as opaque and only concatenates reference
// lists.
type Route struct {
	References []*circuit.Ref `json:"references" bson:"references"`
	Length     float64        `json:"length,omitempty" bson:"length,omitempty"`
}

// Router builds the physical path between two ports.
type Router interface {
	Route(from, to *circuit.Port) (*Route, error)
}

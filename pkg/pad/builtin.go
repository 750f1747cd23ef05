package pad

import (
	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/geometry"
)

// Built-in DC pad dimensions and port name.
const (
	DCName = "dc"
	DCSize = 100.0
	DCPort = "e1"
)

// DC returns the built-in square probe pad. Its single electrical port sits
// on the west edge facing outward, so the conventional -90 pad rotation
// brings the port to the top of the placed pad, toward the device.
func DC() *Pad {
	port := &circuit.Port{
		Name:   DCPort,
		Center: geometry.Point{X: -DCSize / 2, Y: 0},
		Width:  DCSize,
		Class:  circuit.ClassElectrical,
	}
	return &Pad{
		Name:  DCName,
		Size:  geometry.Size{Width: DCSize, Height: DCSize},
		Ports: map[string]*circuit.Port{DCPort: port.WithOrientation(180)},
	}
}

package fanout_test

import (
	"fmt"

	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/fanout"
	"github.com/dominauta/padring/pkg/geometry"
	"github.com/dominauta/padring/pkg/pad"
	"github.com/dominauta/padring/pkg/route"
)

// Fan out the electrical ports of a small device to a single pad row.
func ExampleCompute() {
	dev := &circuit.Device{
		Name:    "amp",
		Outline: geometry.NewRect(0, 0, 200, 100),
		Ports: map[string]*circuit.Port{
			"gnd": {Name: "gnd", Center: geometry.Point{X: 0, Y: 50}, Class: circuit.ClassElectrical},
			"vdd": {Name: "vdd", Center: geometry.Point{X: 200, Y: 50}, Class: circuit.ClassElectrical},
			"in":  {Name: "in", Center: geometry.Point{X: 100, Y: 0}, Class: circuit.ClassOptical},
		},
	}

	layout, err := fanout.Compute(dev, pad.Instance(pad.DC()), &route.Electrical{BendRadius: 0.1}, fanout.Options{
		Spacing:      150,
		FanoutLength: 20,
		Separation:   4,
		BendRadius:   0.1,
		Rows:         1,
		PadPort:      pad.DCPort,
		PadRotation:  -90,
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("pads: %d\n", layout.PadCount())
	fmt.Printf("routes: %d\n", layout.RouteCount())
	fmt.Printf("baseline: %v\n", layout.Baseline)
	// Output:
	// pads: 2
	// routes: 2
	// baseline: 26
}

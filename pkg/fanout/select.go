package fanout

import (
	"fmt"

	"github.com/dominauta/padring/pkg/circuit"
)

// Predicate filters the device port mapping when no explicit labels are
// given.
type Predicate func(*circuit.Port) bool

// ElectricalPorts selects ports in the electrical net class. It is the
// conventional predicate for pad fan-out; callers pass it explicitly or
// leave Options.Predicate nil to get it.
func ElectricalPorts(p *circuit.Port) bool {
	return p.Class == circuit.ClassElectrical
}

// selectPorts narrows the device's full port mapping to the ports to
// route.
//
// Explicit labels bypass the predicate entirely and keep the caller's
// order; an unknown label fails the call. Without labels, the predicate
// runs over the full mapping with candidates in lexical name order, so the
// result never depends on map iteration. The exclusion list applies to
// both paths.
func selectPorts(dev *circuit.Device, labels []string, pred Predicate, excluded []string) ([]*circuit.Port, error) {
	var ports []*circuit.Port
	if len(labels) > 0 {
		ports = make([]*circuit.Port, 0, len(labels))
		for _, name := range labels {
			p, ok := dev.Ports[name]
			if !ok {
				return nil, fmt.Errorf("%w: label %q", ErrPortNotFound, name)
			}
			ports = append(ports, p)
		}
	} else {
		if pred == nil {
			pred = ElectricalPorts
		}
		for _, p := range dev.PortList() {
			if pred(p) {
				ports = append(ports, p)
			}
		}
	}

	if len(excluded) == 0 {
		return ports, nil
	}
	drop := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		drop[name] = true
	}
	kept := make([]*circuit.Port, 0, len(ports))
	for _, p := range ports {
		if !drop[p.Name] {
			kept = append(kept, p)
		}
	}
	return kept, nil
}

package fanout

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/geometry"
)

// buckets holds the selected ports partitioned by device edge, each in its
// native traversal order: north and south left to right, east and west
// bottom to top.
type buckets struct {
	north, south, east, west []*circuit.Port
}

// directionBuckets classifies ports against box and sorts each bucket into
// its native order. Ties on the sort coordinate fall back to the port name
// so the result is a pure function of the port set.
func directionBuckets(ports []*circuit.Port, box geometry.Rect) buckets {
	var b buckets
	for _, p := range ports {
		switch circuit.Classify(p, box) {
		case geometry.North:
			b.north = append(b.north, p)
		case geometry.South:
			b.south = append(b.south, p)
		case geometry.East:
			b.east = append(b.east, p)
		case geometry.West:
			b.west = append(b.west, p)
		}
	}
	sortByX(b.north)
	sortByX(b.south)
	sortByY(b.east)
	sortByY(b.west)
	return b
}

func sortByX(ports []*circuit.Port) {
	slices.SortFunc(ports, func(a, b *circuit.Port) int {
		if a.Center.X != b.Center.X {
			if a.Center.X < b.Center.X {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
}

func sortByY(ports []*circuit.Port) {
	slices.SortFunc(ports, func(a, b *circuit.Port) int {
		if a.Center.Y != b.Center.Y {
			if a.Center.Y < b.Center.Y {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name, b.Name)
	})
}

// orderPorts linearizes the selected ports along the perimeter walk. The
// north bucket splits at its midpoint: the walk starts mid-north going
// right to left, descends the west edge, crosses south left to right,
// climbs east, and finishes with the remaining north ports right to left.
func orderPorts(ports []*circuit.Port, box geometry.Rect) []*circuit.Port {
	b := directionBuckets(ports, box)

	mid := len(b.north) / 2
	start := reversed(b.north[:mid])
	finish := reversed(b.north[mid:])
	west := reversed(b.west)

	out := make([]*circuit.Port, 0, len(ports))
	out = append(out, start...)
	out = append(out, west...)
	out = append(out, b.south...)
	out = append(out, b.east...)
	out = append(out, finish...)
	return out
}

// reversed returns a reversed copy, leaving the bucket slices intact.
func reversed(ports []*circuit.Port) []*circuit.Port {
	out := slices.Clone(ports)
	slices.Reverse(out)
	return out
}

// overridePorts resolves an explicit connection id list against the
// device's full port mapping, replacing the perimeter walk entirely. The
// list must cover exactly the selected port count n.
func overridePorts(dev *circuit.Device, ids []string, n int) ([]*circuit.Port, error) {
	if len(ids) != n {
		return nil, fmt.Errorf("%w: %d connection ids for %d selected ports", ErrOverrideCount, len(ids), n)
	}
	out := make([]*circuit.Port, len(ids))
	for i, id := range ids {
		p, ok := dev.Ports[id]
		if !ok {
			return nil, fmt.Errorf("%w: connection id %q", ErrPortNotFound, id)
		}
		out[i] = p
	}
	return out, nil
}

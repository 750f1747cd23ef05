package fanout

import (
	"fmt"
	"math"

	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/geometry"
	"github.com/dominauta/padring/pkg/pad"
	"github.com/dominauta/padring/pkg/route"
)

// Options control one fan-out computation. The zero value is not usable:
// Rows must be at least one and PadPort must name a port of the prototype.
// pipeline.Options fills conventional defaults for callers that do not
// want to pick values themselves.
type Options struct {
	// Spacing is the center-to-center pad pitch within a row.
	Spacing float64

	// FanoutLength is the clearance reserved between the device bounding
	// box and the pad array.
	FanoutLength float64

	// MaxBaseline caps the pad-row baseline y when set. The baseline is
	// clamped to at most this ceiling.
	MaxBaseline *float64

	// Separation is the vertical budget reserved per route lane. It feeds
	// the baseline and the row gap arithmetic.
	Separation float64

	// BendRadius widens the row gap to leave room for route corners.
	BendRadius float64

	// Rows is the number of pad rows. Values below one fail with
	// ErrRowCount.
	//
	// When Rows does not divide the selected port count, the remainder
	// ports are silently left unpaired; see [Compute].
	Rows int

	// PadPort names the prototype port that anchors each placed pad and
	// receives the route.
	PadPort string

	// PadRotation is applied to every placed pad, in degrees.
	PadRotation float64

	// XPadOffset shifts the whole pad array horizontally.
	XPadOffset float64

	// Labels selects ports explicitly, in this exact order, bypassing
	// Predicate. Unknown labels fail with ErrPortNotFound.
	Labels []string

	// Excluded drops ports by name after selection, on both selection
	// paths.
	Excluded []string

	// ConnectionIDs replaces the computed perimeter order entirely. Ids
	// resolve against the device's full port mapping, not the filtered
	// subset, and must cover exactly the selected port count.
	ConnectionIDs []string

	// SlotIndices picks which physical slot each pad occupies, allowing
	// gaps in the array. Length must equal the per-row slot count; nil
	// means the identity assignment.
	SlotIndices []int

	// Predicate filters ports when Labels is empty. Nil selects
	// electrical-class ports.
	Predicate Predicate
}

// Result layers the computed layout with the ordered port names, mostly
// for callers that want to inspect or log the pairing decision.
type Result struct {
	Layout  *circuit.Layout
	Ordered []string // port names in pairing order
}

// Compute places a pad array below dev and routes the selected boundary
// ports to it, one pad per ordered port.
//
// The four stages run in a fixed sequence: select the ports, bucket them
// by device edge, linearize the buckets along the perimeter walk, then
// place pads and build routes. An empty selection short-circuits into an
// empty layout with a zero baseline; that is a success. All lookup and
// contract validation happens before the first pad is placed, so a failed
// call never returns partial geometry.
//
// Multi-row arrays keep a long-standing quirk: every row indexes the same
// ordered port sequence, and only the last constructed row, at the deepest
// y position, is retained and paired. With Rows > 1 the ports beyond the
// per-row slot count therefore stay unrouted. Callers that need full
// multi-row pairing should split the port set and call Compute per row.
func Compute(dev *circuit.Device, source pad.Source, router route.Router, opts Options) (*circuit.Layout, error) {
	res, err := ComputeResult(dev, source, router, opts)
	if err != nil {
		return nil, err
	}
	return res.Layout, nil
}

// ComputeResult is Compute plus the ordered port names used for pairing.
func ComputeResult(dev *circuit.Device, source pad.Source, router route.Router, opts Options) (*Result, error) {
	if dev == nil {
		return nil, ErrNilDevice
	}
	if source == nil {
		return nil, ErrNilSource
	}
	if router == nil {
		return nil, ErrNilRouter
	}
	if opts.Rows < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrRowCount, opts.Rows)
	}

	proto, err := source.Pad()
	if err != nil {
		return nil, fmt.Errorf("resolve pad source: %w", err)
	}

	ports, err := selectPorts(dev, opts.Labels, opts.Predicate, opts.Excluded)
	if err != nil {
		return nil, err
	}
	n := len(ports)
	if n == 0 {
		return &Result{Layout: emptyLayout(dev)}, nil
	}

	ordered := orderPorts(ports, dev.BBox())
	if len(opts.ConnectionIDs) > 0 {
		ordered, err = overridePorts(dev, opts.ConnectionIDs, n)
		if err != nil {
			return nil, err
		}
	}

	padPort, err := proto.Port(opts.PadPort)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPortNotFound, err)
	}

	// Half-slot padding factor: odd counts round up to even for the gap
	// arithmetic without changing the port count.
	k := n
	if k%2 == 1 {
		k++
	}

	xs := make([]float64, n)
	for i, p := range ports {
		xs[i] = p.Center.X
	}
	xCenter := geometry.Round1(geometry.Mean(xs))

	yMin := dev.BBox().Min.Y
	baseline := geometry.Round1(yMin - opts.FanoutLength - padPort.Center.X - float64(k)/2*opts.Separation)
	if opts.MaxBaseline != nil {
		baseline = geometry.Round1(math.Min(*opts.MaxBaseline, baseline))
	}

	perRow := n / opts.Rows
	slots := opts.SlotIndices
	if slots == nil {
		slots = identitySlots(perRow)
	} else if len(slots) != perRow {
		return nil, fmt.Errorf("%w: %d indices for %d slots per row", ErrSlotCount, len(slots), perRow)
	}

	offset := float64(perRow-1)*opts.Spacing/2 - opts.XPadOffset
	yGap := (float64(k)/float64(opts.Rows) + 1) * opts.Separation
	ySep := proto.Size.Height + yGap + opts.BendRadius

	// Rows stack downward from the baseline; only the deepest row
	// survives (see the multi-row note on Compute).
	rowIndex := opts.Rows - 1
	rowY := baseline - float64(rowIndex)*ySep

	row := make([]*circuit.Ref, 0, len(slots))
	for _, slot := range slots {
		anchor := geometry.Point{X: xCenter - offset + float64(slot)*opts.Spacing, Y: rowY}
		ref, err := proto.RefAt(anchor, opts.PadRotation, opts.PadPort)
		if err != nil {
			return nil, err
		}
		row = append(row, ref)
	}
	padRows := [][]*circuit.Ref{row}

	elements := make([]*circuit.Ref, 0, n)
	pairs := make([]circuit.Pair, 0, len(row))
	names := make([]string, 0, len(row))
	for _, rowRefs := range padRows {
		for i, padRef := range rowRefs {
			from := ordered[i]
			to, ok := padRef.Port(opts.PadPort)
			if !ok {
				return nil, fmt.Errorf("%w: pad %s has no port %q", ErrPortNotFound, padRef.ID, opts.PadPort)
			}
			r, err := router.Route(from, to)
			if err != nil {
				return nil, fmt.Errorf("route %s: %w", from.Name, err)
			}
			elements = append(elements, r.References...)
			pairs = append(pairs, circuit.Pair{Port: from.Name, Pad: padRef.ID, Row: rowIndex, Slot: slots[i]})
			names = append(names, from.Name)
		}
	}

	layout := &circuit.Layout{
		Device:   dev.Name,
		Baseline: baseline,
		PadRows:  padRows,
		Elements: elements,
		Pairs:    pairs,
	}
	return &Result{Layout: layout, Ordered: names}, nil
}

func emptyLayout(dev *circuit.Device) *circuit.Layout {
	return &circuit.Layout{
		Device:   dev.Name,
		Baseline: 0,
		PadRows:  [][]*circuit.Ref{},
		Elements: []*circuit.Ref{},
	}
}

func identitySlots(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

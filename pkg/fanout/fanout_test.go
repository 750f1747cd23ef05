package fanout

import (
	"errors"
	"testing"

	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/geometry"
	"github.com/dominauta/padring/pkg/pad"
	"github.com/dominauta/padring/pkg/route"
)

// fourSideDevice has one electrical port per edge of a 100x100 outline.
func fourSideDevice() *circuit.Device {
	return &circuit.Device{
		Name:    "dut",
		Outline: geometry.NewRect(0, 0, 100, 100),
		Ports: map[string]*circuit.Port{
			"n1": (&circuit.Port{Name: "n1", Center: geometry.Point{X: 50, Y: 100}, Class: circuit.ClassElectrical}).WithOrientation(90),
			"s1": (&circuit.Port{Name: "s1", Center: geometry.Point{X: 50, Y: 0}, Class: circuit.ClassElectrical}).WithOrientation(270),
			"e1": (&circuit.Port{Name: "e1", Center: geometry.Point{X: 100, Y: 50}, Class: circuit.ClassElectrical}).WithOrientation(0),
			"w1": (&circuit.Port{Name: "w1", Center: geometry.Point{X: 0, Y: 50}, Class: circuit.ClassElectrical}).WithOrientation(180),
		},
	}
}

func defaultOpts() Options {
	return Options{
		Spacing:      150,
		FanoutLength: 20,
		Separation:   4,
		BendRadius:   0.1,
		Rows:         1,
		PadPort:      pad.DCPort,
		PadRotation:  -90,
	}
}

func compute(t *testing.T, dev *circuit.Device, opts Options) *Result {
	t.Helper()
	res, err := ComputeResult(dev, pad.Instance(pad.DC()), &route.Electrical{BendRadius: opts.BendRadius}, opts)
	if err != nil {
		t.Fatalf("ComputeResult() error: %v", err)
	}
	return res
}

func portNames(ports []*circuit.Port) []string {
	names := make([]string, len(ports))
	for i, p := range ports {
		names[i] = p.Name
	}
	return names
}

func wantNames(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("order[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestComputeFourSides(t *testing.T) {
	dev := fourSideDevice()
	res := compute(t, dev, defaultOpts())
	l := res.Layout

	// North bucket has one port: the split leaves the start half empty and
	// the walk ends on n1.
	wantNames(t, res.Ordered, []string{"w1", "s1", "e1", "n1"})

	if len(l.PadRows) != 1 || len(l.PadRows[0]) != 4 {
		t.Fatalf("PadRows = %d rows x %d pads, want 1x4", len(l.PadRows), len(l.PadRows[0]))
	}
	if len(l.Pairs) != 4 || len(l.Elements) != 4 {
		t.Errorf("pairs = %d, elements = %d, want 4 each", len(l.Pairs), len(l.Elements))
	}

	// DC pad port sits at local x -50, so with y_min 0:
	// baseline = 0 - 20 - (-50) - (4/2)*4 = 22
	if l.Baseline != 22 {
		t.Errorf("Baseline = %v, want 22", l.Baseline)
	}

	// Pad anchors form an arithmetic sequence with the pitch as common
	// difference, centered on the mean port x (50).
	wantXs := []float64{-175, -25, 125, 275}
	for i, ref := range l.PadRows[0] {
		p, ok := ref.Port(pad.DCPort)
		if !ok {
			t.Fatalf("pad %d has no port %q", i, pad.DCPort)
		}
		if p.Center.X != wantXs[i] {
			t.Errorf("pad %d anchor x = %v, want %v", i, p.Center.X, wantXs[i])
		}
		if p.Center.Y != l.Baseline {
			t.Errorf("pad %d anchor y = %v, want baseline %v", i, p.Center.Y, l.Baseline)
		}
	}
}

func TestComputeEmptySelection(t *testing.T) {
	dev := fourSideDevice()
	for _, p := range dev.Ports {
		p.Class = circuit.ClassOptical
	}

	l, err := Compute(dev, pad.Instance(pad.DC()), &route.Electrical{}, defaultOpts())
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if !l.Empty() {
		t.Error("expected the defined empty result")
	}
	if l.Baseline != 0 {
		t.Errorf("Baseline = %v, want 0", l.Baseline)
	}
	if l.PadRows == nil || l.Elements == nil {
		t.Error("empty layout must carry empty slices, not nil")
	}
}

func TestComputeOddCountRoundsGapFactor(t *testing.T) {
	dev := fourSideDevice()
	delete(dev.Ports, "n1")

	res := compute(t, dev, defaultOpts())

	// Three ports round up to k=4 for the gap arithmetic only:
	// baseline = 0 - 20 + 50 - 2*4 = 22, and all three ports still pair.
	if got := res.Layout.Baseline; got != 22 {
		t.Errorf("Baseline = %v, want 22", got)
	}
	if len(res.Ordered) != 3 || len(res.Layout.Pairs) != 3 {
		t.Errorf("ordered = %d, pairs = %d, want 3 each", len(res.Ordered), len(res.Layout.Pairs))
	}
}

func TestComputeMaxBaselineClamp(t *testing.T) {
	ceiling := -100.0
	opts := defaultOpts()
	opts.MaxBaseline = &ceiling

	res := compute(t, fourSideDevice(), opts)
	if got := res.Layout.Baseline; got != -100 {
		t.Errorf("Baseline = %v, want ceiling -100", got)
	}

	// A ceiling above the computed baseline leaves it untouched.
	ceiling = 1000
	res = compute(t, fourSideDevice(), opts)
	if got := res.Layout.Baseline; got != 22 {
		t.Errorf("Baseline = %v, want 22", got)
	}
}

func TestComputeSlotIndicesIdentity(t *testing.T) {
	opts := defaultOpts()
	def := compute(t, fourSideDevice(), opts)

	opts.SlotIndices = []int{0, 1, 2, 3}
	explicit := compute(t, fourSideDevice(), opts)

	for i := range def.Layout.PadRows[0] {
		a := def.Layout.PadRows[0][i]
		b := explicit.Layout.PadRows[0][i]
		if a.Origin != b.Origin || a.Rotation != b.Rotation {
			t.Errorf("pad %d: identity slots placed %v/%v, default %v/%v",
				i, b.Origin, b.Rotation, a.Origin, a.Rotation)
		}
	}
}

func TestComputeSlotIndicesGaps(t *testing.T) {
	opts := defaultOpts()
	opts.SlotIndices = []int{0, 2, 4, 6}

	res := compute(t, fourSideDevice(), opts)

	// Slots stretch over the physical array, leaving every other position
	// empty: x = 50 - 225 + slot*150.
	wantXs := []float64{-175, 125, 425, 725}
	for i, ref := range res.Layout.PadRows[0] {
		p, _ := ref.Port(pad.DCPort)
		if p.Center.X != wantXs[i] {
			t.Errorf("slot %d anchor x = %v, want %v", i, p.Center.X, wantXs[i])
		}
	}
	for i, pair := range res.Layout.Pairs {
		if pair.Slot != opts.SlotIndices[i] {
			t.Errorf("pair %d slot = %d, want %d", i, pair.Slot, opts.SlotIndices[i])
		}
	}
}

func TestComputeSlotIndicesCountMismatch(t *testing.T) {
	opts := defaultOpts()
	opts.SlotIndices = []int{0, 1}

	_, err := Compute(fourSideDevice(), pad.Instance(pad.DC()), &route.Electrical{}, opts)
	if !errors.Is(err, ErrSlotCount) {
		t.Fatalf("err = %v, want ErrSlotCount", err)
	}
}

func TestComputeLabels(t *testing.T) {
	opts := defaultOpts()
	opts.Labels = []string{"e1", "w1"}

	res := compute(t, fourSideDevice(), opts)
	wantNames(t, res.Ordered, []string{"w1", "e1"})

	opts.Labels = []string{"e1", "missing"}
	_, err := Compute(fourSideDevice(), pad.Instance(pad.DC()), &route.Electrical{}, opts)
	if !errors.Is(err, ErrPortNotFound) {
		t.Fatalf("err = %v, want ErrPortNotFound", err)
	}
}

func TestComputeExcluded(t *testing.T) {
	opts := defaultOpts()
	opts.Excluded = []string{"s1", "n1"}

	res := compute(t, fourSideDevice(), opts)
	wantNames(t, res.Ordered, []string{"w1", "e1"})
}

func TestComputeOverride(t *testing.T) {
	dev := fourSideDevice()
	// Overrides resolve against the full mapping, so an optical port is
	// reachable even though the predicate would drop it.
	dev.Ports["o1"] = &circuit.Port{Name: "o1", Center: geometry.Point{X: 10, Y: 100}, Class: circuit.ClassOptical}

	opts := defaultOpts()
	opts.ConnectionIDs = []string{"e1", "o1", "n1", "s1"}

	res := compute(t, dev, opts)
	wantNames(t, res.Ordered, []string{"e1", "o1", "n1", "s1"})
}

func TestComputeOverrideErrors(t *testing.T) {
	opts := defaultOpts()
	opts.ConnectionIDs = []string{"e1", "w1"}
	_, err := Compute(fourSideDevice(), pad.Instance(pad.DC()), &route.Electrical{}, opts)
	if !errors.Is(err, ErrOverrideCount) {
		t.Fatalf("short list: err = %v, want ErrOverrideCount", err)
	}

	opts.ConnectionIDs = []string{"e1", "w1", "n1", "missing"}
	_, err = Compute(fourSideDevice(), pad.Instance(pad.DC()), &route.Electrical{}, opts)
	if !errors.Is(err, ErrPortNotFound) {
		t.Fatalf("unknown id: err = %v, want ErrPortNotFound", err)
	}
}

func TestComputeMultiRowKeepsLastRowOnly(t *testing.T) {
	opts := defaultOpts()
	opts.Rows = 2

	res := compute(t, fourSideDevice(), opts)
	l := res.Layout

	if len(l.PadRows) != 1 || len(l.PadRows[0]) != 2 {
		t.Fatalf("PadRows = %d rows x %d pads, want the single retained 1x2 row", len(l.PadRows), len(l.PadRows[0]))
	}

	// y_sep = pad height + (k/rows + 1)*separation + bend radius
	//       = 100 + (4/2 + 1)*4 + 0.1 = 112.1
	// and the retained row is the deepest one, at baseline - 1*y_sep.
	wantY := l.Baseline - 112.1
	p, _ := l.PadRows[0][0].Port(pad.DCPort)
	if p.Center.Y != wantY {
		t.Errorf("retained row y = %v, want %v", p.Center.Y, wantY)
	}

	// The head of the one ordered sequence pairs; the tail stays unrouted.
	wantNames(t, res.Ordered, []string{"w1", "s1"})
	for _, pair := range l.Pairs {
		if pair.Row != 1 {
			t.Errorf("pair row = %d, want 1", pair.Row)
		}
	}
}

func TestComputeRowCountInvalid(t *testing.T) {
	for _, rows := range []int{0, -1} {
		opts := defaultOpts()
		opts.Rows = rows
		_, err := Compute(fourSideDevice(), pad.Instance(pad.DC()), &route.Electrical{}, opts)
		if !errors.Is(err, ErrRowCount) {
			t.Errorf("Rows=%d: err = %v, want ErrRowCount", rows, err)
		}
	}
}

func TestComputeNilCollaborators(t *testing.T) {
	dev := fourSideDevice()
	opts := defaultOpts()

	if _, err := Compute(nil, pad.Instance(pad.DC()), &route.Electrical{}, opts); !errors.Is(err, ErrNilDevice) {
		t.Errorf("nil device: err = %v", err)
	}
	if _, err := Compute(dev, nil, &route.Electrical{}, opts); !errors.Is(err, ErrNilSource) {
		t.Errorf("nil source: err = %v", err)
	}
	if _, err := Compute(dev, pad.Instance(pad.DC()), nil, opts); !errors.Is(err, ErrNilRouter) {
		t.Errorf("nil router: err = %v", err)
	}
}

func TestComputeUnknownPadPort(t *testing.T) {
	opts := defaultOpts()
	opts.PadPort = "nope"
	_, err := Compute(fourSideDevice(), pad.Instance(pad.DC()), &route.Electrical{}, opts)
	if !errors.Is(err, ErrPortNotFound) {
		t.Fatalf("err = %v, want ErrPortNotFound", err)
	}
}

func TestComputeFactorySource(t *testing.T) {
	factory := pad.Factory(func() (*pad.Pad, error) { return pad.DC(), nil })
	l, err := Compute(fourSideDevice(), factory, &route.Electrical{}, defaultOpts())
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if l.PadCount() != 4 {
		t.Errorf("PadCount() = %d, want 4", l.PadCount())
	}
}

func TestComputeDeterministic(t *testing.T) {
	a := compute(t, fourSideDevice(), defaultOpts())

	// Same port set inserted through a different literal order.
	dev := fourSideDevice()
	rebuilt := &circuit.Device{Name: dev.Name, Outline: dev.Outline, Ports: map[string]*circuit.Port{}}
	for _, name := range []string{"e1", "n1", "w1", "s1"} {
		rebuilt.Ports[name] = dev.Ports[name]
	}
	b := compute(t, rebuilt, defaultOpts())

	wantNames(t, b.Ordered, a.Ordered)
	if a.Layout.Baseline != b.Layout.Baseline {
		t.Errorf("baselines differ: %v vs %v", a.Layout.Baseline, b.Layout.Baseline)
	}
}

package circuit

import (
	"encoding/json"
	"fmt"
	"os"
)

// =============================================================================
// Layout - Fan-Out Result
// =============================================================================

// Layout is the serialized result of one fan-out computation: the pad rows,
// the accumulated route geometry, and the pad-row baseline.
//
// An empty selection produces a Layout with no pad rows, no elements, and a
// zero baseline; that case is a defined success, not an error.
//
// Invariant: all pad rows have equal length, and Pairs references only pads
// present in PadRows.
type Layout struct {
	// ID identifies a stored layout. Empty until persisted.
	ID string `json:"id,omitempty" bson:"_id,omitempty"`

	// Device is the name of the component the layout was computed for.
	Device string `json:"device,omitempty" bson:"device,omitempty"`

	// Baseline is the y coordinate of the first pad row anchor.
	Baseline float64 `json:"baseline" bson:"baseline"`

	// PadRows holds the placed pad references, one slice per retained row.
	PadRows [][]*Ref `json:"pad_rows" bson:"pad_rows"`

	// Elements is the route geometry in pairing order.
	Elements []*Ref `json:"elements" bson:"elements"`

	// Pairs records which device port feeds which pad.
	Pairs []Pair `json:"pairs,omitempty" bson:"pairs,omitempty"`
}

// Pair records one port-to-pad assignment.
type Pair struct {
	Port string `json:"port" bson:"port"`
	Pad  string `json:"pad" bson:"pad"` // ref ID
	Row  int    `json:"row" bson:"row"`
	Slot int    `json:"slot" bson:"slot"`
}

// Empty reports whether the layout is the defined empty-selection result.
func (l *Layout) Empty() bool {
	return len(l.PadRows) == 0 && len(l.Elements) == 0
}

// PadCount returns the total number of placed pads.
func (l *Layout) PadCount() int {
	n := 0
	for _, row := range l.PadRows {
		n += len(row)
	}
	return n
}

// RouteCount returns the number of routed port-to-pad pairs.
func (l *Layout) RouteCount() int { return len(l.Pairs) }

// Pads returns all placed pad refs row by row.
func (l *Layout) Pads() []*Ref {
	out := make([]*Ref, 0, l.PadCount())
	for _, row := range l.PadRows {
		out = append(out, row...)
	}
	return out
}

// PadByID returns the placed pad with the given ref ID.
func (l *Layout) PadByID(id string) (*Ref, bool) {
	for _, row := range l.PadRows {
		for _, ref := range row {
			if ref.ID == id {
				return ref, true
			}
		}
	}
	return nil, false
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l *Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a Layout and checks its
// structural invariants.
func UnmarshalLayout(data []byte) (*Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("unmarshal layout: %w", err)
	}

	for i, row := range l.PadRows {
		if len(row) != len(l.PadRows[0]) {
			return nil, fmt.Errorf("pad row %d has %d pads, row 0 has %d", i, len(row), len(l.PadRows[0]))
		}
	}
	for _, pair := range l.Pairs {
		if _, ok := l.PadByID(pair.Pad); !ok {
			return nil, fmt.Errorf("pair for port %q references unknown pad %q", pair.Port, pair.Pad)
		}
	}

	return &l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l *Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}

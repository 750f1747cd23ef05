package circuit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/dominauta/padring/pkg/geometry"
)

// =============================================================================
// Device - Component Under Fan-Out
// =============================================================================

// Device is the component whose boundary ports get fanned out. It is
// read-only to the placement core: computations return fresh refs instead
// of mutating the device.
//
// Ports maps port name to port. Map iteration order is meaningless; every
// consumer must behave identically regardless of it.
type Device struct {
	Name    string           `json:"name" bson:"name"`
	Outline geometry.Rect    `json:"outline" bson:"outline"`
	Ports   map[string]*Port `json:"ports" bson:"ports"`
}

// BBox returns the device bounding box: the outline expanded to cover every
// port center.
func (d *Device) BBox() geometry.Rect {
	box := d.Outline
	for _, p := range d.Ports {
		box = box.Expand(p.Center)
	}
	return box
}

// PortNames returns the port names in lexical order.
func (d *Device) PortNames() []string {
	names := make([]string, 0, len(d.Ports))
	for name := range d.Ports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PortList returns the ports in lexical name order.
func (d *Device) PortList() []*Port {
	names := d.PortNames()
	ports := make([]*Port, len(names))
	for i, name := range names {
		ports[i] = d.Ports[name]
	}
	return ports
}

// ClassCounts returns how many ports each net class has, keyed by class.
func (d *Device) ClassCounts() map[string]int {
	counts := make(map[string]int)
	for _, p := range d.Ports {
		counts[p.Class]++
	}
	return counts
}

// Classify reports which edge of box the port belongs to. Ports that carry
// an orientation snap to the nearest cardinal. Ports without one fall back
// to the nearest edge of box; equidistant ports resolve in the order west,
// east, south, north.
func Classify(p *Port, box geometry.Rect) geometry.Direction {
	if a, ok := p.Facing(); ok {
		return geometry.DirectionFromAngle(a)
	}

	dir := geometry.West
	min := p.Center.X - box.Min.X
	if d := box.Max.X - p.Center.X; d < min {
		min, dir = d, geometry.East
	}
	if d := p.Center.Y - box.Min.Y; d < min {
		min, dir = d, geometry.South
	}
	if d := box.Max.Y - p.Center.Y; d < min {
		dir = geometry.North
	}
	return dir
}

// =============================================================================
// Device Serialization API
// =============================================================================

// MarshalDevice serializes a Device to pretty-printed JSON bytes with ports
// in lexical name order.
func MarshalDevice(d *Device) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeDeviceTo(d, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalDevice deserializes JSON bytes into a validated Device.
func UnmarshalDevice(data []byte) (*Device, error) {
	return readDeviceFrom(bytes.NewReader(data))
}

// WriteDeviceFile writes a Device to a JSON file.
// The file is created with 0644 permissions.
func WriteDeviceFile(d *Device, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writeDeviceTo(d, f)
}

// ReadDeviceFile reads a JSON file and returns the decoded Device.
func ReadDeviceFile(path string) (*Device, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return readDeviceFrom(f)
}

// ReadDevice decodes a JSON device from an io.Reader.
// Use ReadDeviceFile for files or pass bytes.NewReader for in-memory data.
func ReadDevice(r io.Reader) (*Device, error) {
	return readDeviceFrom(r)
}

// =============================================================================
// Internal Implementation
// =============================================================================

func writeDeviceTo(d *Device, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// readDeviceFrom decodes and normalizes a device document. Port names are
// filled from the mapping keys, missing net classes default to electrical.
func readDeviceFrom(r io.Reader) (*Device, error) {
	var d Device
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if d.Name == "" {
		return nil, fmt.Errorf("device must have a name")
	}
	for name, p := range d.Ports {
		if name == "" {
			return nil, fmt.Errorf("device %s: port with empty name", d.Name)
		}
		if p == nil {
			return nil, fmt.Errorf("device %s: port %q has no body", d.Name, name)
		}
		if p.Name != "" && p.Name != name {
			return nil, fmt.Errorf("device %s: port key %q conflicts with name %q", d.Name, name, p.Name)
		}
		p.Name = name
		if p.Class == "" {
			p.Class = ClassElectrical
		}
	}
	return &d, nil
}

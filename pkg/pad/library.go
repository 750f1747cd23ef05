package pad

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/geometry"
)

// Library holds named pad prototypes. A fresh library carries the built-in
// prototypes; a TOML file can add more and move the default.
type Library struct {
	def  string
	pads map[string]*Pad
}

// NewLibrary returns a library seeded with the built-in prototypes.
func NewLibrary() *Library {
	dc := DC()
	return &Library{def: dc.Name, pads: map[string]*Pad{dc.Name: dc}}
}

// Default returns the name of the default pad.
func (l *Library) Default() string { return l.def }

// Names returns the pad names in lexical order.
func (l *Library) Names() []string {
	names := make([]string, 0, len(l.pads))
	for name := range l.pads {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the named pad. An empty name selects the default.
func (l *Library) Get(name string) (*Pad, error) {
	if name == "" {
		name = l.def
	}
	p, ok := l.pads[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (have %s)", ErrUnknownPad, name, strings.Join(l.Names(), ", "))
	}
	return p, nil
}

// Factory returns a Source that resolves the named pad when the
// computation runs. An empty name resolves the default.
func (l *Library) Factory(name string) Source {
	return Factory(func() (*Pad, error) { return l.Get(name) })
}

// Add registers a prototype, replacing any previous pad of the same name.
func (l *Library) Add(p *Pad) {
	l.pads[p.Name] = p
}

// =============================================================================
// TOML Library Files
// =============================================================================

// Library file format:
//
//	default = "dc_wide"
//
//	[pads.dc_wide]
//	width = 150
//	height = 100
//
//	[pads.dc_wide.ports.e1]
//	x = -75
//	y = 0
//	width = 150
//	orientation = 180
//	class = "electrical"

type libraryFile struct {
	Default string              `toml:"default"`
	Pads    map[string]padEntry `toml:"pads"`
}

type padEntry struct {
	Width  float64              `toml:"width"`
	Height float64              `toml:"height"`
	Ports  map[string]portEntry `toml:"ports"`
}

type portEntry struct {
	X           float64  `toml:"x"`
	Y           float64  `toml:"y"`
	Width       float64  `toml:"width"`
	Orientation *float64 `toml:"orientation"`
	Class       string   `toml:"class"`
}

// LoadLibrary reads a TOML pad library file and merges it over the
// built-ins. File pads may override built-in names; a default set in the
// file replaces the built-in default.
func LoadLibrary(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	lib, err := ParseLibrary(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return lib, nil
}

// ParseLibrary decodes TOML pad library bytes. Decoding is strict: unknown
// keys are an error so typos never silently drop a pad.
func ParseLibrary(data []byte) (*Library, error) {
	var file libraryFile
	md, err := toml.Decode(string(data), &file)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	lib := NewLibrary()
	for name, entry := range file.Pads {
		p, err := entry.toPad(name)
		if err != nil {
			return nil, err
		}
		lib.Add(p)
	}

	if file.Default != "" {
		if _, ok := lib.pads[file.Default]; !ok {
			return nil, fmt.Errorf("%w: default %q", ErrUnknownPad, file.Default)
		}
		lib.def = file.Default
	}
	return lib, nil
}

func (e padEntry) toPad(name string) (*Pad, error) {
	if e.Width <= 0 || e.Height <= 0 {
		return nil, fmt.Errorf("pad %q: width and height must be positive", name)
	}
	if len(e.Ports) == 0 {
		return nil, fmt.Errorf("pad %q: at least one port required", name)
	}

	ports := make(map[string]*circuit.Port, len(e.Ports))
	for portName, pe := range e.Ports {
		if err := pe.validate(name, portName); err != nil {
			return nil, err
		}
		port := &circuit.Port{
			Name:        portName,
			Center:      geometry.Point{X: pe.X, Y: pe.Y},
			Width:       pe.Width,
			Orientation: pe.Orientation,
			Class:       pe.Class,
		}
		if port.Class == "" {
			port.Class = circuit.ClassElectrical
		}
		ports[portName] = port
	}

	return &Pad{
		Name:  name,
		Size:  geometry.Size{Width: e.Width, Height: e.Height},
		Ports: ports,
	}, nil
}

func (e portEntry) validate(padName, portName string) error {
	switch e.Class {
	case "", circuit.ClassElectrical, circuit.ClassOptical, circuit.ClassRF:
	default:
		return fmt.Errorf("pad %q port %q: unknown class %q", padName, portName, e.Class)
	}
	if e.Width < 0 {
		return fmt.Errorf("pad %q port %q: negative width", padName, portName)
	}
	return nil
}

package pad

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/geometry"
)

func TestDCPrototype(t *testing.T) {
	p := DC()

	if p.Name != DCName {
		t.Errorf("Name = %q, want %q", p.Name, DCName)
	}
	if p.Size.Width != DCSize || p.Size.Height != DCSize {
		t.Errorf("Size = %v, want %v square", p.Size, DCSize)
	}

	port, err := p.Port(DCPort)
	if err != nil {
		t.Fatalf("Port(%q): %v", DCPort, err)
	}
	if port.Center != (geometry.Point{X: -DCSize / 2, Y: 0}) {
		t.Errorf("port center = %v, want west edge", port.Center)
	}
	if a, ok := port.Facing(); !ok || a != 180 {
		t.Errorf("port orientation = %v/%v, want 180", a, ok)
	}
	if port.Class != circuit.ClassElectrical {
		t.Errorf("port class = %q, want electrical", port.Class)
	}
}

func TestPortUnknown(t *testing.T) {
	_, err := DC().Port("nope")
	if !errors.Is(err, ErrUnknownPort) {
		t.Errorf("err = %v, want ErrUnknownPort", err)
	}
}

func TestRefAtAnchorsPort(t *testing.T) {
	tests := []struct {
		name       string
		anchor     geometry.Point
		rotation   float64
		wantOrigin geometry.Point
		wantFacing float64
	}{
		{"no rotation", geometry.Point{X: 10, Y: 10}, 0, geometry.Point{X: 60, Y: 10}, 180},
		{"probe rotation", geometry.Point{X: 200, Y: -150}, -90, geometry.Point{X: 200, Y: -200}, 90},
		{"half turn", geometry.Point{X: 0, Y: 0}, 180, geometry.Point{X: -50, Y: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := DC().RefAt(tt.anchor, tt.rotation, DCPort)
			if err != nil {
				t.Fatalf("RefAt: %v", err)
			}

			if ref.Origin != tt.wantOrigin {
				t.Errorf("Origin = %v, want %v", ref.Origin, tt.wantOrigin)
			}
			port, ok := ref.Port(DCPort)
			if !ok {
				t.Fatal("placed ref lost its port")
			}
			if port.Center != tt.anchor {
				t.Errorf("port center = %v, want anchor %v", port.Center, tt.anchor)
			}
			if a, _ := port.Facing(); a != tt.wantFacing {
				t.Errorf("port facing = %v, want %v", a, tt.wantFacing)
			}
			if ref.Cell != DCName {
				t.Errorf("Cell = %q, want %q", ref.Cell, DCName)
			}
			if ref.ID == "" {
				t.Error("ref should have an ID")
			}
		})
	}
}

func TestRefAtUnknownPort(t *testing.T) {
	_, err := DC().RefAt(geometry.Point{}, -90, "nope")
	if !errors.Is(err, ErrUnknownPort) {
		t.Errorf("err = %v, want ErrUnknownPort", err)
	}
}

func TestRefAtFreshIDs(t *testing.T) {
	a, err := DC().RefAt(geometry.Point{}, -90, DCPort)
	if err != nil {
		t.Fatalf("RefAt: %v", err)
	}
	b, err := DC().RefAt(geometry.Point{}, -90, DCPort)
	if err != nil {
		t.Fatalf("RefAt: %v", err)
	}
	if a.ID == b.ID {
		t.Error("two placements should have distinct IDs")
	}
}

func TestSourceResolution(t *testing.T) {
	built := DC()

	tests := []struct {
		name    string
		source  Source
		wantErr bool
	}{
		{"instance", Instance(built), false},
		{"nil instance", Instance(nil), true},
		{"factory", Factory(func() (*Pad, error) { return built, nil }), false},
		{"nil factory", Factory(nil), true},
		{"factory returning nil", Factory(func() (*Pad, error) { return nil, nil }), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := tt.source.Pad()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Pad(): %v", err)
			}
			if p != built {
				t.Error("source should hand back the prototype")
			}
		})
	}
}

func TestFactoryRunsPerCall(t *testing.T) {
	calls := 0
	f := Factory(func() (*Pad, error) {
		calls++
		return DC(), nil
	})

	if _, err := f.Pad(); err != nil {
		t.Fatalf("Pad(): %v", err)
	}
	if _, err := f.Pad(); err != nil {
		t.Fatalf("Pad(): %v", err)
	}
	if calls != 2 {
		t.Errorf("factory ran %d times, want 2", calls)
	}
}

const libraryTOML = `
default = "dc_wide"

[pads.dc_wide]
width = 150
height = 100

[pads.dc_wide.ports.e1]
x = -75
y = 0
width = 150
orientation = 180

[pads.rf_probe]
width = 80
height = 120

[pads.rf_probe.ports.sig]
x = 0
y = 60
width = 40
orientation = 90
class = "rf"
`

func TestParseLibrary(t *testing.T) {
	lib, err := ParseLibrary([]byte(libraryTOML))
	if err != nil {
		t.Fatalf("ParseLibrary: %v", err)
	}

	if lib.Default() != "dc_wide" {
		t.Errorf("Default() = %q, want dc_wide", lib.Default())
	}

	names := lib.Names()
	want := []string{DCName, "dc_wide", "rf_probe"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	wide, err := lib.Get("dc_wide")
	if err != nil {
		t.Fatalf("Get(dc_wide): %v", err)
	}
	if wide.Size.Width != 150 || wide.Size.Height != 100 {
		t.Errorf("dc_wide size = %v", wide.Size)
	}
	port, err := wide.Port("e1")
	if err != nil {
		t.Fatalf("Port(e1): %v", err)
	}
	if port.Class != circuit.ClassElectrical {
		t.Errorf("e1 class = %q, want electrical default", port.Class)
	}

	probe, err := lib.Get("rf_probe")
	if err != nil {
		t.Fatalf("Get(rf_probe): %v", err)
	}
	sig, err := probe.Port("sig")
	if err != nil {
		t.Fatalf("Port(sig): %v", err)
	}
	if sig.Class != circuit.ClassRF {
		t.Errorf("sig class = %q, want rf", sig.Class)
	}
}

func TestParseLibraryDefaultsToBuiltin(t *testing.T) {
	lib, err := ParseLibrary([]byte("[pads.x]\nwidth = 10\nheight = 10\n[pads.x.ports.p]\nx = 0\ny = 5\n"))
	if err != nil {
		t.Fatalf("ParseLibrary: %v", err)
	}
	if lib.Default() != DCName {
		t.Errorf("Default() = %q, want built-in %q", lib.Default(), DCName)
	}
	if _, err := lib.Get(""); err != nil {
		t.Errorf("Get(\"\") should resolve the default: %v", err)
	}
}

func TestParseLibraryRejects(t *testing.T) {
	tests := []struct {
		name string
		toml string
		want string
	}{
		{"unknown key", "speling = 1", "unknown keys"},
		{"zero size", "[pads.x]\nwidth = 0\nheight = 10\n[pads.x.ports.p]\nx = 0\ny = 0", "must be positive"},
		{"no ports", "[pads.x]\nwidth = 10\nheight = 10", "at least one port"},
		{"bad class", "[pads.x]\nwidth = 10\nheight = 10\n[pads.x.ports.p]\nx = 0\ny = 0\nclass = \"thermal\"", "unknown class"},
		{"missing default", "default = \"ghost\"\n[pads.x]\nwidth = 10\nheight = 10\n[pads.x.ports.p]\nx = 0\ny = 0", "default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLibrary([]byte(tt.toml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestLoadLibrary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pads.toml")
	if err := os.WriteFile(path, []byte(libraryTOML), 0o644); err != nil {
		t.Fatal(err)
	}

	lib, err := LoadLibrary(path)
	if err != nil {
		t.Fatalf("LoadLibrary: %v", err)
	}
	if _, err := lib.Get("rf_probe"); err != nil {
		t.Errorf("Get(rf_probe): %v", err)
	}

	if _, err := LoadLibrary(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for a missing file")
	}
}

func TestLibraryFactory(t *testing.T) {
	lib := NewLibrary()

	p, err := lib.Factory("").Pad()
	if err != nil {
		t.Fatalf("Factory(\"\").Pad(): %v", err)
	}
	if p.Name != DCName {
		t.Errorf("resolved %q, want default %q", p.Name, DCName)
	}

	if _, err := lib.Factory("ghost").Pad(); !errors.Is(err, ErrUnknownPad) {
		t.Errorf("err = %v, want ErrUnknownPad", err)
	}
}

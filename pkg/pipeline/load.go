package pipeline

import (
	"bytes"

	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/io"
	"github.com/dominauta/padring/pkg/pad"
	"github.com/dominauta/padring/pkg/route"
)

// Load reads and validates the device from the configured input. Inline
// device JSON goes through the same validation as a file.
func Load(opts Options) (*circuit.Device, error) {
	if len(opts.Device) > 0 {
		return io.ReadDevice(bytes.NewReader(opts.Device))
	}
	return io.ImportDevice(opts.DevicePath)
}

// resolveSource picks the pad prototype source for a run. Precedence:
// the explicit runtime Source, then the named pad from a TOML library,
// then the built-in library.
func resolveSource(opts Options) (pad.Source, error) {
	if opts.Source != nil {
		return opts.Source, nil
	}
	if opts.PadLibrary != "" {
		lib, err := pad.LoadLibrary(opts.PadLibrary)
		if err != nil {
			return nil, err
		}
		return lib.Factory(opts.Pad), nil
	}
	return pad.NewLibrary().Factory(opts.Pad), nil
}

// resolveRouter picks the router for a run. The electrical Manhattan
// router is the default, built fresh so lane offsets start at zero.
func resolveRouter(opts Options) route.Router {
	if opts.Router != nil {
		return opts.Router
	}
	return &route.Electrical{BendRadius: opts.BendRadius, Separation: opts.Separation}
}

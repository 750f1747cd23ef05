package pipeline

import (
	"fmt"

	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/render"
	"github.com/dominauta/padring/pkg/render/netlist"
)

// Render generates output artifacts in the requested formats.
//
// SVG, PNG, and PDF draw the board view; DOT (and formats derived from
// it) would use the netlist view, see [RenderNetlist]. JSON serializes
// the layout itself.
func Render(dev *circuit.Device, l *circuit.Layout, opts Options) (map[string][]byte, error) {
	svgOpts := buildSVGOptions(opts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatSVG:
			data = render.RenderSVG(dev, l, svgOpts...)
		case FormatPNG:
			data, err = render.ToPNG(render.RenderSVG(dev, l, svgOpts...), opts.Scale)
		case FormatPDF:
			data, err = render.ToPDF(render.RenderSVG(dev, l, svgOpts...))
		case FormatJSON:
			data, err = circuit.MarshalLayout(l)
		case FormatDOT:
			data = []byte(netlist.ToDOT(dev, l, netlist.Options{Detailed: opts.Detailed}))
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// RenderNetlist generates netlist diagram artifacts instead of the board
// view: the DOT graph of the port-to-pad pairing, rasterized through
// Graphviz for image formats.
func RenderNetlist(dev *circuit.Device, l *circuit.Layout, opts Options) (map[string][]byte, error) {
	dot := netlist.ToDOT(dev, l, netlist.Options{Detailed: opts.Detailed})
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = netlist.RenderSVG(dot)
		case FormatPNG:
			data, err = netlist.RenderPNG(dot, opts.Scale)
		case FormatPDF:
			data, err = netlist.RenderPDF(dot)
		case FormatJSON:
			data, err = circuit.MarshalLayout(l)
		default:
			return nil, fmt.Errorf("unsupported netlist format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render netlist %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// RenderFromLayoutData renders output from serialized layout data.
// This is useful when the layout was computed elsewhere (e.g., cached).
func RenderFromLayoutData(dev *circuit.Device, layoutData []byte, opts Options) (map[string][]byte, error) {
	l, err := circuit.UnmarshalLayout(layoutData)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return Render(dev, l, opts)
}

// buildSVGOptions builds board SVG rendering options.
func buildSVGOptions(opts Options) []render.SVGOption {
	svgOpts := []render.SVGOption{
		render.WithScale(opts.Scale),
		render.WithTheme(opts.Theme),
	}
	if opts.ShowLabels {
		svgOpts = append(svgOpts, render.WithLabels())
	}
	return svgOpts
}

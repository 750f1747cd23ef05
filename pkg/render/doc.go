// Package render turns computed fan-out layouts into visual artifacts.
//
// # Overview
//
// This package contains the rendering surface that transforms a device and
// its computed layout into shareable outputs. It provides:
//
//   - Board SVG rendering of the device, pads, and routes ([RenderSVG])
//   - Generic format conversion (SVG to PDF/PNG) via [ToPDF] and [ToPNG]
//   - Connectivity diagrams (in the [netlist] subpackage)
//
// # Board SVG
//
// [RenderSVG] draws the device outline, its ports, the placed pad array,
// and the wire routes to scale. Options follow the functional-option
// pattern:
//
//	svg := render.RenderSVG(dev, layout, render.WithLabels(), render.WithTheme("dark"))
//
// Layout coordinates grow north; SVG y grows down. The renderer flips the
// vertical axis so the pad array appears below the device, matching the
// physical chip orientation.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := render.RenderSVG(dev, layout)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Connectivity Diagrams
//
// The [netlist] subpackage renders the port-to-pad pairing as a directed
// graph using Graphviz. Device ports appear as ellipses wired to their pad
// slots.
//
//	dot := netlist.ToDOT(dev, layout, netlist.Options{})
//	svg, err := netlist.RenderSVG(dot)
//
// [netlist]: github.com/dominauta/padring/pkg/render/netlist
package render

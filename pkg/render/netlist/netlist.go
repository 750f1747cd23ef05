// Package netlist renders the port-to-pad pairing of a layout as a
// Graphviz node-link diagram: device ports on one rank, placed pads on
// the other, with one edge per routed pair.
package netlist

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/render"
)

// Options configures netlist diagram rendering.
type Options struct {
	// Detailed includes coordinates and net class in node labels.
	// When false, only the port name and pad slot are shown.
	Detailed bool
}

// ToDOT converts a device and its layout to Graphviz DOT format. Ports
// and pads form the two ranks of a bipartite graph; unpaired ports are
// still drawn so a partial selection stays visible.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(dev *circuit.Device, l *circuit.Layout, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=1.0;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	buf.WriteString("  { rank=source;\n")
	for _, name := range dev.PortNames() {
		p := dev.Ports[name]
		fmt.Fprintf(&buf, "    %q [%s];\n", portNode(name), strings.Join(portAttrs(name, p, opts.Detailed), ", "))
	}
	buf.WriteString("  }\n")

	slots := padSlots(l)
	if len(slots) > 0 {
		buf.WriteString("\n  { rank=sink;\n")
		for _, s := range slots {
			fmt.Fprintf(&buf, "    %q [%s];\n", padNode(s.id), strings.Join(padAttrs(s, opts.Detailed), ", "))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("\n")
	if l != nil {
		for _, pair := range l.Pairs {
			fmt.Fprintf(&buf, "  %q -> %q;\n", portNode(pair.Port), padNode(pair.Pad))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// padSlot pairs a pad ref with its slot number for labelling.
type padSlot struct {
	id   string
	slot int
	ref  *circuit.Ref
}

func padSlots(l *circuit.Layout) []padSlot {
	if l == nil {
		return nil
	}
	slotOf := make(map[string]int, len(l.Pairs))
	for _, pair := range l.Pairs {
		slotOf[pair.Pad] = pair.Slot
	}
	pads := l.Pads()
	slots := make([]padSlot, len(pads))
	for i, ref := range pads {
		slots[i] = padSlot{id: ref.ID, slot: slotOf[ref.ID], ref: ref}
	}
	return slots
}

func portNode(name string) string { return "port:" + name }

func padNode(id string) string { return "pad:" + id }

func portAttrs(name string, p *circuit.Port, detailed bool) []string {
	label := name
	if detailed {
		parts := []string{fmt.Sprintf("(%.1f, %.1f)", p.Center.X, p.Center.Y)}
		if p.Class != "" {
			parts = append(parts, p.Class)
		}
		label = name + "\n" + strings.Join(parts, "\n")
	}
	return []string{fmt.Sprintf("label=%q", label)}
}

func padAttrs(s padSlot, detailed bool) []string {
	label := fmt.Sprintf("pad %d", s.slot)
	if detailed {
		label += fmt.Sprintf("\n%s\n(%.1f, %.1f)", s.ref.Cell, s.ref.Origin.X, s.ref.Origin.Y)
	}
	return []string{fmt.Sprintf("label=%q", label), "fillcolor=lightyellow"}
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}

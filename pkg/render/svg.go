package render

import (
	"bytes"
	"fmt"

	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/geometry"
)

// margin is the blank border around the drawn content, in layout units.
const margin = 40.0

// Theme holds the color palette for board rendering.
type Theme struct {
	Background string
	Outline    string
	OutlineFil string
	Pad        string
	PadStroke  string
	Wire       string
	Port       string
	Label      string
}

// Built-in themes keyed by name.
var Themes = map[string]Theme{
	"light": {
		Background: "#ffffff",
		Outline:    "#1f2937",
		OutlineFil: "#eef2f7",
		Pad:        "#fbbf24",
		PadStroke:  "#b45309",
		Wire:       "#2563eb",
		Port:       "#dc2626",
		Label:      "#374151",
	},
	"dark": {
		Background: "#111827",
		Outline:    "#9ca3af",
		OutlineFil: "#1f2937",
		Pad:        "#d97706",
		PadStroke:  "#fbbf24",
		Wire:       "#60a5fa",
		Port:       "#f87171",
		Label:      "#d1d5db",
	},
}

// SVGOption configures board SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale  float64
	theme  Theme
	labels bool
}

// WithScale sets the pixels-per-layout-unit factor. Default is 1.
func WithScale(s float64) SVGOption {
	return func(r *svgRenderer) {
		if s > 0 {
			r.scale = s
		}
	}
}

// WithTheme selects a named theme. Unknown names keep the light theme.
func WithTheme(name string) SVGOption {
	return func(r *svgRenderer) {
		if t, ok := Themes[name]; ok {
			r.theme = t
		}
	}
}

// WithLabels enables port name and device name labels.
func WithLabels() SVGOption {
	return func(r *svgRenderer) { r.labels = true }
}

// RenderSVG draws the device, its ports, the placed pads, and the routes
// of one layout to scale. A nil layout renders the bare device.
func RenderSVG(dev *circuit.Device, l *circuit.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{scale: 1, theme: Themes["light"]}
	for _, opt := range opts {
		opt(&r)
	}

	box := contentBox(dev, l).Pad(margin)
	w := box.Width() * r.scale
	h := box.Height() * r.scale

	// Layout y grows north, SVG y grows down.
	px := func(p geometry.Point) (float64, float64) {
		return (p.X - box.Min.X) * r.scale, (box.Max.Y - p.Y) * r.scale
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", r.theme.Background)

	r.renderOutline(&buf, dev, px)
	if l != nil {
		r.renderWires(&buf, l, px)
		r.renderPads(&buf, l, px)
	}
	r.renderPorts(&buf, dev, px)

	if r.labels {
		r.renderLabels(&buf, dev, l, px)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// contentBox is the world-space extent of everything drawn.
func contentBox(dev *circuit.Device, l *circuit.Layout) geometry.Rect {
	box := dev.BBox()
	if l == nil {
		return box
	}
	for _, ref := range l.Pads() {
		box = box.Union(ref.BBox())
	}
	for _, ref := range l.Elements {
		box = box.Union(ref.BBox())
	}
	return box
}

func (r *svgRenderer) renderOutline(buf *bytes.Buffer, dev *circuit.Device, px func(geometry.Point) (float64, float64)) {
	x, y := px(geometry.Point{X: dev.Outline.Min.X, Y: dev.Outline.Max.Y})
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
		x, y, dev.Outline.Width()*r.scale, dev.Outline.Height()*r.scale, r.theme.OutlineFil, r.theme.Outline)
}

func (r *svgRenderer) renderWires(buf *bytes.Buffer, l *circuit.Layout, px func(geometry.Point) (float64, float64)) {
	for _, ref := range l.Elements {
		if !ref.IsWire() || len(ref.Path) < 2 {
			continue
		}
		var pts bytes.Buffer
		for i, p := range ref.Path {
			if i > 0 {
				pts.WriteByte(' ')
			}
			x, y := px(p)
			fmt.Fprintf(&pts, "%.1f,%.1f", x, y)
		}
		width := ref.Width * r.scale
		if width <= 0 {
			width = r.scale
		}
		fmt.Fprintf(buf, `  <polyline class="wire" points="%s" fill="none" stroke="%s" stroke-width="%.1f" stroke-linecap="round"/>`+"\n",
			pts.String(), r.theme.Wire, width)
	}
}

func (r *svgRenderer) renderPads(buf *bytes.Buffer, l *circuit.Layout, px func(geometry.Point) (float64, float64)) {
	for _, ref := range l.Pads() {
		if len(ref.Path) < 3 {
			continue
		}
		var pts bytes.Buffer
		for i, p := range ref.Path {
			if i > 0 {
				pts.WriteByte(' ')
			}
			x, y := px(p)
			fmt.Fprintf(&pts, "%.1f,%.1f", x, y)
		}
		fmt.Fprintf(buf, `  <polygon class="pad" id="pad-%s" points="%s" fill="%s" stroke="%s" stroke-width="1.5"/>`+"\n",
			ref.ID, pts.String(), r.theme.Pad, r.theme.PadStroke)
	}
}

func (r *svgRenderer) renderPorts(buf *bytes.Buffer, dev *circuit.Device, px func(geometry.Point) (float64, float64)) {
	for _, name := range dev.PortNames() {
		p := dev.Ports[name]
		x, y := px(p.Center)
		radius := 3 * r.scale
		if p.Width > 0 {
			radius = p.Width / 2 * r.scale
		}
		fmt.Fprintf(buf, `  <circle class="port" cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
			x, y, radius, r.theme.Port)
	}
}

func (r *svgRenderer) renderLabels(buf *bytes.Buffer, dev *circuit.Device, l *circuit.Layout, px func(geometry.Point) (float64, float64)) {
	fontSize := 10 * r.scale

	cx, cy := px(dev.Outline.Center())
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" text-anchor="middle" fill="%s">%s</text>`+"\n",
		cx, cy, fontSize*1.4, r.theme.Label, escape(dev.Name))

	for _, name := range dev.PortNames() {
		p := dev.Ports[name]
		x, y := px(p.Center)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" text-anchor="middle" fill="%s">%s</text>`+"\n",
			x, y-5*r.scale, fontSize, r.theme.Label, escape(name))
	}

	if l == nil {
		return
	}
	for _, pair := range l.Pairs {
		ref, ok := l.PadByID(pair.Pad)
		if !ok {
			continue
		}
		x, y := px(ref.Origin)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" text-anchor="middle" fill="%s">%d</text>`+"\n",
			x, y, fontSize, r.theme.Label, pair.Slot)
	}
}

// escape replaces the XML-significant characters in label text.
func escape(s string) string {
	var buf bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

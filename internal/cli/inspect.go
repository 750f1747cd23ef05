package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/geometry"
	pkgio "github.com/dominauta/padring/pkg/io"
)

// inspectCommand creates the inspect command for summarizing a device.
func (c *CLI) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [device.json]",
		Short: "Summarize a device's ports and edges",
		Long: `Summarize a device's ports and edges.

The inspect command reads a device description and prints its outline,
the per-class port counts, and every port with the boundary edge it is
assigned to. Useful for checking a device file before running 'fanout'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.Context(), args[0])
		},
	}
}

// edgeNames maps the snapped directions to display names.
var edgeNames = map[geometry.Direction]string{
	geometry.North: "north",
	geometry.South: "south",
	geometry.East:  "east",
	geometry.West:  "west",
}

// runInspect loads the device and prints its summary.
func runInspect(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)

	prog := newProgress(logger)
	dev, err := pkgio.ImportDevice(path)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Loaded %s", path))

	box := dev.BBox()

	printKeyValue("Device", dev.Name)
	printKeyValue("Outline", fmt.Sprintf("%.6g × %.6g",
		dev.Outline.Max.X-dev.Outline.Min.X, dev.Outline.Max.Y-dev.Outline.Min.Y))
	printKeyValue("Ports", fmt.Sprintf("%d", len(dev.Ports)))

	counts := dev.ClassCounts()
	classes := make([]string, 0, len(counts))
	for class := range counts {
		classes = append(classes, class)
	}
	sort.Strings(classes)
	for _, class := range classes {
		printKeyValue("  "+class, fmt.Sprintf("%d", counts[class]))
	}

	printNewline()
	for _, name := range dev.PortNames() {
		p := dev.Ports[name]
		edge := edgeNames[circuit.Classify(p, box)]
		class := p.Class
		if class == "" {
			class = circuit.ClassElectrical
		}
		printDetail("%-16s %-10s %-6s (%.6g, %.6g)", name, class, edge, p.Center.X, p.Center.Y)
	}

	return nil
}

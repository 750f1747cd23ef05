package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dominauta/padring/pkg/circuit"
	pkgio "github.com/dominauta/padring/pkg/io"
	"github.com/dominauta/padring/pkg/pipeline"
)

// renderCommand creates the render command for re-rendering saved layouts.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		noCache    bool
	)
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "render [device.json] [layout.json]",
		Short: "Render outputs from a saved layout",
		Long: `Render outputs from a saved layout.

The render command takes a device description and a layout file (produced
by 'fanout -f json') and renders it to the requested formats without
recomputing placement. The layout contains all pad and route geometry,
so this step is purely about rendering.

Results are cached locally for faster subsequent runs.

Use 'fanout' to go directly from a device to visual output.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateTheme(opts.Theme); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], args[1], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "render scale factor")
	cmd.Flags().StringVar(&opts.Theme, "theme", opts.Theme, "render theme: light (default), dark")
	cmd.Flags().BoolVar(&opts.ShowLabels, "labels", opts.ShowLabels, "draw port and pad labels")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", opts.Detailed, "detailed netlist node labels (dot)")

	return cmd
}

// runRender loads the device and layout and renders the artifacts.
func (c *CLI) runRender(ctx context.Context, devicePath, layoutPath string, opts pipeline.Options, output string, noCache bool) error {
	dev, err := pkgio.ImportDevice(devicePath)
	if err != nil {
		return fmt.Errorf("load device %s: %w", devicePath, err)
	}
	layout, err := circuit.ReadLayoutFile(layoutPath)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", layoutPath, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", layoutPath))
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, dev, layout, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()

	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		input:     layoutPath,
		output:    output,
		cacheHit:  cacheHit,
		padCount:  layout.PadCount(),
		routes:    layout.RouteCount(),
	})
}

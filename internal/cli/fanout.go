package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dominauta/padring/pkg/pipeline"
)

// fanoutCommand creates the fanout command for computing pad placements.
func (c *CLI) fanoutCommand() *cobra.Command {
	var (
		formatsStr  string
		output      string
		noCache     bool
		rotation    float64
		maxBaseline float64
		labelsStr   string
		excludedStr string
	)
	opts := pipeline.Options{}
	setCLIDefaults(&opts)

	cmd := &cobra.Command{
		Use:   "fanout [device.json]",
		Short: "Compute pad placement and routing for a device",
		Long: `Compute pad placement and routing for a device.

The fanout command reads a device description, selects its electrical
boundary ports, places a pad array below the device, and routes every
selected port to its pad. Outputs are written next to the input file
unless --output is given.

Results are cached locally for faster subsequent runs.

Examples:
  padring fanout amp.json                          # SVG next to the input
  padring fanout amp.json -f svg,json,dot          # multiple formats
  padring fanout amp.json --rows 2 --spacing 120   # tighter two-row array
  padring fanout amp.json --pad rf --library pads.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			if err := pipeline.ValidateTheme(opts.Theme); err != nil {
				return err
			}
			opts.PadRotation = &rotation
			if cmd.Flags().Changed("max-baseline") {
				opts.MaxBaseline = &maxBaseline
			}
			if labelsStr != "" {
				opts.Labels = strings.Split(labelsStr, ",")
			}
			if excludedStr != "" {
				opts.Excluded = strings.Split(excludedStr, ",")
			}
			return c.runFanout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")

	// Placement flags
	cmd.Flags().Float64Var(&opts.Spacing, "spacing", opts.Spacing, "center-to-center pad pitch")
	cmd.Flags().Float64Var(&opts.FanoutLength, "fanout", opts.FanoutLength, "clearance between device and pad array")
	cmd.Flags().Float64Var(&opts.Separation, "sep", opts.Separation, "vertical budget per route lane")
	cmd.Flags().Float64Var(&opts.BendRadius, "bend", opts.BendRadius, "route corner radius")
	cmd.Flags().IntVar(&opts.Rows, "rows", opts.Rows, "number of pad rows")
	cmd.Flags().Float64Var(&rotation, "rotation", pipeline.DefaultPadRotation, "pad rotation in degrees")
	cmd.Flags().Float64Var(&maxBaseline, "max-baseline", 0, "clamp the pad row baseline to this y")
	cmd.Flags().Float64Var(&opts.XPadOffset, "x-offset", opts.XPadOffset, "horizontal shift of the pad array")
	cmd.Flags().StringVar(&labelsStr, "ports", "", "only fan out these ports (comma-separated)")
	cmd.Flags().StringVar(&excludedStr, "exclude", "", "skip these ports (comma-separated)")

	// Pad flags
	cmd.Flags().StringVar(&opts.Pad, "pad", opts.Pad, "pad prototype name")
	cmd.Flags().StringVar(&opts.PadLibrary, "library", "", "TOML pad library file")
	cmd.Flags().StringVar(&opts.PadPort, "pad-port", opts.PadPort, "anchor port on the pad prototype")

	// Render flags
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", opts.Scale, "render scale factor")
	cmd.Flags().StringVar(&opts.Theme, "theme", opts.Theme, "render theme: light (default), dark")
	cmd.Flags().BoolVar(&opts.ShowLabels, "labels", opts.ShowLabels, "draw port and pad labels")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", opts.Detailed, "detailed netlist node labels (dot)")

	return cmd
}

// runFanout executes the full pipeline and writes the requested artifacts.
func (c *CLI) runFanout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.DevicePath = input
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Fanning out %s...", input))
	spinner.Start()

	res, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Fan-out failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return writeArtifacts(artifactWriteParams{
		artifacts: res.Artifacts,
		formats:   opts.Formats,
		input:     input,
		output:    output,
		cacheHit:  res.CacheInfo.FanoutHit && res.CacheInfo.RenderHit,
		padCount:  res.Stats.PadCount,
		routes:    res.Stats.RouteCount,
	})
}

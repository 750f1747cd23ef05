// Package pipeline provides the core fan-out pipeline for padring.
//
// This package implements the complete load → fanout → render pipeline
// that can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and validate the device description
//  2. Fanout: Place the pad array and route the selected ports to it
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON, DOT)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    DevicePath: "amp.json",
//	    Formats:    []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Load only
//	dev, err := runner.Load(ctx, opts)
//
//	// Fan-out with an existing device
//	layout, err := runner.ComputeFanout(ctx, dev, opts)
//
//	// Render with an existing layout
//	artifacts, err := runner.Render(ctx, dev, layout, opts)
package pipeline

import (
	"encoding/json"
	stdio "io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dominauta/padring/pkg/cache"
	"github.com/dominauta/padring/pkg/circuit"
	"github.com/dominauta/padring/pkg/errors"
	"github.com/dominauta/padring/pkg/fanout"
	"github.com/dominauta/padring/pkg/pad"
	"github.com/dominauta/padring/pkg/render"
	"github.com/dominauta/padring/pkg/route"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultSpacing is the center-to-center pad pitch within a row.
	DefaultSpacing = 150.0

	// DefaultFanoutLength is the clearance between the device bounding
	// box and the pad array.
	DefaultFanoutLength = 20.0

	// DefaultSeparation is the vertical budget per route lane.
	DefaultSeparation = 4.0

	// DefaultBendRadius is the route corner radius.
	DefaultBendRadius = 0.1

	// DefaultRows is the number of pad rows.
	DefaultRows = 1

	// DefaultPadRotation is applied to every placed pad. -90 brings the
	// built-in pad's west port to face the device.
	DefaultPadRotation = -90.0

	// DefaultPadPort anchors placed pads; it is the single port of the
	// built-in DC pad.
	DefaultPadPort = pad.DCPort

	// DefaultScale is the render scale factor.
	DefaultScale = 1.0

	// DefaultTheme is the default render theme.
	DefaultTheme = "light"
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the fan-out pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options. Exactly one of DevicePath and Device must be set.
	DevicePath string          `json:"device_path,omitempty"`
	Device     json.RawMessage `json:"device,omitempty"` // inline device JSON
	Refresh    bool            `json:"refresh,omitempty"`

	// Fan-out options
	Spacing       float64  `json:"spacing,omitempty"`
	FanoutLength  float64  `json:"fanout_length,omitempty"`
	MaxBaseline   *float64 `json:"max_baseline,omitempty"`
	Separation    float64  `json:"separation,omitempty"`
	BendRadius    float64  `json:"bend_radius,omitempty"`
	Rows          int      `json:"rows,omitempty"`
	Pad           string   `json:"pad,omitempty"`          // prototype name within the library
	PadLibrary    string   `json:"pad_library,omitempty"`  // TOML library path
	PadPort       string   `json:"pad_port,omitempty"`     // anchor port on the prototype
	PadRotation   *float64 `json:"pad_rotation,omitempty"` // nil means the -90 default
	XPadOffset    float64  `json:"x_pad_offset,omitempty"`
	Labels        []string `json:"labels,omitempty"`
	Excluded      []string `json:"excluded,omitempty"`
	ConnectionIDs []string `json:"connection_ids,omitempty"`
	SlotIndices   []int    `json:"slot_indices,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Scale      float64  `json:"scale,omitempty"`
	Theme      string   `json:"theme,omitempty"`
	ShowLabels bool     `json:"show_labels,omitempty"`
	Detailed   bool     `json:"detailed,omitempty"` // detailed netlist node labels

	// Runtime options (not serialized)
	Logger *log.Logger  `json:"-"`
	Source pad.Source   `json:"-"` // overrides Pad/PadLibrary when set
	Router route.Router `json:"-"` // overrides the electrical router when set

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Device is the loaded device.
	Device *circuit.Device

	// DeviceHash is the content hash of the device.
	DeviceHash string

	// Layout is the computed fan-out layout.
	Layout *circuit.Layout

	// Ordered is the pairing order of the selected port names.
	Ordered []string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	PortCount  int
	PadCount   int
	RouteCount int
	LoadTime   time.Duration
	FanoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	FanoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateTheme checks that a theme is valid.
func ValidateTheme(theme string) error {
	if _, ok := render.Themes[theme]; !ok {
		return errors.New(errors.ErrCodeInvalidInput,
			"invalid theme: %q (must be one of: light, dark)", theme)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for
// the full pipeline. This method is idempotent - calling it multiple times
// has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForFanout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks required fields for loading.
func (o *Options) ValidateForLoad() error {
	if o.DevicePath == "" && len(o.Device) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "device_path or device is required")
	}
	if o.DevicePath != "" && len(o.Device) > 0 {
		return errors.New(errors.ErrCodeInvalidInput, "device_path and device are mutually exclusive")
	}
	if o.DevicePath != "" {
		if err := errors.ValidatePath(o.DevicePath); err != nil {
			return err
		}
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(stdio.Discard, log.Options{})
	}
	return nil
}

// SetFanoutDefaults sets default values for fan-out computation.
func (o *Options) SetFanoutDefaults() {
	if o.Spacing == 0 {
		o.Spacing = DefaultSpacing
	}
	if o.FanoutLength == 0 {
		o.FanoutLength = DefaultFanoutLength
	}
	if o.Separation == 0 {
		o.Separation = DefaultSeparation
	}
	if o.BendRadius == 0 {
		o.BendRadius = DefaultBendRadius
	}
	if o.Rows == 0 {
		o.Rows = DefaultRows
	}
	if o.PadRotation == nil {
		rot := DefaultPadRotation
		o.PadRotation = &rot
	}
	if o.PadPort == "" {
		o.PadPort = DefaultPadPort
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(stdio.Discard, log.Options{})
	}
}

// ValidateForFanout validates and sets defaults for fan-out computation.
func (o *Options) ValidateForFanout() error {
	o.SetFanoutDefaults()
	if o.Rows < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "rows must be at least 1, got %d", o.Rows)
	}
	if o.PadLibrary != "" {
		if err := errors.ValidatePath(o.PadLibrary); err != nil {
			return err
		}
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(stdio.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateTheme(o.Theme)
}

// FanoutOptions converts the pipeline options to placement-core options.
// Call after ValidateForFanout so defaults are in place.
func (o *Options) FanoutOptions() fanout.Options {
	rotation := DefaultPadRotation
	if o.PadRotation != nil {
		rotation = *o.PadRotation
	}
	return fanout.Options{
		Spacing:       o.Spacing,
		FanoutLength:  o.FanoutLength,
		MaxBaseline:   o.MaxBaseline,
		Separation:    o.Separation,
		BendRadius:    o.BendRadius,
		Rows:          o.Rows,
		PadPort:       o.PadPort,
		PadRotation:   rotation,
		XPadOffset:    o.XPadOffset,
		Labels:        o.Labels,
		Excluded:      o.Excluded,
		ConnectionIDs: o.ConnectionIDs,
		SlotIndices:   o.SlotIndices,
	}
}

// LayoutKeyOpts returns cache key options for fan-out computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	rotation := DefaultPadRotation
	if o.PadRotation != nil {
		rotation = *o.PadRotation
	}
	return cache.LayoutKeyOpts{
		Spacing:       o.Spacing,
		FanoutLength:  o.FanoutLength,
		MaxBaseline:   o.MaxBaseline,
		Separation:    o.Separation,
		BendRadius:    o.BendRadius,
		Rows:          o.Rows,
		Pad:           o.Pad,
		PadPort:       o.PadPort,
		PadRotation:   rotation,
		XPadOffset:    o.XPadOffset,
		Labels:        o.Labels,
		Excluded:      o.Excluded,
		ConnectionIDs: o.ConnectionIDs,
		SlotIndices:   o.SlotIndices,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:     format,
		Scale:      o.Scale,
		Theme:      o.Theme,
		ShowLabels: o.ShowLabels,
	}
}

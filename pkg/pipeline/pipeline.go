// Package pipeline provides the draw → render → write pipeline for vonneumann.
//
// The CLI (and any other front end) builds an [Options] value and hands it to
// a [Runner]. By centralizing this logic, every entry point validates input,
// names files, and reports results the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Draw: walk the ordinal with [ordinal.Draw] onto a recording [sink.Scene]
//  2. Render: turn the scene into artifacts for every (view, format) pair
//  3. Write: store the artifacts under OutputDir, replacing older files
//
// Render and write run inside the scene's export callback, so a failed write
// is reported as a failed draw.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    N:         7,
//	    Predicate: predicate.NamePrimeOrEven,
//	    Formats:   []string{"svg", "png"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Files)
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	vnerrors "github.com/matzehuels/vonneumann/pkg/errors"
	"github.com/matzehuels/vonneumann/pkg/ordinal"
	"github.com/matzehuels/vonneumann/pkg/predicate"
	"github.com/matzehuels/vonneumann/pkg/render"
	"github.com/matzehuels/vonneumann/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and library callers
// =============================================================================

const (
	// DefaultMaxValue caps n for callers that do not set MaxValue.
	// Drawing 16 already produces 65536 circles.
	DefaultMaxValue = 16

	// DefaultSize is the default output edge length in pixels.
	DefaultSize = 800

	// DefaultScale is the rasterization scale for node-link PNGs.
	DefaultScale = 2.0

	// DefaultOutputDir is where files go when OutputDir is empty.
	DefaultOutputDir = "."

	// MaxSize is the largest accepted output edge length in pixels.
	MaxSize = sink.MaxSize

	// MaxScale is the largest accepted node-link rasterization scale.
	MaxScale = 16.0
)

// customPredicate names a caller-supplied Pred in logs.
const customPredicate = "custom"

// Visualization types.
const (
	VizTypeNested   = "nested"
	VizTypeNodelink = "nodelink"
)

// DefaultVizType is the default visualization type.
const DefaultVizType = VizTypeNested

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

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeNested:   true,
	VizTypeNodelink: true,
}

// vizFormats lists the formats each visualization type can produce.
var vizFormats = map[string][]string{
	VizTypeNested:   {FormatSVG, FormatPNG, FormatPDF, FormatJSON},
	VizTypeNodelink: {FormatSVG, FormatPNG, FormatPDF, FormatDOT},
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Draw options
	N         int             `json:"n"`
	Predicate string          `json:"predicate,omitempty"`
	Palette   ordinal.Palette `json:"palette"`
	MaxValue  int             `json:"max_value,omitempty"` // negative disables the limit

	// Render options
	VizTypes []string `json:"viz_types,omitempty"`
	Formats  []string `json:"formats,omitempty"`
	Size     int      `json:"size,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // node-link labels show depth and state

	// Write options
	OutputDir string `json:"output_dir,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger       `json:"-"`
	Pred   ordinal.Predicate `json:"-"` // overrides Predicate when set

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Draw confirms what was drawn.
	Draw ordinal.Result

	// Files lists written paths in render order.
	Files []string

	// Artifacts contains rendered outputs keyed by file name.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Circles    int
	MaxDepth   int
	WalkTime   time.Duration
	RenderTime time.Duration
	WriteTime  time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return vnerrors.New(vnerrors.ErrCodeInvalidFormat,
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

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return vnerrors.New(vnerrors.ErrCodeInvalidVizType,
			"invalid viz type: %q (must be one of: nested, nodelink)", vizType)
	}
	return nil
}

// Supports reports whether vizType can be rendered as format.
func Supports(vizType, format string) bool {
	return slices.Contains(vizFormats[vizType], format)
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks every field and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForDraw(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForDraw checks the value, predicate, and palette, applying defaults.
func (o *Options) ValidateForDraw() error {
	if err := vnerrors.ValidateValue(o.N); err != nil {
		return err
	}
	if o.MaxValue == 0 {
		o.MaxValue = DefaultMaxValue
	}
	if err := vnerrors.ValidateValueLimit(o.N, o.MaxValue); err != nil {
		return err
	}

	switch {
	case o.Pred != nil && o.Predicate == "":
		o.Predicate = customPredicate
	case o.Pred == nil:
		p, err := predicate.Lookup(o.Predicate)
		if err != nil {
			return err
		}
		o.Pred = p
		if o.Predicate == "" {
			o.Predicate = predicate.DefaultName
		}
	}

	o.setPaletteDefaults()
	if err := render.ValidatePalette(o.Palette); err != nil {
		return err
	}

	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetRenderDefaults sets default values for rendering and writing.
func (o *Options) SetRenderDefaults() {
	if len(o.VizTypes) == 0 {
		o.VizTypes = []string{DefaultVizType}
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Size <= 0 {
		o.Size = DefaultSize
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
// Every requested format must be supported by at least one requested view.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if o.Size > MaxSize {
		return vnerrors.New(vnerrors.ErrCodeInvalidArgument, "size %d exceeds maximum %d", o.Size, MaxSize)
	}
	if !(o.Scale <= MaxScale) {
		return vnerrors.New(vnerrors.ErrCodeInvalidArgument, "scale %v exceeds maximum %v", o.Scale, MaxScale)
	}
	for _, v := range o.VizTypes {
		if err := ValidateVizType(v); err != nil {
			return err
		}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	for _, f := range o.Formats {
		if !slices.ContainsFunc(o.VizTypes, func(v string) bool { return Supports(v, f) }) {
			return vnerrors.New(vnerrors.ErrCodeUnsupported,
				"format %q is not available for %s", f, strings.Join(o.VizTypes, ", "))
		}
	}
	return vnerrors.ValidateOutputDir(o.OutputDir)
}

// setPaletteDefaults fills empty palette entries from [ordinal.DefaultPalette].
func (o *Options) setPaletteDefaults() {
	def := ordinal.DefaultPalette
	if o.Palette.Dark == "" {
		o.Palette.Dark = def.Dark
	}
	if o.Palette.Light == "" {
		o.Palette.Light = def.Light
	}
	if o.Palette.Unshaded == "" {
		o.Palette.Unshaded = def.Unshaded
	}
}

// MultiView reports whether more than one visualization type is requested.
func (o *Options) MultiView() bool {
	return len(o.VizTypes) > 1
}

// FileName returns the output file name for a drawing called name rendered
// as vizType in format. The node-link view gets a suffix only when it is
// written next to the nested view.
func FileName(name, vizType, format string, multiView bool) string {
	if multiView && vizType != VizTypeNested {
		name += "_" + vizType
	}
	return name + "." + format
}

package pipeline

import (
	"path/filepath"
	"strings"

	vnerrors "github.com/matzehuels/vonneumann/pkg/errors"
	"github.com/matzehuels/vonneumann/pkg/ordinal"
	"github.com/matzehuels/vonneumann/pkg/render/nodelink"
	"github.com/matzehuels/vonneumann/pkg/render/sink"
)

// Artifact is one rendered output file.
type Artifact struct {
	File    string // file name, see [FileName]
	VizType string
	Format  string
	Data    []byte
}

// Render generates artifacts for every requested view and format.
// Combinations a view cannot produce (nested DOT, node-link JSON) are skipped.
func Render(s *sink.Scene, opts Options) ([]Artifact, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if s.Name == "" {
		return nil, vnerrors.New(vnerrors.ErrCodeInvalidArgument, "scene has no name; export it first")
	}
	if err := validateSceneName(s.Name); err != nil {
		return nil, err
	}

	var artifacts []Artifact
	for _, vizType := range opts.VizTypes {
		var (
			rendered []Artifact
			err      error
		)
		switch vizType {
		case VizTypeNested:
			rendered, err = renderNested(s, opts)
		case VizTypeNodelink:
			rendered, err = renderNodelink(s, opts)
		}
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, rendered...)
	}
	return artifacts, nil
}

// validateSceneName rejects names that would place output files outside the
// output directory once joined with it.
func validateSceneName(name string) error {
	if name == "." || name == ".." || filepath.Base(name) != name || strings.ContainsAny(name, `/\`) {
		return vnerrors.New(vnerrors.ErrCodeInvalidArgument, "scene name %q must be a plain file name", name)
	}
	return nil
}

// renderNested generates nested-circle outputs.
func renderNested(s *sink.Scene, opts Options) ([]Artifact, error) {
	svgOpts := []sink.SVGOption{sink.WithSize(float64(opts.Size)), sink.WithTitles()}
	var jsonOpts []sink.JSONOption
	if opts.Palette != (ordinal.Palette{}) {
		jsonOpts = append(jsonOpts, sink.WithJSONPalette(opts.Palette))
	}

	var artifacts []Artifact
	for _, format := range opts.Formats {
		if !Supports(VizTypeNested, format) {
			opts.Logger.Debugf("Skipping %s/%s (unsupported combination)", VizTypeNested, format)
			continue
		}

		var (
			data []byte
			err  error
		)
		switch format {
		case FormatSVG:
			data = sink.RenderSVG(s, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(s, sink.WithPNGSize(opts.Size))
		case FormatPDF:
			data, err = sink.RenderPDF(s, sink.WithPDFSVGOptions(svgOpts...))
		case FormatJSON:
			data, err = sink.RenderJSON(s, jsonOpts...)
		}
		if err != nil {
			return nil, renderError(err, VizTypeNested, format)
		}
		artifacts = append(artifacts, newArtifact(s.Name, VizTypeNested, format, data, opts))
	}
	return artifacts, nil
}

// renderNodelink generates membership-tree outputs through Graphviz.
func renderNodelink(s *sink.Scene, opts Options) ([]Artifact, error) {
	dot, err := nodelink.ToDOT(s, nodelink.Options{Detailed: opts.Detailed})
	if err != nil {
		return nil, err
	}

	var artifacts []Artifact
	for _, format := range opts.Formats {
		if !Supports(VizTypeNodelink, format) {
			opts.Logger.Debugf("Skipping %s/%s (unsupported combination)", VizTypeNodelink, format)
			continue
		}

		var data []byte
		switch format {
		case FormatSVG:
			data, err = nodelink.RenderSVG(dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(dot, opts.Scale)
		case FormatPDF:
			data, err = nodelink.RenderPDF(dot)
		case FormatDOT:
			data = []byte(dot)
		}
		if err != nil {
			return nil, renderError(err, VizTypeNodelink, format)
		}
		artifacts = append(artifacts, newArtifact(s.Name, VizTypeNodelink, format, data, opts))
	}
	return artifacts, nil
}

func newArtifact(name, vizType, format string, data []byte, opts Options) Artifact {
	return Artifact{
		File:    FileName(name, vizType, format, opts.MultiView()),
		VizType: vizType,
		Format:  format,
		Data:    data,
	}
}

// renderError keeps structured errors and tags everything else as an export failure.
func renderError(err error, vizType, format string) error {
	if vnerrors.GetCode(err) != "" {
		return err
	}
	return vnerrors.Wrap(vnerrors.ErrCodeExportFailure, err, "render %s/%s", vizType, format)
}

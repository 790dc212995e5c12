// Package render provides shared helpers for turning von Neumann diagrams
// into files.
//
// # Overview
//
// The drawing itself is produced by the ordinal package, which only speaks to
// an abstract canvas. This package and its subpackages supply the concrete
// side:
//
//   - Palette color parsing ([ParseColor], [ValidatePalette])
//   - Generic format conversion (SVG to PDF/PNG)
//   - Nested-circle output formats (in [sink] subpackage)
//   - Membership-tree diagrams (in [nodelink] subpackage)
//
// # Colors
//
// Palette entries may be CSS color names ("darkblue", "lightgray") or hex
// strings ("#1f77b4", "#abc"). [ParseColor] resolves both forms; [Hex]
// normalizes them for SVG and DOT output.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg := sink.RenderSVG(scene)
//	pdf, err := render.ToPDF(svg)
//
// [sink]: github.com/matzehuels/vonneumann/pkg/render/sink
// [nodelink]: github.com/matzehuels/vonneumann/pkg/render/nodelink
package render

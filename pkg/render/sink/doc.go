// Package sink turns a recorded von Neumann diagram into output files.
//
// # Overview
//
// A [Scene] implements ordinal.Canvas by recording every circle it is given,
// in the pre-order the walker emits them, together with the final viewport.
// Once the drawing is exported, the scene can be rendered by any sink:
//
//   - SVG: one <circle> per member, parents before children
//   - PNG: native rasterization with fogleman/gg
//   - PDF: SVG converted by rsvg-convert
//   - JSON: the recorded circles and viewport, for external tools
//
// Basic usage:
//
//	scene := sink.NewScene()
//	if _, err := ordinal.Draw(5, predicate.Even, palette, scene); err != nil {
//	    return err
//	}
//	svg := sink.RenderSVG(scene, sink.WithSize(800))
//	png, err := sink.RenderPNG(scene, sink.WithPNGSize(1600))
//
// # Export hook
//
// [WithExportFunc] installs a callback that runs when the drawing calls
// Export. The pipeline package uses it to render and write every requested
// format under the export name, so a failed write fails the draw.
//
// # Coordinates
//
// Diagram coordinates grow upwards; image coordinates grow downwards. All
// sinks map the viewport's top-left corner (MinX, MaxY) to the image origin.
package sink

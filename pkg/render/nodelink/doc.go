// Package nodelink renders a von Neumann diagram as its membership tree.
//
// # Overview
//
// The nested-circle view hides how often the same ordinal reappears. This
// package draws the same recorded scene as a top-down tree instead: one node
// per circle, one arrow from every set to each of its members, with nodes
// filled in the circle's color.
//
// # Usage
//
// Record a draw with a [sink.Scene], convert it to DOT, then render:
//
//	dot, err := nodelink.ToDOT(scene, nodelink.Options{Detailed: false})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Tree reconstruction
//
// Scenes record circles in pre-order with their depth, so [Tree] can rebuild
// the parent of every circle with a single stack and no extra bookkeeping in
// the walker.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
//
// [sink.Scene]: github.com/matzehuels/vonneumann/pkg/render/sink.Scene
package nodelink

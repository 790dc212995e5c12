package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	vnerrors "github.com/matzehuels/vonneumann/pkg/errors"
	"github.com/matzehuels/vonneumann/pkg/ordinal"
	"github.com/matzehuels/vonneumann/pkg/render"
	"github.com/matzehuels/vonneumann/pkg/render/sink"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds the depth and shading state to node labels.
	// When false, only the value is shown.
	Detailed bool
}

// Edge links a circle to one of its members, by index into the scene.
type Edge struct {
	From, To int
}

// Tree rebuilds the membership edges of a scene from its pre-order depth
// sequence. It fails if a circle is deeper than its predecessor allows.
func Tree(s *sink.Scene) ([]Edge, error) {
	var (
		edges []Edge
		stack []int
	)
	for i, c := range s.Circles {
		if c.Depth > len(stack) || (i == 0 && c.Depth != 0) || (i > 0 && c.Depth == 0) {
			return nil, vnerrors.New(vnerrors.ErrCodeCanvasFailure, "circle %d at depth %d breaks pre-order", i, c.Depth)
		}
		stack = stack[:c.Depth]
		if c.Depth > 0 {
			edges = append(edges, Edge{From: stack[c.Depth-1], To: i})
		}
		stack = append(stack, i)
	}
	return edges, nil
}

// ToDOT converts a recorded scene to Graphviz DOT. Each node is one circle,
// filled with the circle's color, and each edge points from a set to one of
// its members. The resulting DOT string can be rendered using [RenderSVG],
// [RenderPDF], or [RenderPNG].
func ToDOT(s *sink.Scene, opts Options) (string, error) {
	edges, err := Tree(s)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=18, color=black];\n")
	buf.WriteString("  ranksep=0.4;\n")
	buf.WriteString("  nodesep=0.2;\n")
	buf.WriteString("\n")

	for i, c := range s.Circles {
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(i), fmtAttrs(c, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(e.From), nodeID(e.To))
	}

	buf.WriteString("}\n")
	return buf.String(), nil
}

func nodeID(i int) string { return "c" + strconv.Itoa(i) }

func fmtAttrs(c ordinal.Circle, detailed bool) string {
	label := strconv.Itoa(c.Value)
	if detailed {
		label = fmt.Sprintf("%d\ndepth %d\n%s", c.Value, c.Depth, c.State)
	}
	fill := c.Fill
	if h, err := render.Hex(c.Fill); err == nil {
		fill = h
	}
	font := "black"
	if rgba, err := render.ParseColor(c.Fill); err == nil && render.IsDark(rgba) {
		font = "white"
	}
	return fmt.Sprintf("label=%q, fillcolor=%q, fontcolor=%q", label, fill, font)
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based <svg> header with a plain
// viewBox so the output scales like the nested-circle SVG.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}

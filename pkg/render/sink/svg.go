package sink

import (
	"bytes"
	"fmt"
	"html"
	"strconv"

	"github.com/matzehuels/vonneumann/pkg/ordinal"
	"github.com/matzehuels/vonneumann/pkg/render"
)

const circleInteractionCSS = `
    .ordinal { transition: stroke-width 0.2s ease; }
    .ordinal:hover { stroke-width: 3; }`

// DefaultSize is the default output width in pixels.
const DefaultSize = 800

// MaxSize is the largest raster edge, in pixels, that RenderPNG will allocate.
const MaxSize = 16384

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	size       float64
	background string
	titles     bool
}

// WithSize sets the rendered width in pixels; height follows the viewport's
// aspect ratio.
func WithSize(px float64) SVGOption { return func(r *svgRenderer) { r.size = px } }

// WithBackground fills the viewport with a color before drawing. An empty
// string leaves it transparent.
func WithBackground(c string) SVGOption { return func(r *svgRenderer) { r.background = c } }

// WithTitles adds a hover tooltip naming each circle's value.
func WithTitles() SVGOption { return func(r *svgRenderer) { r.titles = true } }

// RenderSVG renders the scene. Circles are emitted in recorded order so that
// members are painted over their parent.
func RenderSVG(s *Scene, opts ...SVGOption) []byte {
	r := svgRenderer{size: DefaultSize, background: "white"}
	for _, opt := range opts {
		opt(&r)
	}

	b := s.Bounds()
	width, height := r.size, r.size*b.Height()/b.Width()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%.0f" height="%.0f">`+"\n",
		num(b.Width()), num(b.Height()), width, height)
	if s.Name != "" {
		fmt.Fprintf(&buf, "  <title>%s</title>\n", html.EscapeString(s.Name))
	}
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", circleInteractionCSS)
	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%s" height="%s" fill="%s"/>`+"\n",
			num(b.Width()), num(b.Height()), svgColor(r.background))
	}

	for i, c := range s.Circles {
		renderCircle(&buf, b, i, c, r.titles)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderCircle(buf *bytes.Buffer, b ordinal.Bounds, i int, c ordinal.Circle, titles bool) {
	x, y := project(b, c.Center, 1)
	fmt.Fprintf(buf, `  <circle id="c-%d" class="ordinal %s" data-value="%d" data-depth="%d" cx="%s" cy="%s" r="%s" fill="%s" stroke="%s" stroke-width="1" vector-effect="non-scaling-stroke"`,
		i, c.State, c.Value, c.Depth, num(x), num(y), num(c.Radius), svgColor(c.Fill), svgColor(c.Border))
	if !titles {
		buf.WriteString("/>\n")
		return
	}
	fmt.Fprintf(buf, "><title>%d</title></circle>\n", c.Value)
}

// svgColor prefers the normalized hex form and falls back to the raw value.
func svgColor(c string) string {
	if h, err := render.Hex(c); err == nil {
		return h
	}
	return html.EscapeString(c)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

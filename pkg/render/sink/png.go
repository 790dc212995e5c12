package sink

import (
	"bytes"
	"math"

	"github.com/fogleman/gg"

	vnerrors "github.com/matzehuels/vonneumann/pkg/errors"
	"github.com/matzehuels/vonneumann/pkg/render"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	size       int
	lineWidth  float64
	background string
}

// WithPNGSize sets the image width in pixels (default 800).
func WithPNGSize(px int) PNGOption {
	return func(r *pngRenderer) { r.size = px }
}

// WithLineWidth sets the border width in pixels (default 1).
func WithLineWidth(w float64) PNGOption {
	return func(r *pngRenderer) { r.lineWidth = w }
}

// WithPNGBackground sets the background color; empty means transparent.
func WithPNGBackground(c string) PNGOption {
	return func(r *pngRenderer) { r.background = c }
}

// RenderPNG rasterizes the scene with fogleman/gg. Every circle is filled and
// then outlined, in recorded order.
func RenderPNG(s *Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{size: DefaultSize, lineWidth: 1, background: "white"}
	for _, opt := range opts {
		opt(&r)
	}
	if r.size <= 0 || r.size > MaxSize {
		return nil, vnerrors.New(vnerrors.ErrCodeInvalidArgument, "png size must be in 1..%d, got %d", MaxSize, r.size)
	}

	b := s.Bounds()
	if err := checkExtent(b); err != nil {
		return nil, err
	}
	scale := float64(r.size) / b.Width()
	width := r.size
	h := math.Round(b.Height() * scale)
	if !(h >= 1) || h > MaxSize {
		return nil, vnerrors.New(vnerrors.ErrCodeInvalidArgument, "png height %v outside 1..%d for viewport %+v", h, MaxSize, b)
	}
	height := int(h)

	dc := gg.NewContext(width, height)
	if r.background != "" {
		bg, err := render.ParseColor(r.background)
		if err != nil {
			return nil, err
		}
		dc.SetColor(bg)
		dc.Clear()
	}

	dc.SetLineWidth(r.lineWidth)
	for _, c := range s.Circles {
		fill, err := render.ParseColor(c.Fill)
		if err != nil {
			return nil, vnerrors.Wrap(vnerrors.ErrCodeCanvasFailure, err, "circle for %d", c.Value)
		}
		border, err := render.ParseColor(c.Border)
		if err != nil {
			return nil, vnerrors.Wrap(vnerrors.ErrCodeCanvasFailure, err, "circle for %d", c.Value)
		}
		x, y := project(b, c.Center, scale)
		dc.DrawCircle(x, y, c.Radius*scale)
		dc.SetColor(fill)
		dc.FillPreserve()
		dc.SetColor(border)
		dc.Stroke()
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, vnerrors.Wrap(vnerrors.ErrCodeExportFailure, err, "encode png")
	}
	return buf.Bytes(), nil
}

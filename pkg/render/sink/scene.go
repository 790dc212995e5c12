package sink

import (
	"math"

	vnerrors "github.com/matzehuels/vonneumann/pkg/errors"
	"github.com/matzehuels/vonneumann/pkg/ordinal"
)

// ExportFunc is called by [Scene.Export] with the finished scene.
type ExportFunc func(name string, s *Scene) error

// SceneOption configures a Scene.
type SceneOption func(*Scene)

// WithExportFunc sets the callback run on Export.
func WithExportFunc(fn ExportFunc) SceneOption { return func(s *Scene) { s.exportFn = fn } }

// Scene is a recording canvas. It is not safe for concurrent use.
type Scene struct {
	Circles  []ordinal.Circle
	Viewport ordinal.Bounds
	Name     string

	// Palette is the palette the scene was drawn with, when known.
	// ReadJSON fills it from the file; a live draw leaves it empty.
	Palette ordinal.Palette

	exportFn ExportFunc
}

// NewScene returns an empty scene.
func NewScene(opts ...SceneOption) *Scene {
	s := &Scene{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DrawCircle appends c.
func (s *Scene) DrawCircle(c ordinal.Circle) error {
	if !(c.Radius > 0) || math.IsInf(c.Radius, 0) {
		return vnerrors.New(vnerrors.ErrCodeCanvasFailure, "circle for %d has invalid radius %v", c.Value, c.Radius)
	}
	s.Circles = append(s.Circles, c)
	return nil
}

// SetViewport records the visible region.
func (s *Scene) SetViewport(b ordinal.Bounds) error {
	if !(b.Width() > 0) || !(b.Height() > 0) {
		return vnerrors.New(vnerrors.ErrCodeCanvasFailure, "empty viewport %+v", b)
	}
	s.Viewport = b
	return nil
}

// Export records name and runs the export callback, if any.
func (s *Scene) Export(name string) error {
	s.Name = name
	if s.exportFn == nil {
		return nil
	}
	return s.exportFn(name, s)
}

// Validate checks a scene that did not come from a draw, such as one read
// back from JSON: every circle needs a positive, finite radius and a finite
// center, and a recorded viewport must have a positive, finite extent.
func (s *Scene) Validate() error {
	for i, c := range s.Circles {
		if !(c.Radius > 0) || math.IsInf(c.Radius, 0) {
			return vnerrors.New(vnerrors.ErrCodeInvalidArgument, "circle %d has invalid radius %v", i, c.Radius)
		}
		if !finite(c.Center.X) || !finite(c.Center.Y) {
			return vnerrors.New(vnerrors.ErrCodeInvalidArgument, "circle %d has invalid center %+v", i, c.Center)
		}
	}
	if s.Viewport != (ordinal.Bounds{}) {
		if err := checkExtent(s.Viewport); err != nil {
			return err
		}
	}
	return checkExtent(s.Bounds())
}

func checkExtent(b ordinal.Bounds) error {
	w, h := b.Width(), b.Height()
	if !(w > 0) || !(h > 0) || math.IsInf(w, 0) || math.IsInf(h, 0) {
		return vnerrors.New(vnerrors.ErrCodeInvalidArgument, "viewport %+v has no usable extent", b)
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// MaxDepth returns the deepest nesting level recorded.
func (s *Scene) MaxDepth() int {
	depth := 0
	for _, c := range s.Circles {
		depth = max(depth, c.Depth)
	}
	return depth
}

// Bounds returns the viewport, or the circles' bounding box if no viewport
// was set.
func (s *Scene) Bounds() ordinal.Bounds {
	if s.Viewport.Width() > 0 && s.Viewport.Height() > 0 {
		return s.Viewport
	}
	if len(s.Circles) == 0 {
		return ordinal.SquareAround(ordinal.Point{}, 1)
	}
	b := ordinal.Bounds{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, c := range s.Circles {
		b.MinX = min(b.MinX, c.Center.X-c.Radius)
		b.MinY = min(b.MinY, c.Center.Y-c.Radius)
		b.MaxX = max(b.MaxX, c.Center.X+c.Radius)
		b.MaxY = max(b.MaxY, c.Center.Y+c.Radius)
	}
	return b
}

// project maps a diagram point into image space scaled by scale.
func project(b ordinal.Bounds, p ordinal.Point, scale float64) (float64, float64) {
	return (p.X - b.MinX) * scale, (b.MaxY - p.Y) * scale
}

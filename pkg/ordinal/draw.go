package ordinal

import (
	"fmt"

	vnerrors "github.com/matzehuels/vonneumann/pkg/errors"
)

// ViewportScale is how far the viewport extends past the root radius in every
// direction.
const ViewportScale = 1.2

// Canvas receives the drawing. Circles arrive in pre-order (every parent
// before its members); SetViewport and Export are called once, after the last
// circle.
type Canvas interface {
	DrawCircle(c Circle) error
	SetViewport(b Bounds) error
	Export(name string) error
}

// Result confirms a finished draw.
type Result struct {
	N        int     // value that was drawn
	Name     string  // export name, see [Name]
	Circles  int     // circles sent to the canvas
	Viewport Bounds  // viewport passed to the canvas
	Radius   float64 // root radius
}

// Name returns the export name for n. Drawing the same n twice reuses the
// name, so a second export replaces the first.
func Name(n int) string {
	return fmt.Sprintf("von_neumann_n%d", n)
}

// CircleCount returns how many circles drawing n produces: 1 + sum of
// CircleCount(i) for i < n, which is 2^n.
func CircleCount(n int) uint64 {
	if n < 0 {
		return 0
	}
	if n >= 64 {
		return ^uint64(0)
	}
	return uint64(1) << uint(n)
}

type drawConfig struct {
	center   Point
	radius   float64
	maxValue int
}

// Option configures [Draw].
type Option func(*drawConfig)

// WithCenter moves the root circle. Default is the origin.
func WithCenter(p Point) Option { return func(c *drawConfig) { c.center = p } }

// WithRadius sets the root radius. Default is 1.
func WithRadius(r float64) Option { return func(c *drawConfig) { c.radius = r } }

// WithMaxValue rejects values above limit with RESOURCE_EXHAUSTED before anything
// is drawn. Zero, the default, means no limit.
func WithMaxValue(limit int) Option { return func(c *drawConfig) { c.maxValue = limit } }

// Draw renders n onto canvas and exports it under [Name](n).
//
// The root starts from an [Unshaded] parent so that its own shading follows
// the same rule as every other circle. Input is validated before the first
// draw call; any later failure aborts the draw and skips the export.
func Draw(n int, pred Predicate, palette Palette, canvas Canvas, opts ...Option) (Result, error) {
	cfg := drawConfig{radius: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := vnerrors.ValidateValue(n); err != nil {
		return Result{}, err
	}
	if err := vnerrors.ValidateValueLimit(n, cfg.maxValue); err != nil {
		return Result{}, err
	}
	if err := vnerrors.ValidateRadius(cfg.radius); err != nil {
		return Result{}, err
	}
	if canvas == nil {
		return Result{}, vnerrors.New(vnerrors.ErrCodeInvalidArgument, "canvas is required")
	}
	if pred == nil {
		pred = Never
	}

	w := &walker{pred: pred, palette: palette, canvas: canvas}
	if err := w.render(n, cfg.center, cfg.radius, Unshaded, 0); err != nil {
		return Result{}, err
	}

	res := Result{
		N:        n,
		Name:     Name(n),
		Circles:  w.drawn,
		Viewport: SquareAround(cfg.center, cfg.radius*ViewportScale),
		Radius:   cfg.radius,
	}
	if err := canvas.SetViewport(res.Viewport); err != nil {
		return Result{}, vnerrors.Wrap(vnerrors.ErrCodeCanvasFailure, err, "set viewport")
	}
	if err := canvas.Export(res.Name); err != nil {
		if vnerrors.GetCode(err) != "" {
			return Result{}, err
		}
		return Result{}, vnerrors.Wrap(vnerrors.ErrCodeExportFailure, err, "export %s", res.Name)
	}
	return res, nil
}

package ordinal

import (
	vnerrors "github.com/matzehuels/vonneumann/pkg/errors"
)

// walker carries what stays fixed for one draw. Everything that changes per
// circle (value, center, radius, parent state, depth) is passed by value.
type walker struct {
	pred    Predicate
	palette Palette
	canvas  Canvas
	drawn   int
}

// render draws n and then, in member order, every i < n inside it.
func (w *walker) render(n int, center Point, radius float64, parent ColorState, depth int) error {
	shade, err := w.pred.Eval(n)
	if err != nil {
		return vnerrors.Wrap(vnerrors.ErrCodePredicateFailure, err, "evaluate predicate for %d", n)
	}
	state := Resolve(shade, parent)

	c := Circle{
		Center: center,
		Radius: radius,
		Fill:   w.palette.Color(state),
		Border: BorderColor,
		Value:  n,
		Depth:  depth,
		State:  state,
	}
	if err := w.canvas.DrawCircle(c); err != nil {
		return vnerrors.Wrap(vnerrors.ErrCodeCanvasFailure, err, "draw circle for %d at depth %d", n, depth)
	}
	w.drawn++

	if n == 0 {
		return nil
	}

	p, err := Pack(radius, n)
	if err != nil {
		return err
	}
	for i, off := range p.Offsets {
		if err := w.render(i, center.Add(off), p.Radius, state, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Package ordinal draws natural numbers as nested circles under the von
// Neumann construction.
//
// # Overview
//
// In the von Neumann construction every natural number n is the set of all
// smaller naturals: 0 = {}, 1 = {0}, 2 = {0, 1}, and so on. Drawing n
// therefore means drawing one circle and, inside it, one circle for every
// member 0..n-1, each of which is drawn the same way. The deepest chain of
// nested circles for n is n, n-1, ..., 0, and the total number of circles is
// [CircleCount](n) = 2^n.
//
// # Components
//
// The package is split into three pure pieces and one entry point:
//
//   - [Pack] places k equal child circles inside a parent of radius R with a
//     buffer of R/12 from each other and from the parent boundary.
//   - [Resolve] maps (predicate result, parent [ColorState]) to the child's
//     [ColorState]: a failed predicate resets to [Unshaded], a satisfied one
//     flips between [Dark] and [Light].
//   - The walker visits values in pre-order, drawing each circle before its
//     members so that children are layered on top of their parent.
//   - [Draw] validates the input, runs the walker from the unit circle at the
//     origin, fits the viewport and exports the result under [Name](n).
//
// # Canvas
//
// Rendering backends implement [Canvas]. The core never assumes a graphics
// library; it only issues [Canvas.DrawCircle] calls in pre-order followed by
// one [Canvas.SetViewport] and one [Canvas.Export]. See the render/sink
// package for a recording canvas that turns the calls into SVG, PNG, PDF and
// JSON artifacts.
//
//	res, err := ordinal.Draw(7, predicate.PrimeOrEven, ordinal.DefaultPalette, canvas)
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Visualization for %d saved as %s\n", res.N, res.Name)
//
// # Errors
//
// Every failure aborts the whole draw and nothing is exported. Errors carry
// codes from the errors package: INVALID_ARGUMENT for a negative value or a bad
// radius, RESOURCE_EXHAUSTED when the value exceeds [WithMaxValue],
// PREDICATE_FAILURE, PACKING_DEGENERATE, CANVAS_FAILURE and EXPORT_FAILURE.
//
// # Concurrency
//
// Draw is synchronous and keeps no package state; concurrent calls with
// separate canvases are safe as long as the predicates are.
package ordinal

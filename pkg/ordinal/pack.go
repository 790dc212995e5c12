package ordinal

import (
	"math"

	vnerrors "github.com/matzehuels/vonneumann/pkg/errors"
)

// bufferDivisor sets the gap between siblings, and between a sibling and the
// parent boundary, to R/12.
const bufferDivisor = 12

// Packing describes where the members of one circle go.
type Packing struct {
	Radius   float64 // radius shared by every child
	Distance float64 // distance from the parent center to each child center
	Buffer   float64 // required gap, R/12
	Offsets  []Point // child centers relative to the parent center, in member order
}

// Pack places k equal circles inside a parent of radius r.
//
// One child is centred at half the parent radius and two children sit side by
// side (member 0 on the left); these constants are tuned by eye and are not
// the k >= 3 formula evaluated at small k. For k >= 3 the children are the
// k mutually tangent circles inscribed in a circle of radius r - r/12, placed
// counter-clockwise from angle 0.
//
// k == 0 yields an empty Packing. A non-positive or non-finite r, or a
// negative k, is INVALID_ARGUMENT; a child radius that collapses to zero is
// PACKING_DEGENERATE.
func Pack(r float64, k int) (Packing, error) {
	if err := vnerrors.ValidateRadius(r); err != nil {
		return Packing{}, err
	}
	if k < 0 {
		return Packing{}, vnerrors.New(vnerrors.ErrCodeInvalidArgument, "child count must be non-negative, got %d", k)
	}

	b := r / bufferDivisor
	p := Packing{Buffer: b}

	switch k {
	case 0:
		return p, nil
	case 1:
		p.Radius = 0.5 * r
		p.Offsets = []Point{{}}
	case 2:
		p.Radius = (r - 1.5*b) / 2
		p.Distance = p.Radius + b/2
		p.Offsets = []Point{{X: -p.Distance}, {X: p.Distance}}
	default:
		s := math.Sin(math.Pi / float64(k))
		p.Radius = math.Max((r-b)*s/(1+s), 0)
		if err := checkChildRadius(r, k, p.Radius); err != nil {
			return Packing{}, err
		}
		p.Distance = r - p.Radius - b
		p.Offsets = make([]Point, k)
		for i := range k {
			angle := 2 * math.Pi * float64(i) / float64(k)
			p.Offsets[i] = Point{X: p.Distance * math.Cos(angle), Y: p.Distance * math.Sin(angle)}
		}
		return p, nil
	}

	if err := checkChildRadius(r, k, p.Radius); err != nil {
		return Packing{}, err
	}
	return p, nil
}

// checkChildRadius reports a child radius that underflowed to zero or did not
// shrink below the parent radius.
func checkChildRadius(r float64, k int, child float64) error {
	if child > 0 && child < r {
		return nil
	}
	return vnerrors.New(vnerrors.ErrCodePackingDegenerate,
		"%d children of a circle with radius %g collapse to radius %g", k, r, child)
}
